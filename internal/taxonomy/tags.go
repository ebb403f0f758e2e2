package taxonomy

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wuchib/cbiu-website/internal/models"
)

// Reconciler resolves free-text tag labels to stable tag rows and rewrites
// an article's tag membership to match exactly.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// resolvedLabel is a deduplicated (slug, display text) pair.
type resolvedLabel struct {
	Slug string
	Name string
}

// normalizeLabels slugifies each label and deduplicates by slug. The first
// occurrence's display text wins; labels that normalize to nothing are
// dropped.
func normalizeLabels(labels []string) []resolvedLabel {
	seen := make(map[string]bool, len(labels))
	out := make([]resolvedLabel, 0, len(labels))
	for _, label := range labels {
		slug := Slugify(label)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, resolvedLabel{Slug: slug, Name: strings.TrimSpace(label)})
	}
	return out
}

// Reconcile runs ReconcileTx inside its own transaction. An empty label
// list is valid and strips the article of all tags.
func (r *Reconciler) Reconcile(articleID uint, labels []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ReconcileTx(tx, articleID, labels)
	})
}

// ReconcileTx resolves labels to tag ids, then replaces the article's
// membership rows wholesale: delete everything, insert the resolved set.
// The caller's transaction makes the delete-then-insert atomic; a failure
// anywhere rolls the whole write back.
func ReconcileTx(tx *gorm.DB, articleID uint, labels []string) error {
	resolved := normalizeLabels(labels)
	tagIDs := make([]uint, 0, len(resolved))
	for _, rl := range resolved {
		id, err := resolveTag(tx, rl)
		if err != nil {
			return err
		}
		tagIDs = append(tagIDs, id)
	}

	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.ArticleTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		links = append(links, models.ArticleTag{ArticleID: articleID, TagID: id})
	}
	return tx.Create(&links).Error
}

// resolveTag reuses the tag with the given slug or creates it. The insert
// carries ON CONFLICT DO NOTHING so a losing concurrent create falls back
// to the winner's row instead of failing the write.
func resolveTag(tx *gorm.DB, rl resolvedLabel) (uint, error) {
	var tag models.Tag
	err := tx.Where("slug = ?", rl.Slug).First(&tag).Error
	if err == nil {
		return tag.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	tag = models.Tag{Name: rl.Name, Slug: rl.Slug}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&tag).Error; err != nil {
		return 0, err
	}
	if tag.ID != 0 {
		return tag.ID, nil
	}

	// the conflicting insert won; use its row
	if err := tx.Where("slug = ?", rl.Slug).First(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}
