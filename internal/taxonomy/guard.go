package taxonomy

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wuchib/cbiu-website/internal/models"
)

// SlugEntity names an entity type whose slugs are unique among themselves.
type SlugEntity string

const (
	EntityArticle         SlugEntity = "article"
	EntityProject         SlugEntity = "project"
	EntityArticleCategory SlugEntity = "article_category"
)

func (e SlugEntity) model() interface{} {
	switch e {
	case EntityProject:
		return &models.Project{}
	case EntityArticleCategory:
		return &models.ArticleCategory{}
	default:
		return &models.Article{}
	}
}

// SlugGuard is the best-effort pre-check for "at most one live owner per
// slug". It produces a friendly field-level error in the common case; the
// unique index on each model is the real arbiter, and writers translate its
// duplicate-key error into the same conflict shape.
type SlugGuard struct {
	db *gorm.DB
}

func NewSlugGuard(db *gorm.DB) *SlugGuard {
	return &SlugGuard{db: db}
}

// CheckAvailable validates the slug pattern and looks for another entity of
// the same type already owning the slug. On the update path, pass the
// entity's own id as excludeID so an unchanged slug is never a
// self-conflict; pass 0 on the create path.
func (g *SlugGuard) CheckAvailable(entity SlugEntity, slug string, excludeID uint) error {
	if !ValidSlug(slug) {
		return &ValidationError{Field: "slug", Message: "slug must contain only lowercase letters, numbers, and hyphens"}
	}
	var existing struct{ ID uint }
	err := g.db.Model(entity.model()).Select("id").Where("slug = ?", slug).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if excludeID != 0 && existing.ID == excludeID {
		return nil
	}
	return &ConflictError{Field: "slug", Message: "slug is already taken"}
}
