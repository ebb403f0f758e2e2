package taxonomy

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wuchib/cbiu-website/internal/models"
)

// ArticleCategoryStore guards the blog-post taxonomy's lifecycle.
type ArticleCategoryStore struct {
	db *gorm.DB
}

func NewArticleCategoryStore(db *gorm.DB) *ArticleCategoryStore {
	return &ArticleCategoryStore{db: db}
}

// Delete removes the category unless any article still references it.
// Count and delete share a transaction.
func (s *ArticleCategoryStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cat models.ArticleCategory
		if err := tx.First(&cat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var n int64
		if err := tx.Model(&models.Article{}).Where("category_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Field: "category", Message: "category in use"}
		}
		// hard delete: the unique index must free the slug for reuse
		return tx.Unscoped().Delete(&cat).Error
	})
}
