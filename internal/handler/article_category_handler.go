package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wuchib/cbiu-website/internal/database"
	"github.com/wuchib/cbiu-website/internal/models"
	"github.com/wuchib/cbiu-website/internal/taxonomy"
)

type ArticleCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sort_order"`
}

type ArticleCategoryResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	SortOrder    int       `json:"sort_order"`
	ArticleCount int64     `json:"article_count"`
}

func newArticleCategoryResponse(cat models.ArticleCategory) ArticleCategoryResponse {
	return ArticleCategoryResponse{
		ID:          cat.ID,
		CreatedAt:   cat.CreatedAt,
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: cat.Description,
		Color:       cat.Color,
		SortOrder:   cat.SortOrder,
	}
}

// GetArticleCategories godoc
// @Summary      List article categories
// @Description  Retrieves all article categories ordered by sort order, with article counts.
// @Tags         articles
// @Produce      json
// @Success      200 {array} ArticleCategoryResponse
// @Router       /article-categories [get]
func GetArticleCategories(c *gin.Context) {
	var categories []models.ArticleCategory
	database.DB.Order("sort_order ASC").Find(&categories)

	response := make([]ArticleCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp := newArticleCategoryResponse(cat)
		database.DB.Model(&models.Article{}).Where("category_id = ?", cat.ID).Count(&resp.ArticleCount)
		response = append(response, resp)
	}
	c.JSON(http.StatusOK, response)
}

// CreateArticleCategory godoc
// @Summary      Create an article category
// @Tags         admin-article-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ArticleCategoryInput true "Category Info"
// @Success      201  {object}  ArticleCategoryResponse
// @Failure      400  {object}  FieldErrorResponse
// @Failure      409  {object}  FieldErrorResponse "Slug taken"
// @Router       /admin/article-categories [post]
func CreateArticleCategory(c *gin.Context) {
	var input ArticleCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityArticleCategory, input.Slug, 0); err != nil {
		respondDomainError(c, err)
		return
	}

	cat := models.ArticleCategory{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Color:       input.Color,
		SortOrder:   input.SortOrder,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		respondDomainError(c, taxonomy.TranslateDuplicate(err, "slug", "slug is already taken"))
		return
	}

	c.JSON(http.StatusCreated, newArticleCategoryResponse(cat))
}

// UpdateArticleCategory godoc
// @Summary      Update an article category
// @Tags         admin-article-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true "Category ID"
// @Param        input body      ArticleCategoryInput true "New Category Info"
// @Success      200   {object}  ArticleCategoryResponse
// @Failure      404   {object}  ErrorResponse "Category not found"
// @Failure      409   {object}  FieldErrorResponse "Slug taken by another category"
// @Router       /admin/article-categories/{id} [put]
func UpdateArticleCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cat models.ArticleCategory
	if err := database.DB.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input ArticleCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityArticleCategory, input.Slug, cat.ID); err != nil {
		respondDomainError(c, err)
		return
	}

	cat.Name = input.Name
	cat.Slug = input.Slug
	cat.Description = input.Description
	cat.Color = input.Color
	cat.SortOrder = input.SortOrder
	if err := database.DB.Save(&cat).Error; err != nil {
		respondDomainError(c, taxonomy.TranslateDuplicate(err, "slug", "slug is already taken"))
		return
	}

	c.JSON(http.StatusOK, newArticleCategoryResponse(cat))
}

// DeleteArticleCategory godoc
// @Summary      Delete an article category
// @Description  Refuses to delete a category that still has articles.
// @Tags         admin-article-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} map[string]string "{"message": "Category deleted"}"
// @Failure      404 {object} ErrorResponse "Category not found"
// @Failure      409 {object} FieldErrorResponse "Category in use"
// @Router       /admin/article-categories/{id} [delete]
func DeleteArticleCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	store := taxonomy.NewArticleCategoryStore(database.DB)
	if err := store.Delete(uint(id)); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
