package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wuchib/cbiu-website/internal/database"
	"github.com/wuchib/cbiu-website/internal/models"
	"github.com/wuchib/cbiu-website/internal/taxonomy"
)

// region --- DTOs ---

type ArticleInput struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content" binding:"required"`
	CoverImage  string   `json:"cover_image"`
	Published   bool     `json:"published"`
	CategoryID  *uint    `json:"category_id"`
	Tags        []string `json:"tags"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}
}

type ArticleResponse struct {
	ID          uint                     `json:"id"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	Title       string                   `json:"title"`
	Slug        string                   `json:"slug"`
	Description string                   `json:"description"`
	Content     string                   `json:"content"`
	CoverImage  string                   `json:"cover_image"`
	Published   bool                     `json:"published"`
	PublishedAt *time.Time               `json:"published_at"`
	Category    *ArticleCategoryResponse `json:"category"`
	Tags        []TagResponse            `json:"tags"`
}

func newArticleResponse(article models.Article) ArticleResponse {
	var tagResponses []TagResponse
	for _, tag := range article.Tags {
		if tag != nil {
			tagResponses = append(tagResponses, newTagResponse(*tag))
		}
	}

	var category *ArticleCategoryResponse
	if article.Category != nil {
		resp := newArticleCategoryResponse(*article.Category)
		category = &resp
	}

	return ArticleResponse{
		ID:          article.ID,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
		Title:       article.Title,
		Slug:        article.Slug,
		Description: article.Description,
		Content:     article.Content,
		CoverImage:  article.CoverImage,
		Published:   article.Published,
		PublishedAt: article.PublishedAt,
		Category:    category,
		Tags:        tagResponses,
	}
}

// PaginatedArticleResponse defines the structure for a paginated list of articles.
type PaginatedArticleResponse struct {
	Data []ArticleResponse `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

// endregion

// region --- Admin Handlers ---

// CreateArticle godoc
// @Summary      Create a new article
// @Description  Creates an article, resolving its free-text tags to tag rows.
// @Tags         admin-articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ArticleInput true "Article Info"
// @Success      201  {object}  ArticleResponse
// @Failure      400  {object}  FieldErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  FieldErrorResponse "Slug taken"
// @Router       /admin/articles [post]
func CreateArticle(c *gin.Context) {
	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityArticle, input.Slug, 0); err != nil {
		respondDomainError(c, err)
		return
	}

	if input.CategoryID != nil {
		var n int64
		database.DB.Model(&models.ArticleCategory{}).Where("id = ?", *input.CategoryID).Count(&n)
		if n == 0 {
			respondDomainError(c, &taxonomy.ValidationError{Field: "category_id", Message: "category does not exist"})
			return
		}
	}

	article := models.Article{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Content:     input.Content,
		CoverImage:  input.CoverImage,
		Published:   input.Published,
		CategoryID:  input.CategoryID,
	}
	if input.Published {
		now := time.Now()
		article.PublishedAt = &now
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&article).Error; err != nil {
			return taxonomy.TranslateDuplicate(err, "slug", "slug is already taken")
		}
		return taxonomy.ReconcileTx(tx, article.ID, input.Tags)
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	database.DB.Preload("Tags").Preload("Category").First(&article, article.ID)
	c.JSON(http.StatusCreated, newArticleResponse(article))
}

// UpdateArticle godoc
// @Summary      Update an article
// @Description  Updates an article and replaces its tag set wholesale.
// @Tags         admin-articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Article ID"
// @Param        input body      ArticleInput true  "New Article Info"
// @Success      200   {object}  ArticleResponse
// @Failure      400   {object}  FieldErrorResponse
// @Failure      404   {object}  ErrorResponse "Article not found"
// @Failure      409   {object}  FieldErrorResponse "Slug taken by another article"
// @Router       /admin/articles/{id} [put]
func UpdateArticle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var article models.Article
	if err := database.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityArticle, input.Slug, article.ID); err != nil {
		respondDomainError(c, err)
		return
	}

	if input.CategoryID != nil {
		var n int64
		database.DB.Model(&models.ArticleCategory{}).Where("id = ?", *input.CategoryID).Count(&n)
		if n == 0 {
			respondDomainError(c, &taxonomy.ValidationError{Field: "category_id", Message: "category does not exist"})
			return
		}
	}

	wasPublished := article.Published
	article.Title = input.Title
	article.Slug = input.Slug
	article.Description = input.Description
	article.Content = input.Content
	article.CoverImage = input.CoverImage
	article.Published = input.Published
	article.CategoryID = input.CategoryID
	switch {
	case input.Published && !wasPublished:
		now := time.Now()
		article.PublishedAt = &now
	case !input.Published:
		article.PublishedAt = nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&article).Error; err != nil {
			return taxonomy.TranslateDuplicate(err, "slug", "slug is already taken")
		}
		return taxonomy.ReconcileTx(tx, article.ID, input.Tags)
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	database.DB.Preload("Tags").Preload("Category").First(&article, article.ID)
	c.JSON(http.StatusOK, newArticleResponse(article))
}

// DeleteArticle godoc
// @Summary      Delete an article
// @Description  Deletes an article and its tag memberships. Tag rows themselves are kept.
// @Tags         admin-articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      200 {object} map[string]string "{"message": "Article deleted"}"
// @Failure      404 {object} ErrorResponse "Article not found"
// @Router       /admin/articles/{id} [delete]
func DeleteArticle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// hard delete: the unique index must free the slug for reuse
		result := tx.Unscoped().Delete(&models.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return taxonomy.ErrNotFound
		}
		return tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// TogglePublishArticle godoc
// @Summary      Toggle article publication
// @Description  Publishes a draft (stamping published_at) or unpublishes a live article.
// @Tags         admin-articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      200 {object} ArticleResponse
// @Failure      404 {object} ErrorResponse "Article not found"
// @Router       /admin/articles/{id}/publish [post]
func TogglePublishArticle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var article models.Article
	if err := database.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	article.Published = !article.Published
	if article.Published {
		now := time.Now()
		article.PublishedAt = &now
	} else {
		article.PublishedAt = nil
	}

	if err := database.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	database.DB.Preload("Tags").Preload("Category").First(&article, article.ID)
	c.JSON(http.StatusOK, newArticleResponse(article))
}

// GetAdminArticles godoc
// @Summary      List all articles
// @Description  Retrieves a paginated list of articles, drafts included.
// @Tags         admin-articles
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedArticleResponse
// @Router       /admin/articles [get]
func GetAdminArticles(c *gin.Context) {
	page, limit := pageParams(c)

	var totalItems int64
	if err := database.DB.Model(&models.Article{}).Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count articles"})
		return
	}

	var articles []models.Article
	err := database.DB.Preload("Tags").Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve articles"})
		return
	}

	var response []ArticleResponse
	for _, article := range articles {
		response = append(response, newArticleResponse(article))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// endregion

// region --- Public Handlers ---

// GetArticles godoc
// @Summary      List published articles
// @Description  Retrieves a paginated list of published articles, with optional filtering by category slug, tag slug, and search.
// @Tags         articles
// @Produce      json
// @Param        q        query string false "Search query for title"
// @Param        category query string false "Category slug"
// @Param        tag      query string false "Tag slug"
// @Param        page     query int    false "Page number" default(1)
// @Param        limit    query int    false "Items per page" default(10)
// @Success      200 {object} PaginatedArticleResponse
// @Router       /articles [get]
func GetArticles(c *gin.Context) {
	page, limit := pageParams(c)
	searchQuery := c.Query("q")
	categorySlug := c.Query("category")
	tagSlug := c.Query("tag")

	dbQuery := database.DB.Model(&models.Article{}).Where("articles.published = ?", true)

	if searchQuery != "" {
		dbQuery = dbQuery.Where("articles.title ILIKE ?", "%"+searchQuery+"%")
	}
	if categorySlug != "" {
		dbQuery = dbQuery.Joins("JOIN article_categories ac ON ac.id = articles.category_id").
			Where("ac.slug = ?", categorySlug)
	}
	if tagSlug != "" {
		dbQuery = dbQuery.Joins("JOIN article_tags at ON at.article_id = articles.id").
			Joins("JOIN tags t ON t.id = at.tag_id").
			Where("t.slug = ?", tagSlug)
	}

	var totalItems int64
	if err := dbQuery.Distinct("articles.id").Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count articles"})
		return
	}

	var articles []models.Article
	err := dbQuery.Preload("Tags").Preload("Category").
		Order("articles.published_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve articles"})
		return
	}

	var response []ArticleResponse
	for _, article := range articles {
		response = append(response, newArticleResponse(article))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// GetArticleBySlug godoc
// @Summary      Get a published article
// @Description  Retrieves a single published article by slug, with tags and category. An authenticated admin can also preview drafts.
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} ArticleResponse
// @Failure      404 {object} ErrorResponse "Article not found"
// @Router       /articles/{slug} [get]
func GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")

	query := database.DB.Preload("Tags").Preload("Category").Where("slug = ?", slug)
	if _, loggedIn := c.Get("userID"); !loggedIn {
		query = query.Where("published = ?", true)
	}

	var article models.Article
	if err := query.First(&article).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, newArticleResponse(article))
}

// GetTags godoc
// @Summary      List tags
// @Description  Retrieves all tags.
// @Tags         articles
// @Produce      json
// @Success      200 {array} TagResponse
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	var tags []models.Tag
	database.DB.Order("name ASC").Find(&tags)

	var response []TagResponse
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// endregion
