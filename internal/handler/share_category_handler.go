package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wuchib/cbiu-website/internal/database"
	"github.com/wuchib/cbiu-website/internal/models"
	"github.com/wuchib/cbiu-website/internal/taxonomy"
)

type ShareCategoryInput struct {
	Key          string              `json:"key" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Icon         string              `json:"icon"`
	Color        string              `json:"color"`
	SortOrder    int                 `json:"sort_order"`
	FieldsSchema models.FieldDefList `json:"fields_schema"`
}

type ShareCategoryResponse struct {
	Key           string              `json:"key"`
	CreatedAt     time.Time           `json:"created_at"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Icon          string              `json:"icon"`
	Color         string              `json:"color"`
	SortOrder     int                 `json:"sort_order"`
	FieldsSchema  models.FieldDefList `json:"fields_schema"`
	ResourceCount int64               `json:"resource_count"`
}

func newShareCategoryResponse(cat models.ShareCategory) ShareCategoryResponse {
	schema := cat.FieldsSchema
	if schema == nil {
		schema = models.FieldDefList{}
	}
	return ShareCategoryResponse{
		Key:          cat.Key,
		CreatedAt:    cat.CreatedAt,
		Name:         cat.Name,
		Description:  cat.Description,
		Icon:         cat.Icon,
		Color:        cat.Color,
		SortOrder:    cat.SortOrder,
		FieldsSchema: schema,
	}
}

// GetShareCategories godoc
// @Summary      List share categories
// @Description  Retrieves all share categories with their field schemas and resource counts.
// @Tags         admin-share
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ShareCategoryResponse
// @Router       /admin/share/categories [get]
func GetShareCategories(c *gin.Context) {
	var categories []models.ShareCategory
	database.DB.Order("sort_order ASC").Find(&categories)

	response := make([]ShareCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp := newShareCategoryResponse(cat)
		database.DB.Model(&models.ShareResource{}).Where("category_key = ?", cat.Key).Count(&resp.ResourceCount)
		response = append(response, resp)
	}
	c.JSON(http.StatusOK, response)
}

// CreateShareCategory godoc
// @Summary      Create a share category
// @Description  Creates a category together with its dynamic field schema.
// @Tags         admin-share
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ShareCategoryInput true "Category Info"
// @Success      201  {object}  ShareCategoryResponse
// @Failure      400  {object}  FieldErrorResponse "Invalid field schema"
// @Failure      409  {object}  FieldErrorResponse "Key taken"
// @Router       /admin/share/categories [post]
func CreateShareCategory(c *gin.Context) {
	var input ShareCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := models.ShareCategory{
		Key:          input.Key,
		Name:         input.Name,
		Description:  input.Description,
		Icon:         input.Icon,
		Color:        input.Color,
		SortOrder:    input.SortOrder,
		FieldsSchema: input.FieldsSchema,
	}

	store := taxonomy.NewSchemaStore(database.DB)
	if err := store.CreateCategory(&cat); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newShareCategoryResponse(cat))
}

// UpdateShareCategory godoc
// @Summary      Update a share category
// @Description  Replaces the category's attributes and field schema wholesale. The key is immutable.
// @Tags         admin-share
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string             true "Category key"
// @Param        input body      ShareCategoryInput true "New Category Info"
// @Success      200   {object}  ShareCategoryResponse
// @Failure      400   {object}  FieldErrorResponse "Invalid field schema"
// @Failure      404   {object}  ErrorResponse "Category not found"
// @Router       /admin/share/categories/{key} [put]
func UpdateShareCategory(c *gin.Context) {
	key := c.Param("key")

	var input ShareCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := taxonomy.NewSchemaStore(database.DB)
	cat, err := store.UpdateCategory(key, models.ShareCategory{
		Name:         input.Name,
		Description:  input.Description,
		Icon:         input.Icon,
		Color:        input.Color,
		SortOrder:    input.SortOrder,
		FieldsSchema: input.FieldsSchema,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newShareCategoryResponse(*cat))
}

// DeleteShareCategory godoc
// @Summary      Delete a share category
// @Description  Refuses to delete a category that still has resources.
// @Tags         admin-share
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Category key"
// @Success      200 {object} map[string]string "{"message": "Category deleted"}"
// @Failure      404 {object} ErrorResponse "Category not found"
// @Failure      409 {object} FieldErrorResponse "Category in use"
// @Router       /admin/share/categories/{key} [delete]
func DeleteShareCategory(c *gin.Context) {
	store := taxonomy.NewSchemaStore(database.DB)
	if err := store.DeleteCategory(c.Param("key")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
