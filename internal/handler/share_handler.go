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

type ShareResourceInput struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Link        string            `json:"link" binding:"required,url"`
	CategoryKey string            `json:"category_key" binding:"required"`
	IconName    string            `json:"icon_name"`
	Order       int               `json:"order"`
	CustomData  models.CustomData `json:"custom_data"`
}

type RenderedFieldResponse struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Value       string   `json:"value"`
}

func newRenderedFieldResponses(fields []taxonomy.RenderedField) []RenderedFieldResponse {
	out := make([]RenderedFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, RenderedFieldResponse{
			Key:         f.Def.Key,
			Label:       f.Def.Label,
			Type:        string(f.Def.Type),
			Options:     f.Def.Options,
			Placeholder: f.Def.Placeholder,
			Value:       f.Value.String(),
		})
	}
	return out
}

type ShareResourceResponse struct {
	ID          uint              `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        string            `json:"link"`
	CategoryKey string            `json:"category_key"`
	IconName    string            `json:"icon_name"`
	Order       int               `json:"order"`
	CustomData  models.CustomData `json:"custom_data"`

	// Fields is the current schema rendered against CustomData; present on
	// the grouped share listing.
	Fields []RenderedFieldResponse `json:"fields,omitempty"`
}

func newShareResourceResponse(res models.ShareResource) ShareResourceResponse {
	data := res.CustomData
	if data == nil {
		data = models.CustomData{}
	}
	return ShareResourceResponse{
		ID:          res.ID,
		CreatedAt:   res.CreatedAt,
		Title:       res.Title,
		Description: res.Description,
		Link:        res.Link,
		CategoryKey: res.CategoryKey,
		IconName:    res.IconName,
		Order:       res.Order,
		CustomData:  data,
	}
}

// ShareGroupResponse is one category with its resources, for the share page.
type ShareGroupResponse struct {
	Category  ShareCategoryResponse   `json:"category"`
	Resources []ShareResourceResponse `json:"resources"`
}

// endregion

// region --- Public Handlers ---

// GetSharePage godoc
// @Summary      Share page payload
// @Description  Retrieves all share categories ordered by sort order, each with its resources ordered by resource order and schema-rendered fields.
// @Tags         share
// @Produce      json
// @Success      200 {array} ShareGroupResponse
// @Router       /share [get]
func GetSharePage(c *gin.Context) {
	var categories []models.ShareCategory
	err := database.DB.Preload("Resources", func(db *gorm.DB) *gorm.DB {
		return db.Order(`share_resources."order" ASC`)
	}).Order("sort_order ASC").Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve share page"})
		return
	}

	response := make([]ShareGroupResponse, 0, len(categories))
	for _, cat := range categories {
		group := ShareGroupResponse{
			Category:  newShareCategoryResponse(cat),
			Resources: make([]ShareResourceResponse, 0, len(cat.Resources)),
		}
		group.Category.ResourceCount = int64(len(cat.Resources))
		for _, res := range cat.Resources {
			resp := newShareResourceResponse(res)
			resp.Fields = newRenderedFieldResponses(taxonomy.RenderFields(cat.FieldsSchema, res.CustomData))
			group.Resources = append(group.Resources, resp)
		}
		response = append(response, group)
	}
	c.JSON(http.StatusOK, response)
}

// endregion

// region --- Admin Handlers ---

// CreateShareResource godoc
// @Summary      Create a share resource
// @Description  Creates a resource under an existing category. Custom data is stored as submitted; it is not validated against the category's schema.
// @Tags         admin-share
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ShareResourceInput true "Resource Info"
// @Success      201  {object}  ShareResourceResponse
// @Failure      400  {object}  FieldErrorResponse "Category required or missing"
// @Router       /admin/share/resources [post]
func CreateShareResource(c *gin.Context) {
	var input ShareResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := taxonomy.NewSchemaStore(database.DB)
	exists, err := store.CategoryExists(input.CategoryKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category"})
		return
	}
	if !exists {
		respondDomainError(c, &taxonomy.ValidationError{Field: "category_key", Message: "category is required and must exist"})
		return
	}

	res := models.ShareResource{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		CategoryKey: input.CategoryKey,
		IconName:    input.IconName,
		Order:       input.Order,
		CustomData:  input.CustomData,
	}
	if err := database.DB.Create(&res).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource"})
		return
	}

	c.JSON(http.StatusCreated, newShareResourceResponse(res))
}

// UpdateShareResource godoc
// @Summary      Update a share resource
// @Tags         admin-share
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true "Resource ID"
// @Param        input body      ShareResourceInput true "New Resource Info"
// @Success      200   {object}  ShareResourceResponse
// @Failure      400   {object}  FieldErrorResponse "Category required or missing"
// @Failure      404   {object}  ErrorResponse "Resource not found"
// @Router       /admin/share/resources/{id} [put]
func UpdateShareResource(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var res models.ShareResource
	if err := database.DB.First(&res, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	var input ShareResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := taxonomy.NewSchemaStore(database.DB)
	exists, err := store.CategoryExists(input.CategoryKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category"})
		return
	}
	if !exists {
		respondDomainError(c, &taxonomy.ValidationError{Field: "category_key", Message: "category is required and must exist"})
		return
	}

	res.Title = input.Title
	res.Description = input.Description
	res.Link = input.Link
	res.CategoryKey = input.CategoryKey
	res.IconName = input.IconName
	res.Order = input.Order
	res.CustomData = input.CustomData
	if err := database.DB.Save(&res).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resource"})
		return
	}

	c.JSON(http.StatusOK, newShareResourceResponse(res))
}

// DeleteShareResource godoc
// @Summary      Delete a share resource
// @Tags         admin-share
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Resource ID"
// @Success      200 {object} map[string]string "{"message": "Resource deleted"}"
// @Failure      404 {object} ErrorResponse "Resource not found"
// @Router       /admin/share/resources/{id} [delete]
func DeleteShareResource(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := database.DB.Delete(&models.ShareResource{}, id)
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}

// RenderResourceFields godoc
// @Summary      Render a category's form fields
// @Description  Returns the category's current schema zipped with values from an existing resource's custom data, for form presentation. Read-only.
// @Tags         admin-share
// @Produce      json
// @Security     BearerAuth
// @Param        key path  string true  "Category key"
// @Param        resource_id query int false "Existing resource to take values from"
// @Success      200 {array} RenderedFieldResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /admin/share/categories/{key}/fields [get]
func RenderResourceFields(c *gin.Context) {
	key := c.Param("key")

	var data models.CustomData
	if resourceID := c.Query("resource_id"); resourceID != "" {
		id, err := strconv.Atoi(resourceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource_id"})
			return
		}
		var res models.ShareResource
		if err := database.DB.First(&res, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}
		data = res.CustomData
	}

	store := taxonomy.NewSchemaStore(database.DB)
	fields, err := store.RenderFieldsFor(key, data)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRenderedFieldResponses(fields))
}

// endregion
