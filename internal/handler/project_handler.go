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

// region --- DTOs ---

type ProjectInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	DemoURL     string `json:"demo_url"`
	GithubURL   string `json:"github_url"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Thumbnail   string    `json:"thumbnail"`
	DemoURL     string    `json:"demo_url"`
	GithubURL   string    `json:"github_url"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
}

func newProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Content:     p.Content,
		Thumbnail:   p.Thumbnail,
		DemoURL:     p.DemoURL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		Order:       p.Order,
	}
}

func projectFromInput(input ProjectInput) models.Project {
	return models.Project{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Content:     input.Content,
		Thumbnail:   input.Thumbnail,
		DemoURL:     input.DemoURL,
		GithubURL:   input.GithubURL,
		Featured:    input.Featured,
		Order:       input.Order,
	}
}

// endregion

// GetProjects godoc
// @Summary      List projects
// @Description  Retrieves all projects, featured first, then by explicit order.
// @Tags         projects
// @Produce      json
// @Success      200 {array} ProjectResponse
// @Router       /projects [get]
func GetProjects(c *gin.Context) {
	var projects []models.Project
	database.DB.Order("featured DESC, \"order\" ASC, created_at DESC").Find(&projects)

	var response []ProjectResponse
	for _, p := range projects {
		response = append(response, newProjectResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// GetProjectBySlug godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} ProjectResponse
// @Failure      404 {object} ErrorResponse "Project not found"
// @Router       /projects/{slug} [get]
func GetProjectBySlug(c *gin.Context) {
	var project models.Project
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, newProjectResponse(project))
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ProjectInput true "Project Info"
// @Success      201  {object}  ProjectResponse
// @Failure      400  {object}  FieldErrorResponse
// @Failure      409  {object}  FieldErrorResponse "Slug taken"
// @Router       /admin/projects [post]
func CreateProject(c *gin.Context) {
	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityProject, input.Slug, 0); err != nil {
		respondDomainError(c, err)
		return
	}

	project := projectFromInput(input)
	if err := database.DB.Create(&project).Error; err != nil {
		respondDomainError(c, taxonomy.TranslateDuplicate(err, "slug", "slug is already taken"))
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(project))
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true "Project ID"
// @Param        input body      ProjectInput true "New Project Info"
// @Success      200   {object}  ProjectResponse
// @Failure      404   {object}  ErrorResponse "Project not found"
// @Failure      409   {object}  FieldErrorResponse "Slug taken by another project"
// @Router       /admin/projects/{id} [put]
func UpdateProject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guard := taxonomy.NewSlugGuard(database.DB)
	if err := guard.CheckAvailable(taxonomy.EntityProject, input.Slug, project.ID); err != nil {
		respondDomainError(c, err)
		return
	}

	updated := projectFromInput(input)
	updated.ID = project.ID
	updated.CreatedAt = project.CreatedAt
	if err := database.DB.Save(&updated).Error; err != nil {
		respondDomainError(c, taxonomy.TranslateDuplicate(err, "slug", "slug is already taken"))
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(updated))
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         admin-projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Success      200 {object} map[string]string "{"message": "Project deleted"}"
// @Failure      404 {object} ErrorResponse "Project not found"
// @Router       /admin/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	// hard delete: the unique index must free the slug for reuse
	result := database.DB.Unscoped().Delete(&models.Project{}, id)
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
