package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(admin *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := admin.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List own projects
// @Tags         admin-projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Failure      401  {object}  response.Response
// @Router       /admin/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	response.Success(c, http.StatusOK, "Projects", projects)
}

// Create godoc
// @Summary      Add project
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      domain.ProjectInput  true  "Project"
// @Success      201      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /admin/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	project, err := h.projectUC.CreateProject(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

// Update godoc
// @Summary      Update project
// @Description  Updating another owner's project is a silent no-op.
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Project ID"
// @Param        project  body      domain.ProjectInput  true  "Project"
// @Success      200      {object}  response.Response
// @Router       /admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	if err := h.projectUC.UpdateProject(c.Request.Context(), c.Param("id"), &input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", nil)
}

// Delete godoc
// @Summary      Delete project
// @Tags         admin-projects
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Router       /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectUC.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}
