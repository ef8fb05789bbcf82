package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the anonymous read surface as bare JSON.
type PublicHandler struct {
	publicUC domain.PublicUsecase
}

func NewPublicHandler(public *gin.RouterGroup, publicUC domain.PublicUsecase) {
	handler := &PublicHandler{publicUC: publicUC}

	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:id", handler.GetProject)
	public.GET("/certifications", handler.ListCertifications)
	public.GET("/skills", handler.ListSkills)
	public.GET("/about", handler.GetAbout)
	public.GET("/experiences", handler.ListExperiences)
}

// ListProjects godoc
// @Summary      List projects
// @Description  Public projection of every project, newest first. A store failure answers 500 with an empty array.
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.PublicProject
// @Failure      500  {array}  domain.PublicProject
// @Router       /projects [get]
func (h *PublicHandler) ListProjects(c *gin.Context) {
	projects, err := h.publicUC.Projects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, projects)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Get project
// @Tags         public
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.PublicProject
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *PublicHandler) GetProject(c *gin.Context) {
	project, err := h.publicUC.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListCertifications godoc
// @Summary      List certifications
// @Description  Newest issue date first, undated last. Failures degrade to an empty array.
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.Certification
// @Router       /certifications [get]
func (h *PublicHandler) ListCertifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.publicUC.Certifications(c.Request.Context()))
}

// ListSkills godoc
// @Summary      List skills
// @Description  Ordered by category then name. Failures degrade to an empty array.
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /skills [get]
func (h *PublicHandler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.publicUC.Skills(c.Request.Context()))
}

// GetAbout godoc
// @Summary      Get about section
// @Description  Empty object when no section exists or the read fails.
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.AboutSection
// @Router       /about [get]
func (h *PublicHandler) GetAbout(c *gin.Context) {
	about := h.publicUC.About(c.Request.Context())
	if about == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, about)
}

// ListExperiences godoc
// @Summary      List experiences
// @Description  Newest start date first. A store failure answers 500 with an empty array.
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Failure      500  {array}  domain.Experience
// @Router       /experiences [get]
func (h *PublicHandler) ListExperiences(c *gin.Context) {
	exps, err := h.publicUC.Experiences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, exps)
		return
	}
	c.JSON(http.StatusOK, exps)
}
