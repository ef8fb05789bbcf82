package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AboutHandler struct {
	aboutUC domain.AboutUsecase
}

func NewAboutHandler(admin *gin.RouterGroup, aboutUC domain.AboutUsecase) {
	handler := &AboutHandler{aboutUC: aboutUC}

	admin.GET("/about", handler.Get)
	admin.PUT("/about", handler.Update)
}

// Get godoc
// @Summary      Get own about section
// @Description  data is null until the section is first saved.
// @Tags         admin-about
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.AboutSection}
// @Router       /admin/about [get]
func (h *AboutHandler) Get(c *gin.Context) {
	about, err := h.aboutUC.GetAboutSection(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About section", about)
}

// Update godoc
// @Summary      Save about section
// @Tags         admin-about
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        about  body      domain.AboutInput  true  "About"
// @Success      200    {object}  response.Response{data=domain.AboutSection}
// @Router       /admin/about [put]
func (h *AboutHandler) Update(c *gin.Context) {
	var input domain.AboutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	about, err := h.aboutUC.UpdateAboutSection(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About section saved", about)
}
