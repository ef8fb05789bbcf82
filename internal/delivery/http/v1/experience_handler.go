package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	expUC domain.ExperienceUsecase
}

func NewExperienceHandler(admin *gin.RouterGroup, expUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{expUC: expUC}

	exps := admin.Group("/experiences")
	{
		exps.GET("", handler.List)
		exps.POST("", handler.Create)
		exps.PUT("/:id", handler.Update)
		exps.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List own experiences
// @Tags         admin-experiences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Router       /admin/experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	exps, err := h.expUC.ListExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	response.Success(c, http.StatusOK, "Experiences", exps)
}

// Create godoc
// @Summary      Add experience
// @Description  A current role never keeps an end date. The end date may not precede the start date.
// @Tags         admin-experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        experience  body      domain.ExperienceInput  true  "Experience"
// @Success      201         {object}  response.Response{data=domain.Experience}
// @Router       /admin/experiences [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	exp, err := h.expUC.CreateExperience(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience created", exp)
}

// Update godoc
// @Summary      Update experience
// @Tags         admin-experiences
// @Accept       json
// @Security     BearerAuth
// @Param        id          path      string                  true  "Experience ID"
// @Param        experience  body      domain.ExperienceInput  true  "Experience"
// @Success      200         {object}  response.Response
// @Router       /admin/experiences/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	if err := h.expUC.UpdateExperience(c.Request.Context(), c.Param("id"), &input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", nil)
}

// Delete godoc
// @Summary      Delete experience
// @Tags         admin-experiences
// @Security     BearerAuth
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Router       /admin/experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.expUC.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
