package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC  domain.SkillUsecase
	sliderUC domain.SkillSliderUsecase
}

func NewSkillHandler(admin *gin.RouterGroup, skillUC domain.SkillUsecase, sliderUC domain.SkillSliderUsecase) {
	handler := &SkillHandler{skillUC: skillUC, sliderUC: sliderUC}

	skills := admin.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.PUT("", handler.UpdateLevel)
		skills.DELETE("/:name", handler.Delete)
		skills.POST("/slider", handler.Slide)
		skills.GET("/editor", handler.EditorView)
	}
}

// List godoc
// @Summary      List own skills
// @Tags         admin-skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /admin/skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	response.Success(c, http.StatusOK, "Skills", skills)
}

// UpdateLevel godoc
// @Summary      Set a skill level
// @Description  Inserts the skill the first time, then updates its level in place.
// @Tags         admin-skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skill  body      domain.SkillLevelInput  true  "Skill level"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /admin/skills [put]
func (h *SkillHandler) UpdateLevel(c *gin.Context) {
	var input domain.SkillLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	if err := h.skillUC.UpdateSkillLevel(c.Request.Context(), input.SkillName, input.Level, input.Category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill level updated", nil)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         admin-skills
// @Security     BearerAuth
// @Param        name  path      string  true  "Skill name"
// @Success      200   {object}  response.Response
// @Router       /admin/skills/{name} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.DeleteSkill(c.Request.Context(), c.Param("name")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

// Slide godoc
// @Summary      Move a skill slider
// @Description  Shows the level immediately and commits it once the slider has been still for the debounce delay.
// @Tags         admin-skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skill  body      domain.SkillLevelInput  true  "Slider position"
// @Success      202    {object}  response.Response{data=domain.SkillView}
// @Failure      400    {object}  response.Response
// @Router       /admin/skills/slider [post]
func (h *SkillHandler) Slide(c *gin.Context) {
	var input domain.SkillLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	view, err := h.sliderUC.Slide(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Skill level pending", view)
}

// EditorView godoc
// @Summary      Skill editor state
// @Description  Stored levels overlaid with pending values, per-skill state and the last commit error.
// @Tags         admin-skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.SkillView}
// @Router       /admin/skills/editor [get]
func (h *SkillHandler) EditorView(c *gin.Context) {
	views, err := h.sliderUC.EditorView(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill editor", views)
}
