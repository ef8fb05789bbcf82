package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certUC domain.CertificationUsecase
}

func NewCertificationHandler(admin *gin.RouterGroup, certUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certUC: certUC}

	certs := admin.Group("/certifications")
	{
		certs.GET("", handler.List)
		certs.POST("", handler.Create)
		certs.PUT("/:id", handler.Update)
		certs.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List own certifications
// @Tags         admin-certifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.Certification}
// @Router       /admin/certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.certUC.ListCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	response.Success(c, http.StatusOK, "Certifications", certs)
}

// Create godoc
// @Summary      Add certification
// @Tags         admin-certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        certification  body      domain.CertificationInput  true  "Certification"
// @Success      201            {object}  response.Response{data=domain.Certification}
// @Router       /admin/certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	cert, err := h.certUC.CreateCertification(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certification created", cert)
}

// Update godoc
// @Summary      Update certification
// @Tags         admin-certifications
// @Accept       json
// @Security     BearerAuth
// @Param        id             path      string                     true  "Certification ID"
// @Param        certification  body      domain.CertificationInput  true  "Certification"
// @Success      200            {object}  response.Response
// @Router       /admin/certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	if err := h.certUC.UpdateCertification(c.Request.Context(), c.Param("id"), &input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification updated", nil)
}

// Delete godoc
// @Summary      Delete certification
// @Tags         admin-certifications
// @Security     BearerAuth
// @Param        id   path      string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Router       /admin/certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.certUC.DeleteCertification(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification deleted", nil)
}
