package v1

import (
	"fmt"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the public form under public (wrapped by
// submitLimit) and the inbox routes under admin.
func NewContactHandler(public, admin *gin.RouterGroup, contactUC domain.ContactUsecase, submitLimit gin.HandlerFunc) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contact", submitLimit, handler.SubmitContact)

	inbox := admin.Group("/contacts")
	{
		inbox.GET("", handler.ListContacts)
		inbox.GET("/export", handler.ExportContacts)
		inbox.PATCH("/:id/read", handler.MarkRead)
		inbox.PATCH("/:id/archive", handler.Archive)
		inbox.DELETE("/:id", handler.Delete)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", nil)
}

// ListContacts godoc
// @Summary      List contact submissions
// @Tags         admin-contacts
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query     string  false  "all, unread or archived"
// @Success      200     {object}  response.Response{data=domain.ContactList}
// @Failure      401     {object}  response.Response
// @Router       /admin/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	list, err := h.contactUC.ListContacts(c.Request.Context(), domain.ContactFilter(c.Query("filter")))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact submissions", list)
}

// MarkRead godoc
// @Summary      Mark a submission read
// @Tags         admin-contacts
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Router       /admin/contacts/{id}/read [patch]
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactUC.MarkContactRead(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Marked as read", nil)
}

type archiveRequest struct {
	Archived *bool `json:"archived"`
}

// Archive godoc
// @Summary      Archive or restore a submission
// @Description  Body {"archived": false} restores. An empty body archives.
// @Tags         admin-contacts
// @Accept       json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Router       /admin/contacts/{id}/archive [patch]
func (h *ContactHandler) Archive(c *gin.Context) {
	var req archiveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
	}
	archived := req.Archived == nil || *req.Archived

	if err := h.contactUC.ArchiveContact(c.Request.Context(), c.Param("id"), archived); err != nil {
		c.Error(err)
		return
	}
	msg := "Archived"
	if !archived {
		msg = "Restored"
	}
	response.Success(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary      Delete a submission
// @Tags         admin-contacts
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  response.Response
// @Router       /admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactUC.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}

// ExportContacts godoc
// @Summary      Export contact submissions
// @Tags         admin-contacts
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Router       /admin/contacts/export [get]
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	export, err := h.contactUC.ExportContacts(c.Request.Context(), c.DefaultQuery("format", "xlsx"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
