package handlers

import (
	"net/http"

	"tourguide/models"
	"tourguide/services/contact"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Service *contact.Service
}

func NewContactHandler(s *contact.Service) *ContactHandler {
	return &ContactHandler{Service: s}
}

// SubmitContact handles the public POST /contact form.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	msg, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message received", "contact": msg})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	msgs, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if msgs == nil {
		msgs = []models.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{"contacts": msgs})
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	msg, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": msg})
}

func (h *ContactHandler) MarkContactRead(c *gin.Context) {
	msg, err := h.Service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": msg})
}

func (h *ContactHandler) ResolveContact(c *gin.Context) {
	msg, err := h.Service.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": msg})
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted"})
}
