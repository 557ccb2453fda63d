package handlers

import (
	"net/http"

	"travelagency/internal/domain/models"
	"travelagency/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required,notblank"`
}

// GET /api/notifications
func (a API) MyNotifications(c *gin.Context) {
	out, err := a.notificationService(c).ListMine(middleware.RequestContextFrom(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// PUT /api/notifications/:id/read
func (a API) MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := a.notificationService(c).MarkRead(middleware.RequestContextFrom(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifikasi ditandai sudah dibaca"})
}

// POST /api/contact
func (a API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := a.notificationService(c).SubmitContact(models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /api/admin/contact
func (a API) ListContact(c *gin.Context) {
	out, err := a.notificationService(c).ListContact()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
