package contactapi

import (
	"net/http"

	"lafaek-backend/database"
	"lafaek-backend/internal/domain/contact"

	"github.com/gin-gonic/gin"
)

type SubmitRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Body  string `json:"body" binding:"required"`
	Lang  string `json:"lang"`
}

// ------------------------------
// POST /contact  (public, sanitized upstream)
// ------------------------------
func Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Name and message are required"})
		return
	}

	lang := req.Lang
	if lang != "tet" {
		lang = "en"
	}

	msg := contact.Message{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
		Lang:  lang,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": msg.ID})
}

// ------------------------------
// GET /admin/contact
// ------------------------------
func ListMessages(c *gin.Context) {
	var messages []contact.Message
	err := database.DB.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": messages})
}
