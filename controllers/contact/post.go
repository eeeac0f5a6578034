package contactcontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fouad201/hydra-tech/mailer"
	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type contactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// contactResponse echoes the created record without its status field.
type contactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitContact validates and persists a contact form submission, then sends
// the two notification emails best effort. The 201 response depends only on
// the row being persisted; mail failures are logged and swallowed.
func SubmitContact(db *gorm.DB, m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBindJSON(&form); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(verrs)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		msg := models.ContactMessage{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Subject: form.Subject,
			Message: form.Message,
		}

		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		// Message is committed; from here on nothing may fail the request.
		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			log.Printf("❌ Failed to load site settings for contact notification: %v", err)
		}
		mailer.SendContactNotifications(m, settings, msg)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Thank you for your message. We will contact you soon!",
			"data": contactResponse{
				ID:        msg.ID,
				Name:      msg.Name,
				Email:     msg.Email,
				Phone:     msg.Phone,
				Subject:   msg.Subject,
				Message:   msg.Message,
				CreatedAt: msg.CreatedAt,
			},
		})
	}
}

// fieldErrors turns validator failures into a field → message map.
func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		default:
			out[field] = "This field is invalid."
		}
	}
	return out
}
