package routes

import (
	"github.com/fouad201/hydra-tech/mailer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public content
// endpoints and the API-key-protected admin console.
func SetupRoutes(r *gin.Engine, db *gorm.DB, m mailer.Mailer) {
	// 1️⃣ Public read-only content + contact form (no middleware)
	SetupPublicRoutes(r, db, m)

	// 2️⃣ Admin console (API-key-protected)
	SetupAdminRoutes(r, db)
}
