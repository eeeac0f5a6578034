package routes

import (
	categorycontroller "github.com/fouad201/hydra-tech/controllers/category"
	contactcontroller "github.com/fouad201/hydra-tech/controllers/contact"
	coursecontroller "github.com/fouad201/hydra-tech/controllers/course"
	printingcontroller "github.com/fouad201/hydra-tech/controllers/printing"
	productcontroller "github.com/fouad201/hydra-tech/controllers/product"
	servicecontroller "github.com/fouad201/hydra-tech/controllers/service"
	settingscontroller "github.com/fouad201/hydra-tech/controllers/settings"
	"github.com/fouad201/hydra-tech/mailer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the read-only content endpoints and the
// contact form. Everything here is open: read is public, write is public.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, m mailer.Mailer) {
	// ──────────────── Services ────────────────
	r.GET("/services", servicecontroller.GetServices(db))
	r.GET("/services/:id", servicecontroller.GetServiceByID(db))

	// ──────────────── Product Categories (slug lookup) ────────────────
	r.GET("/product-categories", categorycontroller.GetCategories(db))
	r.GET("/product-categories/:slug", categorycontroller.GetCategoryBySlug(db))

	// ──────────────── Products ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Courses ────────────────
	r.GET("/courses", coursecontroller.GetCourses(db))
	r.GET("/courses/:id", coursecontroller.GetCourseByID(db))

	// ──────────────── 3D Printing Showcase ────────────────
	r.GET("/3d-printing", printingcontroller.GetProjects(db))
	r.GET("/3d-printing/:id", printingcontroller.GetProjectByID(db))

	// ──────────────── Site Settings (singleton) ────────────────
	r.GET("/site-settings", settingscontroller.GetSiteSettings(db))

	// ──────────────── Contact Form ────────────────
	r.POST("/contact", contactcontroller.SubmitContact(db, m))
}
