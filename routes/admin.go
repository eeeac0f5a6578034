package routes

import (
	categorycontroller "github.com/fouad201/hydra-tech/controllers/category"
	contactcontroller "github.com/fouad201/hydra-tech/controllers/contact"
	coursecontroller "github.com/fouad201/hydra-tech/controllers/course"
	printingcontroller "github.com/fouad201/hydra-tech/controllers/printing"
	productcontroller "github.com/fouad201/hydra-tech/controllers/product"
	servicecontroller "github.com/fouad201/hydra-tech/controllers/service"
	settingscontroller "github.com/fouad201/hydra-tech/controllers/settings"
	"github.com/fouad201/hydra-tech/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints for content editors.
// Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Services ───────────
		serviceAdmin := adminGroup.Group("/services")
		{
			serviceAdmin.GET("", servicecontroller.GetServices(db))
			serviceAdmin.POST("", servicecontroller.CreateService(db))
			serviceAdmin.PUT("/:id", servicecontroller.UpdateService(db))
			serviceAdmin.DELETE("/:id", servicecontroller.DeleteService(db))
		}

		// ─────────── Product Categories ───────────
		categoryAdmin := adminGroup.Group("/product-categories")
		{
			categoryAdmin.GET("", categorycontroller.GetCategories(db))
			categoryAdmin.POST("", categorycontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Products ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Courses ───────────
		courseAdmin := adminGroup.Group("/courses")
		{
			courseAdmin.GET("", coursecontroller.GetCourses(db))
			courseAdmin.POST("", coursecontroller.CreateCourse(db))
			courseAdmin.PUT("/:id", coursecontroller.UpdateCourse(db))
			courseAdmin.DELETE("/:id", coursecontroller.DeleteCourse(db))
		}

		// ─────────── 3D Printing Projects ───────────
		printingAdmin := adminGroup.Group("/3d-printing")
		{
			printingAdmin.GET("", printingcontroller.GetProjects(db))
			printingAdmin.POST("", printingcontroller.CreateProject(db))
			printingAdmin.PUT("/:id", printingcontroller.UpdateProject(db))
			printingAdmin.DELETE("/:id", printingcontroller.DeleteProject(db))
		}

		// ─────────── Site Settings (singleton: no create, no delete) ───────────
		settingsAdmin := adminGroup.Group("/site-settings")
		{
			settingsAdmin.GET("", settingscontroller.GetSiteSettings(db))
			settingsAdmin.PUT("", settingscontroller.UpdateSiteSettings(db))
		}

		// ─────────── Contact Messages (no create: submissions only arrive
		// through the public form; only status is editable) ───────────
		contactAdmin := adminGroup.Group("/contact-messages")
		{
			contactAdmin.GET("", contactcontroller.GetContactMessages(db))
			contactAdmin.GET("/:id", contactcontroller.GetContactMessageByID(db))
			contactAdmin.PATCH("/:id/status", contactcontroller.UpdateContactMessageStatus(db))
			contactAdmin.DELETE("/:id", contactcontroller.DeleteContactMessage(db))
		}
	}
}
