// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "schools24_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every route group. Authentication is out of scope
// for this service; the groups mirror the intended API surface.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin")
	routeDetails.AdminRoutes(admin, db)

	// ===================== DEVELOPER (global) =====================
	log.Println("[INFO] Setting up DEVELOPER group...")
	dev := app.Group("/api/developer")
	routeDetails.DeveloperRoutes(dev, db)
}
