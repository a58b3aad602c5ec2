// file: internals/route/details/developer_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolRoute "schools24_backend/internals/features/schools/school/route"
)

func DeveloperRoutes(dev fiber.Router, db *gorm.DB) {
	schoolRoute.SchoolDeveloperRoutes(dev, db)
}
