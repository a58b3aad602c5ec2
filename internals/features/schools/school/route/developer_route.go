// file: internals/features/schools/school/route/developer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schools24_backend/internals/features/schools/school/controller"
)

// SchoolDeveloperRoutes mounts school provisioning under the developer group.
func SchoolDeveloperRoutes(dev fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)

	dev.Get("/overview", ctl.Overview)

	schools := dev.Group("/schools")
	{
		// /export before /:id so it is not captured as an id
		schools.Get("/export", ctl.ExportCSV)

		schools.Get("/", ctl.ListSchools)
		schools.Post("/", ctl.CreateSchool)

		schools.Get("/:id/locks", ctl.GetLocks)
		schools.Put("/:id/locks", ctl.UpdateLocks)

		schools.Get("/:id/users", ctl.ListSchoolUsers)
		schools.Post("/:id/users", ctl.CreateSchoolUser)
		schools.Post("/:id/provision-admin", ctl.ProvisionAdmin)
	}
}
