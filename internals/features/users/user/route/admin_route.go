// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schools24_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts user provisioning under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	admin.Post("/users", ctl.CreateUser)
	admin.Get("/teachers", ctl.ListTeachers)
}
