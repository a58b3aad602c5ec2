// file: internals/features/academics/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignController "schools24_backend/internals/features/academics/assignments/controller"
	classController "schools24_backend/internals/features/academics/classes/controller"
	subjectController "schools24_backend/internals/features/academics/subjects/controller"
)

// AcademicsAdminRoutes mounts class/subject administration under the admin group.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classes := classController.NewClassController(db)
	subjects := subjectController.NewSubjectController(db)
	assignments := assignController.NewAssignmentController(db)

	admin.Get("/classes", classes.ListClasses)
	admin.Post("/classes", classes.CreateClass)

	admin.Get("/classes/:id/assignments", assignments.ListForClass)
	admin.Put("/classes/:id/assign-teacher", assignments.AssignTeacher)
	admin.Delete("/classes/:id/remove-teacher", assignments.RemoveTeacher)

	admin.Get("/subjects", subjects.ListSubjects)
	admin.Post("/subjects", subjects.CreateSubject)
}
