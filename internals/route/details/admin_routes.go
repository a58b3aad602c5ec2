// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "schools24_backend/internals/features/academics/route"
	dashboardController "schools24_backend/internals/features/admin/dashboard/controller"
	feesRoute "schools24_backend/internals/features/finance/fees/route"
	userRoute "schools24_backend/internals/features/users/user/route"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboard := dashboardController.NewDashboardController(db)
	admin.Get("/dashboard", dashboard.Dashboard)

	userRoute.UserAdminRoutes(admin, db)
	academicsRoute.AcademicsAdminRoutes(admin, db)
	feesRoute.FeesAdminRoutes(admin, db)
}
