// file: internals/features/finance/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feesController "schools24_backend/internals/features/finance/fees/controller"
	"schools24_backend/internals/middlewares"
)

// FeesAdminRoutes mounts the fee ledger under the admin group.
func FeesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := feesController.NewFeesController(db)

	fees := admin.Group("/fees")
	{
		fees.Get("/heads", ctl.ListHeads)
		fees.Post("/heads", ctl.CreateHead)

		fees.Post("/invoices", middlewares.FeesWriteRateLimiter(), ctl.CreateInvoice)
		fees.Post("/payments", middlewares.FeesWriteRateLimiter(), ctl.RecordPayment)

		fees.Get("/collections", ctl.Collections)
	}
}
