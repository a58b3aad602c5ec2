// file: internals/features/finance/fees/controller/fees_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schools24_backend/internals/features/finance/fees/dto"
	"schools24_backend/internals/features/finance/fees/service"
	helper "schools24_backend/internals/helpers"
)

type FeesController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewFeesController(db *gorm.DB) *FeesController {
	return &FeesController{DB: db, Ledger: service.NewLedgerService(db)}
}

var validate = validator.New()

// jsonFromLedgerErr maps the service sentinels onto the error envelope.
func jsonFromLedgerErr(c *fiber.Ctx, err error) error {
	switch {
	case service.IsNotFound(err):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case service.IsValidation(err):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GET /api/admin/fees/heads?schoolId=
func (ctl *FeesController) ListHeads(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Query("schoolId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schoolId")
	}

	heads, err := ctl.Ledger.ListHeads(schoolID)
	if err != nil {
		return jsonFromLedgerErr(c, err)
	}
	return helper.JsonOK(c, "fee heads", fiber.Map{"heads": dto.ToFeeHeadResponses(heads)})
}

// POST /api/admin/fees/heads
func (ctl *FeesController) CreateHead(c *fiber.Ctx) error {
	var in dto.CreateFeeHeadRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	head, err := ctl.Ledger.CreateHead(in.SchoolID, in.Name, in.Amount)
	if err != nil {
		return jsonFromLedgerErr(c, err)
	}
	return helper.JsonCreated(c, "fee head created", fiber.Map{"head": dto.ToFeeHeadResponse(*head)})
}

// POST /api/admin/fees/invoices
func (ctl *FeesController) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	inv, err := ctl.Ledger.CreateInvoice(in.SchoolID, in.StudentID, in.HeadIDs)
	if err != nil {
		return jsonFromLedgerErr(c, err)
	}
	return helper.JsonCreated(c, "invoice created", fiber.Map{
		"invoice_id": inv.FeeInvoiceID,
		"total":      inv.FeeInvoiceTotalAmount,
		"invoice":    dto.ToInvoiceResponse(*inv),
	})
}

// POST /api/admin/fees/payments
func (ctl *FeesController) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	inv, pay, err := ctl.Ledger.RecordPayment(in.InvoiceID, in.Amount, in.Method)
	if err != nil {
		return jsonFromLedgerErr(c, err)
	}
	return helper.JsonOK(c, "payment recorded", fiber.Map{
		"status":      inv.FeeInvoiceStatus,
		"paid_amount": inv.FeeInvoicePaidAmount,
		"payment":     dto.ToPaymentResponse(*pay),
	})
}

// GET /api/admin/fees/collections?schoolId=
func (ctl *FeesController) Collections(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Query("schoolId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schoolId")
	}

	sum, err := ctl.Ledger.Collections(schoolID)
	if err != nil {
		return jsonFromLedgerErr(c, err)
	}
	return helper.JsonOK(c, "collections", sum)
}
