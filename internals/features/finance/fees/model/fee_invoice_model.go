// file: internals/features/finance/fees/model/fee_invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — invoice status
============================== */

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// InvoiceStatusFor derives the status from (paid, total).
// paid may exceed total (overpayment is accepted); the status is then PAID.
func InvoiceStatusFor(paid, total int) InvoiceStatus {
	switch {
	case paid == 0:
		return InvoiceStatusUnpaid
	case paid >= total:
		return InvoiceStatusPaid
	default:
		return InvoiceStatusPartial
	}
}

/* ==============================
   MODEL — fee_invoices
============================== */

// FeeInvoice is a bill issued to one student within one school.
// Total is fixed at creation (sum of the item snapshots) and never
// recomputed. Paid amount is the running sum of recorded payments;
// it only ever moves through RecordPayment under a row lock.
type FeeInvoice struct {
	FeeInvoiceID        uuid.UUID `gorm:"column:fee_invoice_id;type:uuid;primaryKey" json:"fee_invoice_id"`
	FeeInvoiceSchoolID  uuid.UUID `gorm:"column:fee_invoice_school_id;type:uuid;not null;index" json:"fee_invoice_school_id"`
	FeeInvoiceStudentID uuid.UUID `gorm:"column:fee_invoice_student_id;type:uuid;not null;index" json:"fee_invoice_student_id"`

	FeeInvoiceTotalAmount int           `gorm:"column:fee_invoice_total_amount;not null;default:0" json:"fee_invoice_total_amount"`
	FeeInvoicePaidAmount  int           `gorm:"column:fee_invoice_paid_amount;not null;default:0" json:"fee_invoice_paid_amount"`
	FeeInvoiceStatus      InvoiceStatus `gorm:"column:fee_invoice_status;type:varchar(10);not null;default:'UNPAID'" json:"fee_invoice_status"`

	// Owned items, deleted with the invoice.
	Items []FeeInvoiceItem `gorm:"foreignKey:FeeInvoiceItemInvoiceID;references:FeeInvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	FeeInvoiceCreatedAt time.Time `gorm:"column:fee_invoice_created_at;autoCreateTime" json:"fee_invoice_created_at"`
	FeeInvoiceUpdatedAt time.Time `gorm:"column:fee_invoice_updated_at;autoUpdateTime" json:"fee_invoice_updated_at"`
}

func (FeeInvoice) TableName() string { return "fee_invoices" }

func (m *FeeInvoice) BeforeCreate(tx *gorm.DB) error {
	if m.FeeInvoiceID == uuid.Nil {
		m.FeeInvoiceID = uuid.New()
	}
	if m.FeeInvoiceStatus == "" {
		m.FeeInvoiceStatus = InvoiceStatusUnpaid
	}
	return nil
}
