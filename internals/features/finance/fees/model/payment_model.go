// file: internals/features/finance/fees/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

// Known method codes. Unknown codes are stored as-is: the ledger treats
// the method as an opaque label, not a validated enum.
const (
	PaymentMethodCash = "CASH"
	PaymentMethodCard = "CARD"
	PaymentMethodUPI  = "UPI"
)

/* ===================== Model ===================== */

// Payment is an immutable record of money received against one invoice.
// Rows are append-only; the invoice paid amount is the running sum of them.
type Payment struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	PaymentAmount int    `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentMethod string `gorm:"column:payment_method;size:20;not null;default:'CASH'" json:"payment_method"`

	// Free-form metadata (receipt no, counter clerk, bank reference, ...).
	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentPaidAt time.Time `gorm:"column:payment_paid_at;autoCreateTime" json:"payment_paid_at"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentMethod == "" {
		m.PaymentMethod = PaymentMethodCash
	}
	return nil
}

func (m *Payment) IsManual() bool {
	switch m.PaymentMethod {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	default:
		return false
	}
}
