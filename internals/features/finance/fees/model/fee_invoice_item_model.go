// file: internals/features/finance/fees/model/fee_invoice_item_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — fee_invoice_items
============================== */

// FeeInvoiceItem is one billed line within an invoice. It references the
// fee head it was copied from and carries the amount as a value snapshot:
// later price changes on the head never touch issued invoices.
type FeeInvoiceItem struct {
	FeeInvoiceItemID        uuid.UUID `gorm:"column:fee_invoice_item_id;type:uuid;primaryKey" json:"fee_invoice_item_id"`
	FeeInvoiceItemInvoiceID uuid.UUID `gorm:"column:fee_invoice_item_invoice_id;type:uuid;not null;index" json:"fee_invoice_item_invoice_id"`
	FeeInvoiceItemHeadID    uuid.UUID `gorm:"column:fee_invoice_item_head_id;type:uuid;not null" json:"fee_invoice_item_head_id"`

	FeeInvoiceItemAmount int `gorm:"column:fee_invoice_item_amount;not null" json:"fee_invoice_item_amount"`

	// Preserves the caller's head ordering within the invoice.
	FeeInvoiceItemPosition int `gorm:"column:fee_invoice_item_position;not null;default:0" json:"fee_invoice_item_position"`
}

func (FeeInvoiceItem) TableName() string { return "fee_invoice_items" }

func (m *FeeInvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if m.FeeInvoiceItemID == uuid.Nil {
		m.FeeInvoiceItemID = uuid.New()
	}
	return nil
}
