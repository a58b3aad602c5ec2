// file: internals/features/finance/fees/model/fee_head_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — fee_heads
============================== */

// FeeHead is a named, priced line-item template scoped to one school
// (e.g. Tuition, Transport). Amounts are integers in the smallest
// currency unit. The amount is fixed at creation: later edits are out of
// scope and issued invoices never re-read it (items snapshot the price).
type FeeHead struct {
	FeeHeadID       uuid.UUID `gorm:"column:fee_head_id;type:uuid;primaryKey" json:"fee_head_id"`
	FeeHeadSchoolID uuid.UUID `gorm:"column:fee_head_school_id;type:uuid;not null;index" json:"fee_head_school_id"`

	FeeHeadName   string `gorm:"column:fee_head_name;size:120;not null" json:"fee_head_name"`
	FeeHeadAmount int    `gorm:"column:fee_head_amount;not null;check:fee_head_amount >= 0" json:"fee_head_amount"`

	FeeHeadCreatedAt time.Time `gorm:"column:fee_head_created_at;autoCreateTime" json:"fee_head_created_at"`
}

func (FeeHead) TableName() string { return "fee_heads" }

func (m *FeeHead) BeforeCreate(tx *gorm.DB) error {
	if m.FeeHeadID == uuid.Nil {
		m.FeeHeadID = uuid.New()
	}
	return nil
}
