// file: internals/features/finance/fees/service/ledger_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feesModel "schools24_backend/internals/features/finance/fees/model"
	userModel "schools24_backend/internals/features/users/user/model"
	schoolModel "schools24_backend/internals/features/schools/school/model"
	"schools24_backend/internals/constants"
)

// LedgerService holds the fee ledger business logic: fee head catalog,
// invoice building, payment recording and the collections aggregate.
// Every mutating operation runs as a single gorm transaction.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

/* =======================================================
   CATALOG — fee heads
======================================================= */

func (s *LedgerService) CreateHead(schoolID uuid.UUID, name string, amount int) (*feesModel.FeeHead, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHeadName
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if err := s.ensureSchool(s.DB, schoolID); err != nil {
		return nil, err
	}

	head := feesModel.FeeHead{
		FeeHeadSchoolID: schoolID,
		FeeHeadName:     name,
		FeeHeadAmount:   amount,
	}
	if err := s.DB.Create(&head).Error; err != nil {
		return nil, err
	}
	return &head, nil
}

func (s *LedgerService) ListHeads(schoolID uuid.UUID) ([]feesModel.FeeHead, error) {
	if err := s.ensureSchool(s.DB, schoolID); err != nil {
		return nil, err
	}
	var heads []feesModel.FeeHead
	if err := s.DB.
		Where("fee_head_school_id = ?", schoolID).
		Order("fee_head_created_at ASC").
		Find(&heads).Error; err != nil {
		return nil, err
	}
	return heads, nil
}

/* =======================================================
   INVOICE BUILDER
======================================================= */

// CreateInvoice composes an invoice for a student from the given heads,
// snapshotting each head's current amount into an item in input order.
// The invoice and all items commit atomically: a single failed head
// lookup rolls the whole thing back.
//
// Heads belonging to a different school than the invoice are rejected
// with ErrHeadNotFound.
func (s *LedgerService) CreateInvoice(schoolID, studentID uuid.UUID, headIDs []uuid.UUID) (*feesModel.FeeInvoice, error) {
	if len(headIDs) == 0 {
		return nil, ErrEmptyHeadList
	}

	var inv feesModel.FeeInvoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureSchool(tx, schoolID); err != nil {
			return err
		}

		var student userModel.UserModel
		if err := tx.
			Where("id = ? AND role = ? AND is_active = ?", studentID, constants.RoleStudent, true).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		inv = feesModel.FeeInvoice{
			FeeInvoiceSchoolID:  schoolID,
			FeeInvoiceStudentID: studentID,
			FeeInvoiceStatus:    feesModel.InvoiceStatusUnpaid,
		}

		total := 0
		items := make([]feesModel.FeeInvoiceItem, 0, len(headIDs))
		for pos, headID := range headIDs {
			var head feesModel.FeeHead
			if err := tx.
				Where("fee_head_id = ? AND fee_head_school_id = ?", headID, schoolID).
				First(&head).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrHeadNotFound
				}
				return err
			}
			items = append(items, feesModel.FeeInvoiceItem{
				FeeInvoiceItemHeadID:   head.FeeHeadID,
				FeeInvoiceItemAmount:   head.FeeHeadAmount,
				FeeInvoiceItemPosition: pos,
			})
			total += head.FeeHeadAmount
		}

		inv.FeeInvoiceTotalAmount = total
		inv.Items = items
		return tx.Create(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

/* =======================================================
   LEDGER — payments
======================================================= */

// RecordPayment appends an immutable payment against an invoice and moves
// paid amount/status forward. The invoice row is locked FOR UPDATE so
// concurrent payments against the same invoice serialize instead of
// losing increments. Overpayment is accepted: paid may exceed total and
// the status simply stays PAID.
func (s *LedgerService) RecordPayment(invoiceID uuid.UUID, amount int, method string) (*feesModel.FeeInvoice, *feesModel.Payment, error) {
	if amount <= 0 {
		return nil, nil, ErrNonPositiveAmount
	}
	if strings.TrimSpace(method) == "" {
		method = feesModel.PaymentMethodCash
	}

	var (
		inv feesModel.FeeInvoice
		pay feesModel.Payment
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			Where("fee_invoice_id = ?", invoiceID).
			First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		pay = feesModel.Payment{
			PaymentInvoiceID: inv.FeeInvoiceID,
			PaymentAmount:    amount,
			PaymentMethod:    method,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		inv.FeeInvoicePaidAmount += amount
		inv.FeeInvoiceStatus = feesModel.InvoiceStatusFor(inv.FeeInvoicePaidAmount, inv.FeeInvoiceTotalAmount)

		return tx.Model(&feesModel.FeeInvoice{}).
			Where("fee_invoice_id = ?", inv.FeeInvoiceID).
			Updates(map[string]any{
				"fee_invoice_paid_amount": inv.FeeInvoicePaidAmount,
				"fee_invoice_status":      inv.FeeInvoiceStatus,
			}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &inv, &pay, nil
}

/* =======================================================
   AGGREGATOR — collections
======================================================= */

type CollectionsSummary struct {
	Billed    int `json:"billed"`
	Collected int `json:"collected"`
	Due       int `json:"due"`
}

// Collections sums billed/collected/due across every invoice of a school.
// Due goes negative when invoices are overpaid; it is reported as-is.
func (s *LedgerService) Collections(schoolID uuid.UUID) (*CollectionsSummary, error) {
	if err := s.ensureSchool(s.DB, schoolID); err != nil {
		return nil, err
	}

	var row struct {
		Billed    int
		Collected int
	}
	if err := s.DB.Model(&feesModel.FeeInvoice{}).
		Select("COALESCE(SUM(fee_invoice_total_amount), 0) AS billed, COALESCE(SUM(fee_invoice_paid_amount), 0) AS collected").
		Where("fee_invoice_school_id = ?", schoolID).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &CollectionsSummary{
		Billed:    row.Billed,
		Collected: row.Collected,
		Due:       row.Billed - row.Collected,
	}, nil
}

/* =======================================================
   INTERNAL
======================================================= */

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect supports it.
// sqlite has no row locks; its single-writer model already serializes.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (s *LedgerService) ensureSchool(tx *gorm.DB, schoolID uuid.UUID) error {
	var n int64
	if err := tx.Model(&schoolModel.SchoolModel{}).
		Where("id = ?", schoolID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrSchoolNotFound
	}
	return nil
}
