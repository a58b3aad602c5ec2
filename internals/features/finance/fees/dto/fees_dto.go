// file: internals/features/finance/fees/dto/fees_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feesModel "schools24_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////////////////////////////

type CreateFeeHeadRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=120"`
	Amount   int       `json:"amount" validate:"min=0"`
}

type CreateInvoiceRequest struct {
	SchoolID  uuid.UUID   `json:"school_id" validate:"required"`
	StudentID uuid.UUID   `json:"student_id" validate:"required"`
	HeadIDs   []uuid.UUID `json:"head_ids" validate:"required,min=1"`
}

type RecordPaymentRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
	Amount    int       `json:"amount" validate:"required"`
	// Method is passed through as-is; CASH/CARD/UPI are the known codes.
	Method string `json:"method" validate:"omitempty,max=20"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type FeeHeadResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	Name      string    `json:"name"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func ToFeeHeadResponse(m feesModel.FeeHead) FeeHeadResponse {
	return FeeHeadResponse{
		ID:        m.FeeHeadID,
		SchoolID:  m.FeeHeadSchoolID,
		Name:      m.FeeHeadName,
		Amount:    m.FeeHeadAmount,
		CreatedAt: m.FeeHeadCreatedAt,
	}
}

func ToFeeHeadResponses(ms []feesModel.FeeHead) []FeeHeadResponse {
	out := make([]FeeHeadResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeHeadResponse(m))
	}
	return out
}

type InvoiceItemResponse struct {
	ID     uuid.UUID `json:"id"`
	HeadID uuid.UUID `json:"head_id"`
	Amount int       `json:"amount"`
}

type InvoiceResponse struct {
	ID          uuid.UUID               `json:"id"`
	SchoolID    uuid.UUID               `json:"school_id"`
	StudentID   uuid.UUID               `json:"student_id"`
	TotalAmount int                     `json:"total_amount"`
	PaidAmount  int                     `json:"paid_amount"`
	Status      feesModel.InvoiceStatus `json:"status"`
	Items       []InvoiceItemResponse   `json:"items,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

func ToInvoiceResponse(m feesModel.FeeInvoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, InvoiceItemResponse{
			ID:     it.FeeInvoiceItemID,
			HeadID: it.FeeInvoiceItemHeadID,
			Amount: it.FeeInvoiceItemAmount,
		})
	}
	return InvoiceResponse{
		ID:          m.FeeInvoiceID,
		SchoolID:    m.FeeInvoiceSchoolID,
		StudentID:   m.FeeInvoiceStudentID,
		TotalAmount: m.FeeInvoiceTotalAmount,
		PaidAmount:  m.FeeInvoicePaidAmount,
		Status:      m.FeeInvoiceStatus,
		Items:       items,
		CreatedAt:   m.FeeInvoiceCreatedAt,
	}
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Amount    int       `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
}

func ToPaymentResponse(m feesModel.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        m.PaymentID,
		InvoiceID: m.PaymentInvoiceID,
		Amount:    m.PaymentAmount,
		Method:    m.PaymentMethod,
		PaidAt:    m.PaymentPaidAt,
	}
}
