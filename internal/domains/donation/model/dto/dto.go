package dto

import (
	"parish/internal/domains/booking/txid"
	"parish/internal/domains/donation/model"
	"parish/shared"
	"parish/shared/constant"
	gModel "parish/shared/model"
	"parish/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDonationRequest struct {
	DonorName     string          `json:"donor_name"     validate:"required,max=150"`
	ContactNumber string          `json:"contact_number" validate:"omitempty,phmobile"`
	Email         string          `json:"email"          validate:"omitempty,email,max=150"`
	Purpose       string          `json:"purpose"        validate:"required,max=150"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash gcash bank_transfer"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	Notes         string          `json:"notes"          validate:"omitempty,max=500"`
}

func (r *CreateDonationRequest) ToModel(user string) model.Donation {
	now := timezone.Now()

	return model.Donation{
		ID:            uuid.NewString(),
		TransactionID: txid.Generate(model.TransactionPrefix),
		DonorName:     r.DonorName,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Purpose:       r.Purpose,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		Notes:         r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DonationResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	DonorName     string          `json:"donor_name"`
	ContactNumber string          `json:"contact_number,omitempty"`
	Email         string          `json:"email,omitempty"`
	Purpose       string          `json:"purpose"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

func (r *DonationResponse) FromModel(donation model.Donation) {
	r.ID = donation.ID
	r.TransactionID = donation.TransactionID
	r.DonorName = donation.DonorName
	r.ContactNumber = donation.ContactNumber
	r.Email = donation.Email
	r.Purpose = donation.Purpose
	r.PaymentMethod = donation.PaymentMethod
	r.Amount = donation.Amount
	r.Notes = donation.Notes
	r.CreatedAt = timezone.Format(donation.CreatedAt, constant.DateFormat)
}

type GetDonationsResponse struct {
	Donations   []DonationResponse `json:"donations"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	TotalPage   int                `json:"total_page"`
	TotalData   int                `json:"total_data"`
}

func (r *GetDonationsResponse) FromModels(donations []model.Donation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.TotalAmount = decimal.Zero

	r.Donations = make([]DonationResponse, len(donations))
	for i, donation := range donations {
		r.Donations[i].FromModel(donation)
		r.TotalAmount = r.TotalAmount.Add(donation.Amount)
	}
}
