package model

import (
	gModel "parish/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "donations"
	EntityName = "donation"
)

const (
	FieldID            = "id"
	FieldTransactionID = "transaction_id"
	FieldDonorName     = "donor_name"
	FieldPurpose       = "purpose"
)

// TransactionPrefix distinguishes donation receipts from booking references.
const TransactionPrefix = "DN"

type Donation struct {
	ID            string          `db:"id"`
	TransactionID string          `db:"transaction_id"`
	DonorName     string          `db:"donor_name"`
	ContactNumber string          `db:"contact_number"`
	Email         string          `db:"email"`
	Purpose       string          `db:"purpose"`
	PaymentMethod string          `db:"payment_method"`
	Amount        decimal.Decimal `db:"amount"`
	Notes         string          `db:"notes"`
	gModel.Metadata
}
