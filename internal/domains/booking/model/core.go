package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"parish/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

// Column names shared by every sacrament table.
const (
	FieldID            = "id"
	FieldTransactionID = "transaction_id"
	FieldStatus        = "status"
	FieldScheduleDate  = "schedule_date"
	FieldScheduleTime  = "schedule_time"
	FieldPriestID      = "priest_id"
	FieldPriestName    = "priest_name"
	FieldDocuments     = "documents"
)

// DocumentStatus tracks one checklist requirement: whether the physical copy
// was handed in, and the object-store URL when a scan was uploaded.
type DocumentStatus struct {
	Supplied bool   `json:"supplied"`
	URL      string `json:"url,omitempty"`
}

// DocumentSet maps requirement id to its status, persisted as JSONB.
type DocumentSet map[string]DocumentStatus

func (d DocumentSet) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}

	value, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document set: %w", err)
	}

	return value, nil
}

func (d *DocumentSet) Scan(src any) error {
	if src == nil {
		*d = DocumentSet{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported document set source type %T", src)
	}

	if err := json.Unmarshal(raw, d); err != nil {
		return fmt.Errorf("failed to unmarshal document set: %w", err)
	}

	return nil
}

// BookingCore carries the columns every sacrament table shares. Each record
// type embeds it alongside its own fields.
type BookingCore struct {
	ID            string          `db:"id"`
	TransactionID string          `db:"transaction_id"`
	Status        Status          `db:"status"`
	RequesterName string          `db:"requester_name"`
	ContactNumber string          `db:"contact_number"`
	Email         string          `db:"email"`
	Address       string          `db:"address"`
	ScheduleDate  *time.Time      `db:"schedule_date"`
	ScheduleTime  string          `db:"schedule_time"`
	Attendees     int             `db:"attendees"`
	PaymentMethod string          `db:"payment_method"`
	Amount        decimal.Decimal `db:"amount"`
	PriestID      *string         `db:"priest_id"`
	PriestName    *string         `db:"priest_name"`
	Documents     DocumentSet     `db:"documents"`
	model.Metadata
}

func (c BookingCore) canonical(sacrament Sacrament, details Details) Booking {
	return Booking{
		ID:            c.ID,
		Sacrament:     sacrament,
		TypeLabel:     sacrament.Label(),
		TransactionID: c.TransactionID,
		Status:        c.Status,
		RequesterName: c.RequesterName,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		ScheduleDate:  c.ScheduleDate,
		ScheduleTime:  c.ScheduleTime,
		Attendees:     c.Attendees,
		PaymentMethod: c.PaymentMethod,
		Amount:        c.Amount,
		PriestID:      c.PriestID,
		PriestName:    c.PriestName,
		Documents:     c.Documents,
		Details:       details,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
	}
}
