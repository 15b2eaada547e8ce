package dto

import (
	"fmt"
	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/pipeline"
	"parish/internal/domains/booking/txid"
	"parish/shared"
	"parish/shared/constant"
	gModel "parish/shared/model"
	"parish/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingCore carries the fields every submission form shares. Contact
// number and email are pre-filled from the session on the user-facing forms
// but validated here regardless.
type CreateBookingCore struct {
	RequesterName string          `json:"requester_name" validate:"required,max=150"`
	ContactNumber string          `json:"contact_number" validate:"required,phmobile"`
	Email         string          `json:"email"          validate:"required,email,max=150"`
	Address       string          `json:"address"        validate:"omitempty,max=250"`
	ScheduleDate  string          `json:"schedule_date"  validate:"required"`
	ScheduleTime  string          `json:"schedule_time"  validate:"omitempty,max=20"`
	Attendees     int             `json:"attendees"      validate:"omitempty,gte=1,lte=1000"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=cash gcash bank_transfer"`
	Amount        decimal.Decimal `json:"amount"         validate:"omitempty"`
}

func (c *CreateBookingCore) toCore(sacrament model.Sacrament, user string) (model.BookingCore, error) {
	scheduleDate, err := timezone.Parse(constant.BookingDateFormat, c.ScheduleDate)
	if err != nil {
		return model.BookingCore{}, fmt.Errorf("invalid schedule date %q: %w", c.ScheduleDate, err)
	}

	now := timezone.Now()

	return model.BookingCore{
		ID:            uuid.NewString(),
		TransactionID: txid.Generate(sacrament.Prefix()),
		Status:        model.StatusPending,
		RequesterName: c.RequesterName,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		ScheduleDate:  &scheduleDate,
		ScheduleTime:  c.ScheduleTime,
		Attendees:     c.Attendees,
		PaymentMethod: c.PaymentMethod,
		Amount:        c.Amount,
		Documents:     model.DocumentSet{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateWeddingRequest struct {
	CreateBookingCore
	GroomFirstName string `json:"groom_first_name" validate:"required,max=100"`
	GroomLastName  string `json:"groom_last_name"  validate:"required,max=100"`
	BrideFirstName string `json:"bride_first_name" validate:"required,max=100"`
	BrideLastName  string `json:"bride_last_name"  validate:"required,max=100"`
	CivillyMarried string `json:"civilly_married"  validate:"required,oneof=yes no"`
}

func (r *CreateWeddingRequest) ToRecord(user string) (model.WeddingRecord, error) {
	core, err := r.toCore(model.SacramentWedding, user)
	if err != nil {
		return model.WeddingRecord{}, err
	}

	return model.WeddingRecord{
		BookingCore:    core,
		GroomFirstName: r.GroomFirstName,
		GroomLastName:  r.GroomLastName,
		BrideFirstName: r.BrideFirstName,
		BrideLastName:  r.BrideLastName,
		CivillyMarried: r.CivillyMarried,
	}, nil
}

type CreateBaptismRequest struct {
	CreateBookingCore
	CandidateFirstName string `json:"candidate_first_name" validate:"required,max=100"`
	CandidateLastName  string `json:"candidate_last_name"  validate:"required,max=100"`
	FatherName         string `json:"father_name"          validate:"omitempty,max=150"`
	MotherName         string `json:"mother_name"          validate:"omitempty,max=150"`
}

func (r *CreateBaptismRequest) ToRecord(user string) (model.BaptismRecord, error) {
	core, err := r.toCore(model.SacramentBaptism, user)
	if err != nil {
		return model.BaptismRecord{}, err
	}

	return model.BaptismRecord{
		BookingCore:        core,
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		FatherName:         r.FatherName,
		MotherName:         r.MotherName,
	}, nil
}

type CreateBurialRequest struct {
	CreateBookingCore
	DeceasedName string `json:"deceased_name" validate:"required,max=150"`
	DateOfDeath  string `json:"date_of_death" validate:"omitempty"`
}

func (r *CreateBurialRequest) ToRecord(user string) (model.BurialRecord, error) {
	core, err := r.toCore(model.SacramentBurial, user)
	if err != nil {
		return model.BurialRecord{}, err
	}

	var dateOfDeath *time.Time

	if r.DateOfDeath != "" {
		parsed, err := timezone.Parse(constant.BookingDateFormat, r.DateOfDeath)
		if err != nil {
			return model.BurialRecord{}, fmt.Errorf("invalid date of death %q: %w", r.DateOfDeath, err)
		}

		dateOfDeath = &parsed
	}

	return model.BurialRecord{
		BookingCore:  core,
		DeceasedName: r.DeceasedName,
		DateOfDeath:  dateOfDeath,
	}, nil
}

type CreateCommunionRequest struct {
	CreateBookingCore
	CandidateFirstName string `json:"candidate_first_name" validate:"required,max=100"`
	CandidateLastName  string `json:"candidate_last_name"  validate:"required,max=100"`
	GuardianName       string `json:"guardian_name"        validate:"omitempty,max=150"`
}

func (r *CreateCommunionRequest) ToRecord(user string) (model.CommunionRecord, error) {
	core, err := r.toCore(model.SacramentCommunion, user)
	if err != nil {
		return model.CommunionRecord{}, err
	}

	return model.CommunionRecord{
		BookingCore:        core,
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		GuardianName:       r.GuardianName,
	}, nil
}

type CreateConfirmationRequest struct {
	CreateBookingCore
	CandidateFirstName string `json:"candidate_first_name" validate:"required,max=100"`
	CandidateLastName  string `json:"candidate_last_name"  validate:"required,max=100"`
	SponsorName        string `json:"sponsor_name"         validate:"omitempty,max=150"`
}

func (r *CreateConfirmationRequest) ToRecord(user string) (model.ConfirmationRecord, error) {
	core, err := r.toCore(model.SacramentConfirmation, user)
	if err != nil {
		return model.ConfirmationRecord{}, err
	}

	return model.ConfirmationRecord{
		BookingCore:        core,
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		SponsorName:        r.SponsorName,
	}, nil
}

type CreateAnointingRequest struct {
	CreateBookingCore
	RecipientName string `json:"recipient_name" validate:"required,max=150"`
	Venue         string `json:"venue"          validate:"required,max=250"`
}

func (r *CreateAnointingRequest) ToRecord(user string) (model.AnointingRecord, error) {
	core, err := r.toCore(model.SacramentAnointing, user)
	if err != nil {
		return model.AnointingRecord{}, err
	}

	return model.AnointingRecord{
		BookingCore:   core,
		RecipientName: r.RecipientName,
		Venue:         r.Venue,
	}, nil
}

type CreateConfessionRequest struct {
	CreateBookingCore
	PenitentName string `json:"penitent_name" validate:"omitempty,max=150"`
}

func (r *CreateConfessionRequest) ToRecord(user string) (model.ConfessionRecord, error) {
	core, err := r.toCore(model.SacramentConfession, user)
	if err != nil {
		return model.ConfessionRecord{}, err
	}

	return model.ConfessionRecord{
		BookingCore:  core,
		PenitentName: r.PenitentName,
	}, nil
}

type ConfirmBookingRequest struct {
	PriestID string `json:"priest_id" validate:"required"`
}

type UpdateDocumentsRequest struct {
	Documents map[string]bool `json:"documents" validate:"required,min=1"`
}

type BookingResponse struct {
	ID            string            `json:"id"`
	Sacrament     string            `json:"sacrament"`
	TypeLabel     string            `json:"type_label"`
	TransactionID string            `json:"transaction_id"`
	Status        string            `json:"status"`
	DisplayName   string            `json:"display_name"`
	RequesterName string            `json:"requester_name"`
	ContactNumber string            `json:"contact_number"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	ScheduleDate  string            `json:"schedule_date,omitempty"`
	ScheduleTime  string            `json:"schedule_time,omitempty"`
	Attendees     int               `json:"attendees,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	PriestID      *string           `json:"priest_id"`
	PriestName    *string           `json:"priest_name"`
	Documents     model.DocumentSet `json:"documents"`
	Details       model.Details     `json:"details"`
	Past          bool              `json:"past"`
	CreatedAt     string            `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking, now time.Time) {
	r.ID = booking.ID
	r.Sacrament = string(booking.Sacrament)
	r.TypeLabel = booking.TypeLabel
	r.TransactionID = booking.TransactionID
	r.Status = string(booking.Status)
	r.DisplayName = booking.DisplayName()
	r.RequesterName = booking.RequesterName
	r.ContactNumber = booking.ContactNumber
	r.Email = booking.Email
	r.Address = booking.Address
	r.ScheduleTime = booking.ScheduleTime
	r.Attendees = booking.Attendees
	r.PaymentMethod = booking.PaymentMethod
	r.Amount = booking.Amount
	r.PriestID = booking.PriestID
	r.PriestName = booking.PriestName
	r.Documents = booking.Documents
	r.Details = booking.Details
	r.Past = booking.IsPast(now)
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)

	if booking.ScheduleDate != nil {
		r.ScheduleDate = booking.ScheduleDate.Format(constant.BookingDateFormat)
	}
}

type SummaryResponse struct {
	Counts      pipeline.Counts `json:"counts"`
	BySacrament map[string]int  `json:"by_sacrament"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Counts    pipeline.Counts   `json:"counts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking, counts pipeline.Counts, totalData, limit int, now time.Time) {
	r.Counts = counts
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking, now)
	}
}
