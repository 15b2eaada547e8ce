package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const nameFallback = "N/A"

// Details is the per-sacrament variant of a canonical booking.
type Details interface {
	Sacrament() Sacrament
	DisplayName() string
}

// Booking is the canonical post-normalization shape every sacrament record
// maps into for the review screen, filtering and reporting.
type Booking struct {
	ID            string          `json:"id"`
	Sacrament     Sacrament       `json:"sacrament"`
	TypeLabel     string          `json:"type_label"`
	TransactionID string          `json:"transaction_id"`
	Status        Status          `json:"status"`
	RequesterName string          `json:"requester_name"`
	ContactNumber string          `json:"contact_number"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	ScheduleDate  *time.Time      `json:"schedule_date"`
	ScheduleTime  string          `json:"schedule_time"`
	Attendees     int             `json:"attendees"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	PriestID      *string         `json:"priest_id"`
	PriestName    *string         `json:"priest_name"`
	Documents     DocumentSet     `json:"documents"`
	Details       Details         `json:"details"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// DisplayName synthesizes the name shown on the review table for the booking.
// Variants that cannot produce a name fall back to the requester's name, then
// to the N/A literal.
func (b *Booking) DisplayName() string {
	if b.Details == nil {
		return firstNonEmpty(b.RequesterName)
	}

	if name := b.Details.DisplayName(); name != nameFallback {
		return name
	}

	return firstNonEmpty(b.RequesterName)
}

// IsPast reports whether the booking's due instant is already behind now.
func (b *Booking) IsPast(now time.Time) bool {
	return IsPast(b.ScheduleDate, b.ScheduleTime, now)
}

// firstNonEmpty returns the first candidate with non-whitespace content,
// falling back to the N/A literal.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}

	return nameFallback
}

func joinName(parts ...string) string {
	nonEmpty := []string{}

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}

	return strings.Join(nonEmpty, " ")
}

type WeddingDetails struct {
	GroomFirstName string `json:"groom_first_name"`
	GroomLastName  string `json:"groom_last_name"`
	BrideFirstName string `json:"bride_first_name"`
	BrideLastName  string `json:"bride_last_name"`
	CivillyMarried string `json:"civilly_married"`
}

func (WeddingDetails) Sacrament() Sacrament { return SacramentWedding }

func (d WeddingDetails) DisplayName() string {
	groom := joinName(d.GroomFirstName, d.GroomLastName)
	bride := joinName(d.BrideFirstName, d.BrideLastName)

	if groom == "" && bride == "" {
		return nameFallback
	}

	return strings.TrimSpace(groom + " & " + bride)
}

type BaptismDetails struct {
	CandidateFirstName string `json:"candidate_first_name"`
	CandidateLastName  string `json:"candidate_last_name"`
	FatherName         string `json:"father_name"`
	MotherName         string `json:"mother_name"`
}

func (BaptismDetails) Sacrament() Sacrament { return SacramentBaptism }

func (d BaptismDetails) DisplayName() string {
	return firstNonEmpty(joinName(d.CandidateFirstName, d.CandidateLastName))
}

type BurialDetails struct {
	DeceasedName string     `json:"deceased_name"`
	DateOfDeath  *time.Time `json:"date_of_death"`
}

func (BurialDetails) Sacrament() Sacrament { return SacramentBurial }

func (d BurialDetails) DisplayName() string {
	return firstNonEmpty(d.DeceasedName)
}

type CommunionDetails struct {
	CandidateFirstName string `json:"candidate_first_name"`
	CandidateLastName  string `json:"candidate_last_name"`
	GuardianName       string `json:"guardian_name"`
}

func (CommunionDetails) Sacrament() Sacrament { return SacramentCommunion }

func (d CommunionDetails) DisplayName() string {
	return firstNonEmpty(joinName(d.CandidateFirstName, d.CandidateLastName), d.GuardianName)
}

type ConfirmationDetails struct {
	CandidateFirstName string `json:"candidate_first_name"`
	CandidateLastName  string `json:"candidate_last_name"`
	SponsorName        string `json:"sponsor_name"`
}

func (ConfirmationDetails) Sacrament() Sacrament { return SacramentConfirmation }

func (d ConfirmationDetails) DisplayName() string {
	return firstNonEmpty(joinName(d.CandidateFirstName, d.CandidateLastName), d.SponsorName)
}

type AnointingDetails struct {
	RecipientName string `json:"recipient_name"`
	Venue         string `json:"venue"`
}

func (AnointingDetails) Sacrament() Sacrament { return SacramentAnointing }

func (d AnointingDetails) DisplayName() string {
	return firstNonEmpty(d.RecipientName)
}

type ConfessionDetails struct {
	PenitentName string `json:"penitent_name"`
}

func (ConfessionDetails) Sacrament() Sacrament { return SacramentConfession }

func (d ConfessionDetails) DisplayName() string {
	return firstNonEmpty(d.PenitentName)
}
