package model

import "time"

// One table per sacrament. Each record keeps its own form fields and
// normalizes through Booking().

const (
	WeddingTableName  = "wedding_bookings"
	WeddingEntityName = "wedding_booking"
)

type WeddingRecord struct {
	BookingCore
	GroomFirstName string `db:"groom_first_name"`
	GroomLastName  string `db:"groom_last_name"`
	BrideFirstName string `db:"bride_first_name"`
	BrideLastName  string `db:"bride_last_name"`
	CivillyMarried string `db:"civilly_married"`
}

func (r WeddingRecord) Booking() Booking {
	return r.canonical(SacramentWedding, WeddingDetails{
		GroomFirstName: r.GroomFirstName,
		GroomLastName:  r.GroomLastName,
		BrideFirstName: r.BrideFirstName,
		BrideLastName:  r.BrideLastName,
		CivillyMarried: r.CivillyMarried,
	})
}

const (
	BaptismTableName  = "baptism_bookings"
	BaptismEntityName = "baptism_booking"
)

type BaptismRecord struct {
	BookingCore
	CandidateFirstName string `db:"candidate_first_name"`
	CandidateLastName  string `db:"candidate_last_name"`
	FatherName         string `db:"father_name"`
	MotherName         string `db:"mother_name"`
}

func (r BaptismRecord) Booking() Booking {
	return r.canonical(SacramentBaptism, BaptismDetails{
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		FatherName:         r.FatherName,
		MotherName:         r.MotherName,
	})
}

const (
	BurialTableName  = "burial_bookings"
	BurialEntityName = "burial_booking"
)

type BurialRecord struct {
	BookingCore
	DeceasedName string     `db:"deceased_name"`
	DateOfDeath  *time.Time `db:"date_of_death"`
}

func (r BurialRecord) Booking() Booking {
	return r.canonical(SacramentBurial, BurialDetails{
		DeceasedName: r.DeceasedName,
		DateOfDeath:  r.DateOfDeath,
	})
}

const (
	CommunionTableName  = "communion_bookings"
	CommunionEntityName = "communion_booking"
)

type CommunionRecord struct {
	BookingCore
	CandidateFirstName string `db:"candidate_first_name"`
	CandidateLastName  string `db:"candidate_last_name"`
	GuardianName       string `db:"guardian_name"`
}

func (r CommunionRecord) Booking() Booking {
	return r.canonical(SacramentCommunion, CommunionDetails{
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		GuardianName:       r.GuardianName,
	})
}

const (
	ConfirmationTableName  = "confirmation_bookings"
	ConfirmationEntityName = "confirmation_booking"
)

type ConfirmationRecord struct {
	BookingCore
	CandidateFirstName string `db:"candidate_first_name"`
	CandidateLastName  string `db:"candidate_last_name"`
	SponsorName        string `db:"sponsor_name"`
}

func (r ConfirmationRecord) Booking() Booking {
	return r.canonical(SacramentConfirmation, ConfirmationDetails{
		CandidateFirstName: r.CandidateFirstName,
		CandidateLastName:  r.CandidateLastName,
		SponsorName:        r.SponsorName,
	})
}

const (
	AnointingTableName  = "anointing_bookings"
	AnointingEntityName = "anointing_booking"
)

type AnointingRecord struct {
	BookingCore
	RecipientName string `db:"recipient_name"`
	Venue         string `db:"venue"`
}

func (r AnointingRecord) Booking() Booking {
	return r.canonical(SacramentAnointing, AnointingDetails{
		RecipientName: r.RecipientName,
		Venue:         r.Venue,
	})
}

const (
	ConfessionTableName  = "confession_bookings"
	ConfessionEntityName = "confession_booking"
)

type ConfessionRecord struct {
	BookingCore
	PenitentName string `db:"penitent_name"`
}

func (r ConfessionRecord) Booking() Booking {
	return r.canonical(SacramentConfession, ConfessionDetails{
		PenitentName: r.PenitentName,
	})
}

// TableName returns the table backing a sacrament.
func TableName(s Sacrament) string {
	switch s {
	case SacramentWedding:
		return WeddingTableName
	case SacramentBaptism:
		return BaptismTableName
	case SacramentBurial:
		return BurialTableName
	case SacramentCommunion:
		return CommunionTableName
	case SacramentConfirmation:
		return ConfirmationTableName
	case SacramentAnointing:
		return AnointingTableName
	case SacramentConfession:
		return ConfessionTableName
	default:
		return ""
	}
}
