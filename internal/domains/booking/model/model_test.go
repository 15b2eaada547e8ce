package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish/internal/domains/booking/model"
	"parish/shared/timezone"
)

func TestParseSacrament(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Sacrament
		wantErr bool
	}{
		{input: "wedding", want: model.SacramentWedding},
		{input: "baptism", want: model.SacramentBaptism},
		{input: "burial", want: model.SacramentBurial},
		{input: "communion", want: model.SacramentCommunion},
		{input: "confirmation", want: model.SacramentConfirmation},
		{input: "anointing", want: model.SacramentAnointing},
		{input: "confession", want: model.SacramentConfession},
		{input: "ordination", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseSacrament(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSacramentPrefixes(t *testing.T) {
	want := map[model.Sacrament]string{
		model.SacramentWedding:      "WD",
		model.SacramentBaptism:      "BP",
		model.SacramentBurial:       "BR",
		model.SacramentCommunion:    "CM",
		model.SacramentConfirmation: "CF",
		model.SacramentAnointing:    "AN",
		model.SacramentConfession:   "CN",
	}

	for sacrament, prefix := range want {
		assert.Equal(t, prefix, sacrament.Prefix())
	}

	// every sacrament carries a distinct prefix
	seen := map[string]bool{}
	for _, sacrament := range model.AllSacraments() {
		assert.False(t, seen[sacrament.Prefix()])
		seen[sacrament.Prefix()] = true
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, model.CanTransition(model.StatusPending, model.StatusConfirmed))
	assert.True(t, model.CanTransition(model.StatusPending, model.StatusCancelled))

	// terminal states never move again
	assert.False(t, model.CanTransition(model.StatusConfirmed, model.StatusCancelled))
	assert.False(t, model.CanTransition(model.StatusConfirmed, model.StatusPending))
	assert.False(t, model.CanTransition(model.StatusCancelled, model.StatusConfirmed))
	assert.False(t, model.CanTransition(model.StatusCancelled, model.StatusPending))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, model.StatusPending.Terminal())
	assert.True(t, model.StatusConfirmed.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
}

func TestIsPast(t *testing.T) {
	loc := timezone.GetLocation()

	// Schedule dates come back from the driver as UTC midnight regardless of
	// the location they were written in; only the calendar day carries.
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      *time.Time
		timeOfDay string
		now       time.Time
		want      bool
	}{
		{
			name:      "before the scheduled time",
			date:      &date,
			timeOfDay: "15:00",
			now:       time.Date(2026, time.September, 1, 14, 30, 0, 0, loc),
			want:      false,
		},
		{
			name:      "exactly at the scheduled time",
			date:      &date,
			timeOfDay: "15:00",
			now:       time.Date(2026, time.September, 1, 15, 0, 0, 0, loc),
			want:      false,
		},
		{
			name:      "after the scheduled time",
			date:      &date,
			timeOfDay: "14:30",
			now:       time.Date(2026, time.September, 1, 15, 0, 0, 0, loc),
			want:      true,
		},
		{
			name:      "one minute past a driver-scanned date",
			date:      &date,
			timeOfDay: "14:30",
			now:       time.Date(2026, time.September, 1, 14, 31, 0, 0, loc),
			want:      true,
		},
		{
			name:      "seconds in the time string are tolerated",
			date:      &date,
			timeOfDay: "14:30:59",
			now:       time.Date(2026, time.September, 1, 15, 0, 0, 0, loc),
			want:      true,
		},
		{
			name:      "unparseable time falls back to midnight",
			date:      &date,
			timeOfDay: "half past two",
			now:       time.Date(2026, time.September, 1, 0, 30, 0, 0, loc),
			want:      true,
		},
		{
			name:      "out-of-range time falls back to midnight",
			date:      &date,
			timeOfDay: "25:99",
			now:       time.Date(2026, time.September, 1, 0, 30, 0, 0, loc),
			want:      true,
		},
		{
			name:      "day after an all-day booking",
			date:      &date,
			timeOfDay: "",
			now:       time.Date(2026, time.September, 2, 0, 0, 0, 0, loc),
			want:      true,
		},
		{
			name:      "nil date is never past",
			date:      nil,
			timeOfDay: "15:00",
			now:       time.Date(2030, time.January, 1, 0, 0, 0, 0, loc),
			want:      false,
		},
		{
			name:      "zero date is never past",
			date:      &time.Time{},
			timeOfDay: "15:00",
			now:       time.Date(2030, time.January, 1, 0, 0, 0, 0, loc),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsPast(tt.date, tt.timeOfDay, tt.now))
		})
	}
}

func TestDueInstant(t *testing.T) {
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	due, ok := model.DueInstant(&date, " 9:05 ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.September, 1, 9, 5, 0, 0, timezone.GetLocation()), due)

	_, ok = model.DueInstant(nil, "9:05")
	assert.False(t, ok)
}

func TestBookingDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    string
	}{
		{
			name: "wedding couples both names",
			booking: model.Booking{
				Details: model.WeddingDetails{
					GroomFirstName: "Juan",
					GroomLastName:  "Dela Cruz",
					BrideFirstName: "Maria",
					BrideLastName:  "Santos",
				},
			},
			want: "Juan Dela Cruz & Maria Santos",
		},
		{
			name: "baptism uses the candidate",
			booking: model.Booking{
				Details: model.BaptismDetails{
					CandidateFirstName: "Jose",
					CandidateLastName:  "Rizal",
				},
			},
			want: "Jose Rizal",
		},
		{
			name: "burial uses the deceased",
			booking: model.Booking{
				Details: model.BurialDetails{DeceasedName: "Andres Bonifacio"},
			},
			want: "Andres Bonifacio",
		},
		{
			name: "anointing uses the recipient",
			booking: model.Booking{
				Details: model.AnointingDetails{RecipientName: "Lola Remedios"},
			},
			want: "Lola Remedios",
		},
		{
			name: "wedding with no names falls back to the requester",
			booking: model.Booking{
				RequesterName: "Juan Dela Cruz",
				Details:       model.WeddingDetails{},
			},
			want: "Juan Dela Cruz",
		},
		{
			name: "wedding with no names and no requester",
			booking: model.Booking{
				Details: model.WeddingDetails{},
			},
			want: "N/A",
		},
		{
			name: "confession falls back to the requester",
			booking: model.Booking{
				RequesterName: "Pedro Penduko",
				Details:       model.ConfessionDetails{},
			},
			want: "Pedro Penduko",
		},
		{
			name:    "nothing available",
			booking: model.Booking{},
			want:    "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.DisplayName())
		})
	}
}

func TestRecordBookingNormalization(t *testing.T) {
	record := model.WeddingRecord{
		BookingCore: model.BookingCore{
			ID:            "b-1",
			TransactionID: "WD-123456-ABCDEF",
			Status:        model.StatusPending,
			RequesterName: "Juan Dela Cruz",
		},
		GroomFirstName: "Juan",
		GroomLastName:  "Dela Cruz",
		BrideFirstName: "Maria",
		BrideLastName:  "Santos",
		CivillyMarried: "yes",
	}

	booking := record.Booking()

	assert.Equal(t, model.SacramentWedding, booking.Sacrament)
	assert.Equal(t, model.SacramentWedding.Label(), booking.TypeLabel)
	assert.Equal(t, "WD-123456-ABCDEF", booking.TransactionID)
	assert.Equal(t, "Juan Dela Cruz & Maria Santos", booking.DisplayName())

	details, isWedding := booking.Details.(model.WeddingDetails)
	require.True(t, isWedding)
	assert.Equal(t, "yes", details.CivillyMarried)
}
