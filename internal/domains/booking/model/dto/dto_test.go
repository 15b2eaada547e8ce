package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/model/dto"
	"parish/shared/validator"
)

func validCore() dto.CreateBookingCore {
	return dto.CreateBookingCore{
		RequesterName: "Juan Dela Cruz",
		ContactNumber: "09171234567",
		Email:         "juan@example.com",
		Address:       "123 Rizal St",
		ScheduleDate:  "2026-09-20",
		ScheduleTime:  "15:00",
		Attendees:     120,
		PaymentMethod: "gcash",
	}
}

func TestCreateWeddingRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateWeddingRequest)
		wantKey string
	}{
		{
			name:   "valid",
			mutate: func(r *dto.CreateWeddingRequest) {},
		},
		{
			name:    "missing bride last name",
			mutate:  func(r *dto.CreateWeddingRequest) { r.BrideLastName = "" },
			wantKey: "bride_last_name",
		},
		{
			name:    "civil status outside choices",
			mutate:  func(r *dto.CreateWeddingRequest) { r.CivillyMarried = "maybe" },
			wantKey: "civilly_married",
		},
		{
			name:    "landline rejected",
			mutate:  func(r *dto.CreateWeddingRequest) { r.ContactNumber = "0281234567" },
			wantKey: "contact_number",
		},
		{
			name:    "missing schedule date",
			mutate:  func(r *dto.CreateWeddingRequest) { r.ScheduleDate = "" },
			wantKey: "schedule_date",
		},
		{
			name:    "attendees above cap",
			mutate:  func(r *dto.CreateWeddingRequest) { r.Attendees = 1001 },
			wantKey: "attendees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := dto.CreateWeddingRequest{
				CreateBookingCore: validCore(),
				GroomFirstName:    "Juan",
				GroomLastName:     "Dela Cruz",
				BrideFirstName:    "Maria",
				BrideLastName:     "Santos",
				CivillyMarried:    "no",
			}
			tt.mutate(&request)

			violations := validator.Fields(&request)

			if tt.wantKey == "" {
				assert.Empty(t, violations)
			} else {
				assert.Contains(t, violations, tt.wantKey)
			}
		})
	}
}

func TestCreateBaptismRequestValidation(t *testing.T) {
	request := dto.CreateBaptismRequest{
		CreateBookingCore:  validCore(),
		CandidateFirstName: "Carlo",
	}

	violations := validator.Fields(&request)

	assert.Contains(t, violations, "candidate_last_name")
	assert.NotContains(t, violations, "father_name")
}

func TestCreateConfessionRequestAllowsAnonymous(t *testing.T) {
	request := dto.CreateConfessionRequest{CreateBookingCore: validCore()}

	assert.Empty(t, validator.Fields(&request))
}

func TestWeddingToRecord(t *testing.T) {
	request := dto.CreateWeddingRequest{
		CreateBookingCore: validCore(),
		GroomFirstName:    "Juan",
		GroomLastName:     "Dela Cruz",
		BrideFirstName:    "Maria",
		BrideLastName:     "Santos",
		CivillyMarried:    "yes",
	}

	record, err := request.ToRecord("staff@parish.ph")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.True(t, strings.HasPrefix(record.TransactionID, "WD-"))
	assert.Equal(t, model.StatusPending, record.Status)
	require.NotNil(t, record.ScheduleDate)
	assert.Equal(t, "2026-09-20", record.ScheduleDate.Format("2006-01-02"))
	assert.Equal(t, "yes", record.CivillyMarried)
	assert.Equal(t, "staff@parish.ph", record.CreatedBy)
	assert.NotNil(t, record.Documents)
	assert.Empty(t, record.Documents)
}

func TestWeddingToRecordRejectsMalformedDate(t *testing.T) {
	request := dto.CreateWeddingRequest{CreateBookingCore: validCore()}
	request.ScheduleDate = "September 20th"

	_, err := request.ToRecord("staff@parish.ph")

	assert.Error(t, err)
}

func TestBurialToRecordParsesDateOfDeath(t *testing.T) {
	request := dto.CreateBurialRequest{
		CreateBookingCore: validCore(),
		DeceasedName:      "Ramon Navarro",
		DateOfDeath:       "2026-08-10",
	}

	record, err := request.ToRecord("staff@parish.ph")
	require.NoError(t, err)

	require.NotNil(t, record.DateOfDeath)
	assert.Equal(t, "2026-08-10", record.DateOfDeath.Format("2006-01-02"))
	assert.True(t, strings.HasPrefix(record.TransactionID, "BR-"))

	request.DateOfDeath = "10/08/2026"
	_, err = request.ToRecord("staff@parish.ph")
	assert.Error(t, err)
}

func TestBookingResponseFromModel(t *testing.T) {
	scheduleDate := time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC)
	priestID := "priest-1"
	priestName := "Fr. Jose Garcia"

	booking := model.Booking{
		ID:            "w-1",
		Sacrament:     model.SacramentWedding,
		TypeLabel:     "Wedding",
		TransactionID: "WD-000001-AAAAAA",
		Status:        model.StatusConfirmed,
		RequesterName: "Juan Dela Cruz",
		ScheduleDate:  &scheduleDate,
		ScheduleTime:  "15:00",
		PriestID:      &priestID,
		PriestName:    &priestName,
		CreatedAt:     time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC),
		Details: model.WeddingDetails{
			GroomFirstName: "Juan",
			GroomLastName:  "Dela Cruz",
			BrideFirstName: "Maria",
			BrideLastName:  "Santos",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "wedding", response.Sacrament)
	assert.Equal(t, "confirmed", response.Status)
	assert.Equal(t, "Juan Dela Cruz & Maria Santos", response.DisplayName)
	assert.Equal(t, "2026-09-20", response.ScheduleDate)
	assert.Equal(t, &priestName, response.PriestName)
	assert.True(t, response.Past)
}
