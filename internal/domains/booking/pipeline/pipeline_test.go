package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/pipeline"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func fixtures() []model.Booking {
	return []model.Booking{
		{
			ID:            "w-1",
			Sacrament:     model.SacramentWedding,
			TransactionID: "WD-000001-AAAAAA",
			Status:        model.StatusPending,
			RequesterName: "Juan Dela Cruz",
			ContactNumber: "09171234567",
			Email:         "juan@example.com",
			ScheduleDate:  datePtr(2026, time.September, 20),
			ScheduleTime:  "15:00",
			CreatedAt:     time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC),
			Details: model.WeddingDetails{
				GroomFirstName: "Juan",
				GroomLastName:  "Dela Cruz",
				BrideFirstName: "Maria",
				BrideLastName:  "Santos",
			},
		},
		{
			ID:            "b-1",
			Sacrament:     model.SacramentBaptism,
			TransactionID: "BP-000002-BBBBBB",
			Status:        model.StatusConfirmed,
			RequesterName: "Ana Reyes",
			ContactNumber: "09987654321",
			Email:         "ana@example.com",
			ScheduleDate:  datePtr(2026, time.July, 5),
			ScheduleTime:  "09:00",
			CreatedAt:     time.Date(2026, time.August, 2, 10, 0, 0, 0, time.UTC),
			Details: model.BaptismDetails{
				CandidateFirstName: "Carlo",
				CandidateLastName:  "Reyes",
			},
		},
		{
			ID:            "f-1",
			Sacrament:     model.SacramentBurial,
			TransactionID: "BR-000003-CCCCCC",
			Status:        model.StatusCancelled,
			RequesterName: "Luz Navarro",
			ContactNumber: "09051112222",
			Email:         "luz@example.com",
			ScheduleDate:  datePtr(2026, time.September, 2),
			ScheduleTime:  "",
			CreatedAt:     time.Date(2026, time.August, 3, 10, 0, 0, 0, time.UTC),
			Details:       model.BurialDetails{DeceasedName: "Ramon Navarro"},
		},
	}
}

func TestMergeOrdersByCreatedAtDescending(t *testing.T) {
	bookings := fixtures()

	merged := pipeline.Merge(
		[]model.Booking{bookings[0]},
		[]model.Booking{bookings[1], bookings[2]},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, "f-1", merged[0].ID)
	assert.Equal(t, "b-1", merged[1].ID)
	assert.Equal(t, "w-1", merged[2].ID)
}

func TestAggregate(t *testing.T) {
	counts := pipeline.Aggregate(fixtures())

	assert.Equal(t, pipeline.Counts{Total: 3, Pending: 1, Confirmed: 1, Cancelled: 1}, counts)
}

func TestApplyCombinesCriteriaAsIntersection(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	bookings := fixtures()

	// each criterion alone keeps the wedding
	byStatus := pipeline.Apply(bookings, pipeline.Criteria{Status: "pending"}, now)
	byMonth := pipeline.Apply(bookings, pipeline.Criteria{Month: 9}, now)
	bySearch := pipeline.Apply(bookings, pipeline.Criteria{Search: "santos"}, now)

	require.Len(t, byStatus, 1)
	require.Len(t, byMonth, 2)
	require.Len(t, bySearch, 1)

	// combined they intersect
	combined := pipeline.Apply(bookings, pipeline.Criteria{
		Status: "pending",
		Month:  9,
		Search: "santos",
	}, now)

	require.Len(t, combined, 1)
	assert.Equal(t, "w-1", combined[0].ID)

	// a disjoint pair yields nothing
	empty := pipeline.Apply(bookings, pipeline.Criteria{Status: "confirmed", Month: 9}, now)
	assert.Empty(t, empty)
}

func TestApplySearchFields(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	bookings := fixtures()

	tests := []struct {
		term string
		want string
	}{
		{term: "WD-000001", want: "w-1"},
		{term: "09987654321", want: "b-1"},
		{term: "maria santos", want: "w-1"},
		{term: "ramon", want: "f-1"},
		{term: "LUZ@EXAMPLE.COM", want: "f-1"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := pipeline.Apply(bookings, pipeline.Criteria{Search: tt.term}, now)

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].ID)
		})
	}

	assert.Empty(t, pipeline.Apply(bookings, pipeline.Criteria{Search: "no such booking"}, now))
}

func TestApplyDateTabs(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	bookings := fixtures()

	active := pipeline.Apply(bookings, pipeline.Criteria{DateTab: pipeline.DateTabActive}, now)
	past := pipeline.Apply(bookings, pipeline.Criteria{DateTab: pipeline.DateTabPast}, now)
	all := pipeline.Apply(bookings, pipeline.Criteria{DateTab: pipeline.DateTabAll}, now)

	require.Len(t, active, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "b-1", past[0].ID)
	assert.Len(t, all, 3)
}

func TestPaginate(t *testing.T) {
	bookings := fixtures()

	first := pipeline.Paginate(bookings, 1, 2)
	second := pipeline.Paginate(bookings, 2, 2)
	beyond := pipeline.Paginate(bookings, 3, 2)

	assert.Len(t, first, 2)
	assert.Len(t, second, 1)
	assert.Empty(t, beyond)

	// a zero limit disables pagination
	assert.Len(t, pipeline.Paginate(bookings, 1, 0), 3)
}
