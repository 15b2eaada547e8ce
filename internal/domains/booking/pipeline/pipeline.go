// Package pipeline merges the per-sacrament collections into the review
// screen's working set: aggregate counts and compound filtering over the
// canonical booking shape.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"parish/internal/domains/booking/model"
)

const (
	DateTabAll    = "all"
	DateTabActive = "active"
	DateTabPast   = "past"
)

// Criteria is the compound filter applied by the review screen. Zero values
// mean "no constraint"; the populated predicates compose as logical AND.
type Criteria struct {
	Search    string
	Status    string
	Sacrament string
	Month     int
	DateTab   string
}

// Counts partitions the merged collection by status.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// Merge flattens the per-sacrament slices into one collection ordered
// most-recent-created-first.
func Merge(collections ...[]model.Booking) []model.Booking {
	size := 0
	for _, collection := range collections {
		size += len(collection)
	}

	merged := make([]model.Booking, 0, size)
	for _, collection := range collections {
		merged = append(merged, collection...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

// Aggregate derives the dashboard counts from the merged collection.
func Aggregate(bookings []model.Booking) Counts {
	counts := Counts{Total: len(bookings)}

	for i := range bookings {
		switch bookings[i].Status {
		case model.StatusPending:
			counts.Pending++
		case model.StatusConfirmed:
			counts.Confirmed++
		case model.StatusCancelled:
			counts.Cancelled++
		}
	}

	return counts
}

// Apply filters the merged collection, preserving the incoming order.
func Apply(bookings []model.Booking, criteria Criteria, now time.Time) []model.Booking {
	filtered := make([]model.Booking, 0, len(bookings))

	for i := range bookings {
		if matches(&bookings[i], criteria, now) {
			filtered = append(filtered, bookings[i])
		}
	}

	return filtered
}

func matches(booking *model.Booking, criteria Criteria, now time.Time) bool {
	if criteria.Status != "" && string(booking.Status) != criteria.Status {
		return false
	}

	if criteria.Sacrament != "" && string(booking.Sacrament) != criteria.Sacrament {
		return false
	}

	if criteria.Month != 0 && !inMonth(booking, criteria.Month) {
		return false
	}

	switch criteria.DateTab {
	case DateTabActive:
		if booking.IsPast(now) {
			return false
		}
	case DateTabPast:
		if !booking.IsPast(now) {
			return false
		}
	}

	return matchesSearch(booking, criteria.Search)
}

func inMonth(booking *model.Booking, month int) bool {
	if booking.ScheduleDate == nil {
		return false
	}

	return int(booking.ScheduleDate.Month()) == month
}

// matchesSearch checks the fixed set of searchable fields; a booking matches
// when any field contains the term, case-insensitively.
func matchesSearch(booking *model.Booking, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)

	haystacks := []string{
		booking.TransactionID,
		booking.ContactNumber,
		booking.DisplayName(),
		booking.RequesterName,
		booking.Address,
		booking.Email,
	}

	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}

	return false
}

// Paginate slices the filtered collection for the requested page. Page and
// limit are 1-based; out-of-range pages return an empty slice.
func Paginate(bookings []model.Booking, page, limit int) []model.Booking {
	if page <= 0 || limit <= 0 {
		return bookings
	}

	start := (page - 1) * limit
	if start >= len(bookings) {
		return []model.Booking{}
	}

	end := start + limit
	if end > len(bookings) {
		end = len(bookings)
	}

	return bookings[start:end]
}
