package model

import "fmt"

// Status is the booking lifecycle state. A booking starts pending; confirmed
// and cancelled are terminal. Cancellation is a status, never a row removal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}

	return m[to]
}

// Terminal reports whether no further transition is allowed out of the status.
func (s Status) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}
