package valueobjects

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a user account. Suspended users cannot
// log in and are excluded from assignment candidacy.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
}

func NewStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return StatusActive, nil
	}

	status := Status(normalized)
	if !validStatuses[status] {
		return "", fmt.Errorf("invalid status: %s", value)
	}

	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsSuspended() bool {
	return s == StatusSuspended
}
