package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

var prioritySLAHours = map[Priority]int{
	PriorityLow:    72,
	PriorityNormal: 24,
	PriorityHigh:   8,
	PriorityUrgent: 2,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) GetSLAHours() int {
	hours, ok := prioritySLAHours[p]
	if !ok {
		return 72
	}
	return hours
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsNormal() bool {
	return p == PriorityNormal
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
