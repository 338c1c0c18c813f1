package routing

import (
	"fmt"
	"time"

	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/biztime"
)

// Conditions is the match predicate of a rule. All set fields must be
// satisfied for the rule to match:
//   - Priority, when set, must equal the ticket's priority.
//   - Tags, when non-empty, match if the ticket shares at least one tag.
//   - CustomFields entries must all be present on the ticket with equal values.
//
// Empty conditions match every ticket.
type Conditions struct {
	Priority     *ticketvo.Priority `json:"priority,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	CustomFields map[string]string  `json:"custom_fields,omitempty"`
}

// IsEmpty reports whether no condition is set.
func (c Conditions) IsEmpty() bool {
	return c.Priority == nil && len(c.Tags) == 0 && len(c.CustomFields) == 0
}

func (c Conditions) Validate() error {
	if c.Priority != nil && !c.Priority.IsValid() {
		return fmt.Errorf("invalid priority condition: %s", *c.Priority)
	}
	for _, tag := range c.Tags {
		if tag == "" {
			return fmt.Errorf("tag condition cannot contain empty tags")
		}
	}
	for key := range c.CustomFields {
		if key == "" {
			return fmt.Errorf("custom field condition cannot contain empty keys")
		}
	}
	return nil
}

// Rule maps matching tickets to the skills an assignee must have. Higher
// weight rules win; ties are broken by creation order.
type Rule struct {
	id             uint
	name           string
	description    string
	conditions     Conditions
	requiredSkills []string
	weight         int
	isActive       bool
	createdBy      uint
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRule(
	name string,
	description string,
	conditions Conditions,
	requiredSkills []string,
	weight int,
	createdBy uint,
) (*Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("rule name cannot exceed 100 characters")
	}
	if weight < 0 {
		return nil, fmt.Errorf("rule weight cannot be negative")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if err := conditions.Validate(); err != nil {
		return nil, err
	}

	if requiredSkills == nil {
		requiredSkills = []string{}
	}

	now := biztime.NowUTC()
	return &Rule{
		name:           name,
		description:    description,
		conditions:     conditions,
		requiredSkills: requiredSkills,
		weight:         weight,
		isActive:       true,
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRule(
	id uint,
	name string,
	description string,
	conditions Conditions,
	requiredSkills []string,
	weight int,
	isActive bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Rule, error) {
	if id == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("rule name is required")
	}
	if err := conditions.Validate(); err != nil {
		return nil, err
	}

	if requiredSkills == nil {
		requiredSkills = []string{}
	}

	return &Rule{
		id:             id,
		name:           name,
		description:    description,
		conditions:     conditions,
		requiredSkills: requiredSkills,
		weight:         weight,
		isActive:       isActive,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Rule) ID() uint               { return r.id }
func (r *Rule) Name() string           { return r.name }
func (r *Rule) Description() string    { return r.description }
func (r *Rule) Conditions() Conditions { return r.conditions }
func (r *Rule) Weight() int            { return r.weight }
func (r *Rule) IsActive() bool         { return r.isActive }
func (r *Rule) CreatedBy() uint        { return r.createdBy }
func (r *Rule) CreatedAt() time.Time   { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Rule) RequiredSkills() []string {
	skillsCopy := make([]string, len(r.requiredSkills))
	copy(skillsCopy, r.requiredSkills)
	return skillsCopy
}

func (r *Rule) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rule ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Rule) Update(
	name string,
	description string,
	conditions Conditions,
	requiredSkills []string,
	weight int,
) error {
	if name == "" {
		return fmt.Errorf("rule name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("rule name cannot exceed 100 characters")
	}
	if weight < 0 {
		return fmt.Errorf("rule weight cannot be negative")
	}
	if err := conditions.Validate(); err != nil {
		return err
	}

	if requiredSkills == nil {
		requiredSkills = []string{}
	}

	r.name = name
	r.description = description
	r.conditions = conditions
	r.requiredSkills = requiredSkills
	r.weight = weight
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Rule) Activate() {
	r.isActive = true
	r.updatedAt = biztime.NowUTC()
}

func (r *Rule) Deactivate() {
	r.isActive = false
	r.updatedAt = biztime.NowUTC()
}
