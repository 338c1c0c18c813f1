package valueobjects

import (
	"fmt"
	"strings"
)

// Skill is an agent capability used by the routing engine. Names are
// compared case-insensitively.
type Skill struct {
	category    string
	name        string
	proficiency int
}

func NewSkill(category, name string, proficiency int) (*Skill, error) {
	category = strings.TrimSpace(strings.ToLower(category))
	name = strings.TrimSpace(strings.ToLower(name))

	if name == "" {
		return nil, fmt.Errorf("skill name cannot be empty")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("skill name cannot exceed 100 characters")
	}
	if proficiency < 1 || proficiency > 5 {
		return nil, fmt.Errorf("proficiency must be between 1 and 5, got %d", proficiency)
	}

	return &Skill{
		category:    category,
		name:        name,
		proficiency: proficiency,
	}, nil
}

func (s *Skill) Category() string { return s.category }
func (s *Skill) Name() string     { return s.name }
func (s *Skill) Proficiency() int { return s.proficiency }

// Matches reports whether this skill satisfies the requested skill name.
func (s *Skill) Matches(name string) bool {
	return strings.EqualFold(s.name, strings.TrimSpace(name))
}
