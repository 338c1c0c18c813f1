package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

// Name is a person's display name.
type Name struct {
	value string
}

func NewName(value string) (*Name, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	if len(normalized) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters long")
	}

	if len(normalized) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}

	if !nameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("name contains invalid characters: %s", value)
	}

	if strings.Contains(normalized, "  ") {
		return nil, fmt.Errorf("name cannot contain consecutive spaces")
	}

	return &Name{value: normalized}, nil
}

func (n *Name) String() string {
	return n.value
}

func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.value, other.value)
}

// DisplayName returns the name with each part title-cased.
func (n *Name) DisplayName() string {
	parts := strings.Fields(n.value)
	formatted := make([]string, 0, len(parts))
	caser := cases.Title(language.English)
	for _, part := range parts {
		formatted = append(formatted, caser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}

// Initials returns the upper-cased first letter of each name part.
func (n *Name) Initials() string {
	parts := strings.Fields(n.value)
	var initials []string
	for _, part := range parts {
		if len(part) > 0 {
			initials = append(initials, string(part[0]))
		}
	}
	return strings.ToUpper(strings.Join(initials, ""))
}
