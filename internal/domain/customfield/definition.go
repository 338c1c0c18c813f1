package customfield

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"deskd/internal/shared/biztime"
)

var keyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Definition declares a custom field that tickets may carry. Field values
// are stored as strings and validated against the declared type.
type Definition struct {
	id        uint
	key       string
	label     string
	fieldType FieldType
	options   []string
	required  bool
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDefinition(
	key string,
	label string,
	fieldType FieldType,
	options []string,
	required bool,
) (*Definition, error) {
	if key == "" {
		return nil, fmt.Errorf("field key is required")
	}
	if len(key) > 50 {
		return nil, fmt.Errorf("field key cannot exceed 50 characters")
	}
	if !keyRegex.MatchString(key) {
		return nil, fmt.Errorf("field key must be snake_case starting with a letter: %s", key)
	}
	if label == "" {
		return nil, fmt.Errorf("field label is required")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}
	if fieldType == FieldTypeSelect && len(options) == 0 {
		return nil, fmt.Errorf("select fields require at least one option")
	}
	if fieldType != FieldTypeSelect && len(options) > 0 {
		return nil, fmt.Errorf("only select fields may declare options")
	}

	if options == nil {
		options = []string{}
	}

	now := biztime.NowUTC()
	return &Definition{
		key:       key,
		label:     label,
		fieldType: fieldType,
		options:   options,
		required:  required,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDefinition(
	id uint,
	key string,
	label string,
	fieldType FieldType,
	options []string,
	required bool,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Definition, error) {
	if id == 0 {
		return nil, fmt.Errorf("definition ID cannot be zero")
	}
	if key == "" {
		return nil, fmt.Errorf("field key is required")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}

	if options == nil {
		options = []string{}
	}

	return &Definition{
		id:        id,
		key:       key,
		label:     label,
		fieldType: fieldType,
		options:   options,
		required:  required,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (d *Definition) ID() uint             { return d.id }
func (d *Definition) Key() string          { return d.key }
func (d *Definition) Label() string        { return d.label }
func (d *Definition) FieldType() FieldType { return d.fieldType }
func (d *Definition) Required() bool       { return d.required }
func (d *Definition) IsActive() bool       { return d.isActive }
func (d *Definition) CreatedAt() time.Time { return d.createdAt }
func (d *Definition) UpdatedAt() time.Time { return d.updatedAt }

func (d *Definition) Options() []string {
	optionsCopy := make([]string, len(d.options))
	copy(optionsCopy, d.options)
	return optionsCopy
}

func (d *Definition) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("definition ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("definition ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Definition) Update(label string, options []string, required bool) error {
	if label == "" {
		return fmt.Errorf("field label is required")
	}
	if d.fieldType == FieldTypeSelect && len(options) == 0 {
		return fmt.Errorf("select fields require at least one option")
	}
	if d.fieldType != FieldTypeSelect && len(options) > 0 {
		return fmt.Errorf("only select fields may declare options")
	}

	if options == nil {
		options = []string{}
	}

	d.label = label
	d.options = options
	d.required = required
	d.updatedAt = biztime.NowUTC()
	return nil
}

func (d *Definition) Activate() {
	d.isActive = true
	d.updatedAt = biztime.NowUTC()
}

func (d *Definition) Deactivate() {
	d.isActive = false
	d.updatedAt = biztime.NowUTC()
}

// ValidateValue checks a raw string value against the declared field type.
func (d *Definition) ValidateValue(value string) error {
	if value == "" {
		if d.required {
			return fmt.Errorf("field %s is required", d.key)
		}
		return nil
	}

	switch d.fieldType {
	case FieldTypeText:
		if len(value) > 1000 {
			return fmt.Errorf("field %s exceeds maximum length of 1000 characters", d.key)
		}
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("field %s must be a number, got %q", d.key, value)
		}
	case FieldTypeSelect:
		for _, option := range d.options {
			if option == value {
				return nil
			}
		}
		return fmt.Errorf("field %s must be one of its declared options, got %q", d.key, value)
	case FieldTypeBoolean:
		if value != "true" && value != "false" {
			return fmt.Errorf("field %s must be true or false, got %q", d.key, value)
		}
	case FieldTypeDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("field %s must be a date in YYYY-MM-DD format, got %q", d.key, value)
		}
	}

	return nil
}
