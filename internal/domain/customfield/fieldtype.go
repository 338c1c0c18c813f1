package customfield

import "fmt"

type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeSelect  FieldType = "select"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
)

var validFieldTypes = map[FieldType]bool{
	FieldTypeText:    true,
	FieldTypeNumber:  true,
	FieldTypeSelect:  true,
	FieldTypeBoolean: true,
	FieldTypeDate:    true,
}

func (ft FieldType) String() string {
	return string(ft)
}

func (ft FieldType) IsValid() bool {
	return validFieldTypes[ft]
}

func NewFieldType(s string) (FieldType, error) {
	ft := FieldType(s)
	if !ft.IsValid() {
		return "", fmt.Errorf("invalid field type: %s", s)
	}
	return ft, nil
}
