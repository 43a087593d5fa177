// Package form holds the draft state of the course being created: the raw
// text of its scalar fields and one advisory message per invalid field.
//
// A Form is not safe for concurrent use.
package form

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldDuration    Field = "duration"
)

// Fields lists every form field in display order
var Fields = []Field{FieldTitle, FieldDescription, FieldDuration}

var ErrUnknownField = errors.New("form: unknown field")

const (
	MsgTitle            = "Title is required and should be at least 2 characters."
	MsgDescription      = "Description is required and should be at least 2 characters."
	MsgDurationRequired = "Duration is required."
	MsgDurationNumber   = "Duration must be a number."
	MsgDurationPositive = "Duration should be more than 0 minutes."
	MsgDurationTooLarge = "Duration is too large."
)

var (
	// keystroke filter: digits only, empty allowed
	durationInput = regexp.MustCompile(`^\d*$`)
	durationValue = regexp.MustCompile(`^\d+$`)
)

// Values is the raw, untrimmed text of every field
type Values struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Errors maps an invalid field to its message; valid fields are absent
type Errors map[Field]string

type Form struct {
	values Values
	errors Errors
}

func New() *Form {
	return &Form{errors: Errors{}}
}

// SetField stores raw text for field and clears its error.
// A duration that is not made of digits only is refused: the stored value
// and error stay as they were and SetField reports false.
func (f *Form) SetField(field Field, raw string) (bool, error) {
	switch field {
	case FieldTitle:
		f.values.Title = raw
	case FieldDescription:
		f.values.Description = raw
	case FieldDuration:
		if !durationInput.MatchString(raw) {
			return false, nil
		}
		f.values.Duration = raw
	default:
		return false, ErrUnknownField
	}

	delete(f.errors, field)
	return true, nil
}

// Validate checks every field and replaces the error map with the result
func (f *Form) Validate() bool {
	textRules := func(msg string) []validation.Rule {
		return []validation.Rule{
			validation.Required.Error(msg),
			validation.RuneLength(2, 0).Error(msg),
		}
	}

	result := validation.Errors{
		string(FieldTitle):       validation.Validate(f.Title(), textRules(MsgTitle)...),
		string(FieldDescription): validation.Validate(f.Description(), textRules(MsgDescription)...),
		string(FieldDuration): validation.Validate(strings.TrimSpace(f.values.Duration),
			validation.Required.Error(MsgDurationRequired),
			validation.Match(durationValue).Error(MsgDurationNumber),
			validation.By(checkDurationValue),
		),
	}

	errs := Errors{}
	if err := result.Filter(); err != nil {
		for key, fieldErr := range err.(validation.Errors) {
			errs[Field(key)] = fieldErr.Error()
		}
	}

	f.errors = errs
	return len(errs) == 0
}

// Reset empties every field and error
func (f *Form) Reset() {
	f.values = Values{}
	f.errors = Errors{}
}

func (f *Form) Values() Values {
	return f.values
}

func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Title() string {
	return strings.TrimSpace(f.values.Title)
}

func (f *Form) Description() string {
	return strings.TrimSpace(f.values.Description)
}

// Duration parses the trimmed duration as whole minutes
func (f *Form) Duration() (int, error) {
	return strconv.Atoi(strings.TrimSpace(f.values.Duration))
}

func checkDurationValue(value interface{}) error {
	s, _ := value.(string)
	if !durationValue.MatchString(s) {
		return nil
	}

	minutes, err := strconv.Atoi(s)
	if err != nil {
		return validation.NewError("validation_duration_too_large", MsgDurationTooLarge)
	}
	if minutes <= 0 {
		return validation.NewError("validation_duration_positive", MsgDurationPositive)
	}
	return nil
}
