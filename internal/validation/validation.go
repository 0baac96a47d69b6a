// Package validation holds the input rules shared by the HTTP layer and the
// kanban sessions.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// DateRangeTag validates "YYYY-MM-DD ~ YYYY-MM-DD" strings.
	DateRangeTag = "daterange"

	dateLayout     = "2006-01-02"
	rangeSeparator = " ~ "
)

var (
	ErrDateRange = errors.New("date must look like YYYY-MM-DD ~ YYYY-MM-DD with start before end")

	whitespace = regexp.MustCompile(`\s+`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	configure(v)
	return v
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	// Registering a static tag with a non-nil func cannot fail.
	_ = v.RegisterValidation(DateRangeTag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, _, err := ParseDateRange(value)
		return err == nil
	})
}

// RegisterGin installs the custom tags on gin's binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	configure(v)
	return nil
}

// Struct validates v with the `validate` struct tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// ParseDateRange splits a todo date range into its start and end day.
func ParseDateRange(value string) (time.Time, time.Time, error) {
	parts := strings.Split(value, rangeSeparator)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, ErrDateRange
	}
	start, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, ErrDateRange
	}
	end, err := time.Parse(dateLayout, parts[1])
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, ErrDateRange
	}
	return start, end, nil
}

// FormatDateRange is the inverse of ParseDateRange.
func FormatDateRange(start, end time.Time) string {
	return start.Format(dateLayout) + rangeSeparator + end.Format(dateLayout)
}

// Slug derives a column status from its title: lower case, every run of
// whitespace collapsed into a dash.
func Slug(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// Messages turns validator errors into short human readable lines.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex colour", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a UUID", fe.Field())
	case DateRangeTag:
		return fmt.Sprintf("%s must look like YYYY-MM-DD ~ YYYY-MM-DD", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
