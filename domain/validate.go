package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO-8601 layout every detail date is rendered with.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkRequired runs the struct's `validate` tags and reports any failure as onMissing.
func checkRequired(v any, onMissing error) error {
	if err := validate.Struct(v); err != nil {
		return onMissing
	}
	return nil
}

// FormatDate renders t the way detail projections expose dates.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
