package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingDetails turns binding failures into friendly per-field messages,
// one entry per violated field.
func bindingDetails(err error, labels map[string]string) []string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return []string{"request body must be a valid JSON object"}
	}

	details := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "datetime":
			msg = fmt.Sprintf("%s must be a date in %s format", lbl, fe.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		details = append(details, msg)
	}
	return details
}
