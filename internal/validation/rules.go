package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// nameDisallowedRx matches punctuation and special characters forbidden in
// customer names by the ERP master data conventions
var nameDisallowedRx = regexp.MustCompile(`['"?!@#$%^&*()+=\[\]{}|<>,./\\:;]`)

// nameRequiredSuffixes are the recognized Latin and Cyrillic patronymic and
// matronymic endings a customer name must carry
var nameRequiredSuffixes = []string{"oğlu", "qızı", "oviç", "ovna", "оглы", "гызы", "ович", "овна"}

// Required fails when the value is empty
func Required(field, value string) Rule {
	return func(context.Context) *Violation {
		if value == "" {
			return &Violation{Field: field, Message: fmt.Sprintf("%s is required", field)}
		}
		return nil
	}
}

// MaxLen fails when the value is longer than max characters
func MaxLen(field, value string, max int) Rule {
	return func(context.Context) *Violation {
		if utf8.RuneCountInString(value) > max {
			return &Violation{Field: field, Message: fmt.Sprintf("%s cannot be longer than %d characters", field, max)}
		}
		return nil
	}
}

// ExactLen fails when the non-empty value length differs from n characters
func ExactLen(field, value string, n int) Rule {
	return func(context.Context) *Violation {
		if value != "" && utf8.RuneCountInString(value) != n {
			return &Violation{Field: field, Message: fmt.Sprintf("%s must be exactly %d characters", field, n)}
		}
		return nil
	}
}

// PersonName fails when the name contains a disallowed character or does not
// end with one of the recognized patronymic/matronymic suffixes. Empty values
// are left to Required.
func PersonName(field, value string) Rule {
	return func(context.Context) *Violation {
		if value == "" {
			return nil
		}

		if nameDisallowedRx.MatchString(value) {
			return &Violation{Field: field, Message: fmt.Sprintf("%s contains invalid characters", field)}
		}

		lowered := strings.ToLower(value)
		for _, suffix := range nameRequiredSuffixes {
			if strings.HasSuffix(lowered, suffix) {
				return nil
			}
		}
		return &Violation{
			Field:   field,
			Message: fmt.Sprintf("%s must end with one of the following : %s", field, strings.Join(nameRequiredSuffixes, ", ")),
		}
	}
}

// Lookup reports whether a reference code is present in its reference table
type Lookup func(ctx context.Context, code string) (bool, error)

// Exists fails when the value is missing in its reference table. A failing
// lookup (connectivity, timeout) is surfaced as a violation carrying the
// underlying error text - never silently treated as "not found".
func Exists(field, value, message string, lookup Lookup) Rule {
	return func(ctx context.Context) *Violation {
		if value == "" {
			return nil
		}

		found, err := lookup(ctx, value)
		if err != nil {
			return &Violation{Field: field, Message: fmt.Sprintf("validation failed: %v", err)}
		}
		if !found {
			return &Violation{Field: field, Message: message}
		}
		return nil
	}
}
