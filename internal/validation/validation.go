package validation

import (
	"bytes"
	"context"
	"encoding/json"
)

// Violation is a single failed field rule
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError aggregates every violated rule of a request payload
type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, v := range e.violations {
		buff.WriteString(v.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

// Violations returns all collected violations
func (e *PayloadError) Violations() []Violation {
	return e.violations
}

// Messages returns violation messages only, in rule order
func (e *PayloadError) Messages() []string {
	messages := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		messages = append(messages, v.Message)
	}
	return messages
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// Rule checks a single field constraint. Rules requiring reference lookups
// receive the request context; pure rules ignore it.
type Rule func(ctx context.Context) *Violation

// Run executes every rule eagerly and collects all violations - never
// fail-fast, so the caller responds with the complete list at once.
// Returns nil when the payload is valid.
func Run(ctx context.Context, rules ...Rule) error {
	var violations []Violation
	for _, rule := range rules {
		if v := rule(ctx); v != nil {
			violations = append(violations, *v)
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &PayloadError{violations: violations}
}
