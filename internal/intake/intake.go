// Package intake derives a suggested task title and priority from free-form
// text. The analysis is rule-based and deterministic: the same input always
// yields the same result, with no external calls and no state, so it is safe
// to use from any number of goroutines.
package intake

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned by Analyze when the raw text is empty or
// whitespace-only. It is the only error the package produces.
var ErrEmptyInput = errors.New("input text is empty")

// Result is the suggestion produced for one piece of raw text. It is not
// persisted anywhere; the caller decides whether to act on it.
type Result struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// Normalize trims leading and trailing whitespace from the raw text.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Analyze runs the title extractor and the priority classifier over the
// normalized text. The two are independent; neither sees the other's output.
func Analyze(raw string) (Result, error) {
	text := Normalize(raw)
	if text == "" {
		return Result{}, ErrEmptyInput
	}

	return Result{
		Title:    ExtractTitle(text),
		Priority: ClassifyPriority(text),
	}, nil
}
