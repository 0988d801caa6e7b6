package workload

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseRequests parses a request queue such as "82, 170, 43".
// Tokens are separated by commas and/or whitespace; empty tokens are skipped,
// so trailing commas are harmless. An input with no tokens yields an empty,
// non-nil queue. Negative cylinders parse here and are rejected by
// Scenario.Validate.
func ParseRequests(s string) ([]int, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	requests := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("request %d: %q is not an integer cylinder: %w", i+1, tok, err)
		}
		requests = append(requests, v)
	}
	return requests, nil
}

// FormatRequests renders a queue in the form accepted by ParseRequests.
func FormatRequests(requests []int) string {
	parts := make([]string, len(requests))
	for i, r := range requests {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ", ")
}
