package inventory

import (
	"strconv"
	"strings"
)

// splitMarking splits a marking into its base and the longest run of trailing decimal digits.
// "WS VT 12" yields ("WS VT ", 12, true). ok is false when the marking doesn't end in a digit.
func splitMarking(marking string) (string, int, bool) {
	i := len(marking)
	for i > 0 && marking[i-1] >= '0' && marking[i-1] <= '9' {
		i--
	}
	if i == len(marking) {
		return marking, 0, false
	}

	number, err := strconv.Atoi(marking[i:])
	if err != nil {
		// digit run too long to fit an int, treat as no number
		return marking, 0, false
	}

	return marking[:i], number, true
}

// nextMarking returns prefix followed by the highest trailing number found in markings plus one.
// Markings without a trailing number count as 0, so a set without numbers, like an empty set,
// yields prefix followed by "1".
func nextMarking(markings []string, prefix string) string {
	max := 0
	for _, marking := range markings {
		if !strings.HasPrefix(marking, prefix) {
			continue
		}
		if _, number, ok := splitMarking(marking); ok && number > max {
			max = number
		}
	}
	return prefix + strconv.Itoa(max+1)
}
