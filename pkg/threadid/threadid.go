package threadid

import (
	"fmt"
	"strings"
)

// Separator joins the two participant ids into a thread id.
// It is part of the wire format: stored thread ids embed it, so it must
// never change once data exists.
const Separator = "_"

// Derive maps an unordered pair of user ids to the canonical thread id.
// The pair is sorted lexicographically before joining, so
// Derive(a, b) == Derive(b, a) for any valid pair.
func Derive(userA, userB string) (string, error) {
	a := strings.TrimSpace(userA)
	b := strings.TrimSpace(userB)

	if a == "" || b == "" {
		return "", fmt.Errorf("thread id requires two non-empty user ids")
	}
	if a == b {
		return "", fmt.Errorf("cannot derive a thread id for a user with themselves")
	}

	if a > b {
		a, b = b, a
	}
	return a + Separator + b, nil
}

// Participants splits a derived thread id back into its two user ids.
// Returns false when the id was not produced by Derive.
func Participants(id string) (string, string, bool) {
	parts := strings.SplitN(id, Separator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
