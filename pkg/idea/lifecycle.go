package idea

import (
	"fmt"
	"strings"
)

// Status is a stage in the idea lifecycle.
type Status string

// Lifecycle statuses, in order.
const (
	StatusDraft    Status = "Draft"
	StatusTicketed Status = "Ticketed"
	StatusBranched Status = "Branched"
	StatusPROpen   Status = "PR Open"
	StatusInReview Status = "In Review"
	StatusMerged   Status = "Merged"
	StatusArchived Status = "Archived"
)

// Statuses lists the lifecycle stages in order.
var Statuses = []Status{
	StatusDraft,
	StatusTicketed,
	StatusBranched,
	StatusPROpen,
	StatusInReview,
	StatusMerged,
	StatusArchived,
}

// ParseStatus parses a status string as written in frontmatter or on the
// project board. Matching is case-insensitive and tolerates hyphens and
// underscores in place of spaces ("pr-open", "in_review").
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")

	for _, status := range Statuses {
		if normalized == strings.ToLower(string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order returns the position of the status in the lifecycle, or -1 for an
// unknown status.
func (s Status) Order() int {
	for i, status := range Statuses {
		if s == status {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is a valid lifecycle
// step. The lifecycle is linear and moves one stage at a time; reconciliation
// bypasses this check because the project board wins.
func (s Status) CanTransitionTo(next Status) bool {
	from, to := s.Order(), next.Order()
	if from < 0 || to < 0 {
		return false
	}
	return to == from+1
}

// Transition validates and returns the transition from s to next.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
