package domain

import "strings"

// StatusID identifies one of the closed set of report statuses. The numeric
// values match the rows seeded into report_statuses.
type StatusID int16

const (
	StatusNew        StatusID = 1
	StatusInProgress StatusID = 2
	StatusResolved   StatusID = 3
	StatusCancelled  StatusID = 4
)

func (s StatusID) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusInProgress:
		return "in_progress"
	case StatusResolved:
		return "resolved"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

func (s StatusID) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// Progress is the completion percentage shown for a report in this status.
func (s StatusID) Progress() int {
	switch s {
	case StatusInProgress:
		return 50
	case StatusResolved:
		return 100
	}
	return 0
}

// statusAliases covers the labels written by the mobile and web clients.
var statusAliases = map[string]StatusID{
	"new":         StatusNew,
	"nouveau":     StatusNew,
	"in_progress": StatusInProgress,
	"in progress": StatusInProgress,
	"en cours":    StatusInProgress,
	"en_cours":    StatusInProgress,
	"resolved":    StatusResolved,
	"terminé":     StatusResolved,
	"termine":     StatusResolved,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
	"annulé":      StatusCancelled,
	"annule":      StatusCancelled,
}

// ParseStatus resolves a status label, case-insensitively.
func ParseStatus(label string) (StatusID, bool) {
	s, ok := statusAliases[strings.ToLower(strings.TrimSpace(label))]
	return s, ok
}

// transitions is the directed edge set of the report workflow.
var transitions = map[StatusID][]StatusID{
	StatusNew:        {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusResolved, StatusCancelled},
}

// CanTransition reports whether a report may move from one status to another.
// Staying on the same status is not a transition and returns false.
func CanTransition(from, to StatusID) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns nil when from == to (no-op) or the edge exists,
// and a *TransitionError otherwise.
func CheckTransition(from, to StatusID) error {
	if from == to {
		return nil
	}
	if !to.IsValid() || !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
