package recordsync

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Direction names a sync pass.
type Direction string

const (
	DirectionPull Direction = "pull"
	DirectionPush Direction = "push"
)

type outcome int

const (
	outcomeUnchanged outcome = iota
	outcomeCreated
	outcomeUpdated
	outcomeAnomaly
	outcomeFailed
)

var outcomeLabels = map[outcome]string{
	outcomeUnchanged: "unchanged",
	outcomeCreated:   "created",
	outcomeUpdated:   "updated",
	outcomeAnomaly:   "anomaly",
	outcomeFailed:    "failed",
}

// Report summarises one pass. For a push, Updated counts documents written.
type Report struct {
	RunID      uuid.UUID
	Direction  Direction
	StartedAt  time.Time
	FinishedAt time.Time

	Total     int
	Created   int
	Updated   int
	Unchanged int
	Anomalies int
	Failed    int
}

// tally accumulates a Report from concurrent workers.
type tally struct {
	mu  sync.Mutex
	rep Report
}

func newTally(d Direction, now time.Time) *tally {
	return &tally{rep: Report{RunID: uuid.New(), Direction: d, StartedAt: now}}
}

func (t *tally) record(o outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rep.Total++
	switch o {
	case outcomeCreated:
		t.rep.Created++
	case outcomeUpdated:
		t.rep.Updated++
	case outcomeUnchanged:
		t.rep.Unchanged++
	case outcomeAnomaly:
		t.rep.Anomalies++
	case outcomeFailed:
		t.rep.Failed++
	}
	documentsTotal.WithLabelValues(string(t.rep.Direction), outcomeLabels[o]).Inc()
}

func (t *tally) finish(now time.Time) Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.rep
	out.FinishedAt = now
	return out
}
