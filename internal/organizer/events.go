package organizer

import (
	"fmt"
	"time"

	"romshelf/internal/metadata"
)

// EventKind classifies a batch event.
type EventKind string

const (
	// EventPlaced records a game that reached its library destination. A
	// Version greater than one means the base path was taken and a suffixed
	// variant was used.
	EventPlaced EventKind = "placed"
	// EventSkipped records a game excluded by a configured filter.
	EventSkipped EventKind = "skipped"
	// EventFailed records a game that could not be processed.
	EventFailed EventKind = "failed"
	// EventWarning records a non-fatal oddity, such as an unreadable
	// descriptor that forced a filename fallback.
	EventWarning EventKind = "warning"
)

// Event is one entry in a run's audit trail.
type Event struct {
	Kind      EventKind
	Archive   string
	GameName  string
	FinalPath string
	Version   int
	Source    metadata.Source
	Detail    string
}

// Report aggregates everything that happened in one batch run.
type Report struct {
	RunID      string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Events     []Event
}

// NewReport starts a report for the given run.
func NewReport(runID string, dryRun bool) *Report {
	return &Report{RunID: runID, DryRun: dryRun, StartedAt: time.Now()}
}

// Append adds an event to the report.
func (r *Report) Append(event Event) {
	r.Events = append(r.Events, event)
}

// Placed counts games that reached the library.
func (r *Report) Placed() int { return r.count(EventPlaced) }

// Collisions counts placements that needed a version suffix.
func (r *Report) Collisions() int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == EventPlaced && e.Version > 1 {
			n++
		}
	}
	return n
}

// Skipped counts games excluded by filters.
func (r *Report) Skipped() int { return r.count(EventSkipped) }

// Failed counts games that errored.
func (r *Report) Failed() int { return r.count(EventFailed) }

// Warnings counts non-fatal oddities.
func (r *Report) Warnings() int { return r.count(EventWarning) }

func (r *Report) count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Summary renders a one-line human summary of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d placed (%d with version suffix), %d skipped, %d failed, %d warnings",
		r.Placed(), r.Collisions(), r.Skipped(), r.Failed(), r.Warnings())
}
