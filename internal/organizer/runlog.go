package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"romshelf/internal/logging"
)

// runLogFileName is the append-only audit trail kept alongside the run logs.
const runLogFileName = "organization_log.txt"

// writeRunLog appends the report's events to the organization log in the
// configured log directory.
func (o *Organizer) writeRunLog(report *Report) error {
	file, err := logging.OpenLogFile(filepath.Join(o.cfg.Paths.LogDir, runLogFileName))
	if err != nil {
		return fmt.Errorf("open organization log: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteReport(file, report); err != nil {
		return err
	}
	return file.Close()
}

// WriteReport renders a report as the plain-text audit format used by the
// organization log.
func WriteReport(w io.Writer, report *Report) error {
	started := report.StartedAt.Format(time.RFC3339)
	if _, err := fmt.Fprintf(w, "=== run %s started %s ===\n", report.RunID, started); err != nil {
		return err
	}
	for _, event := range report.Events {
		if err := writeEvent(w, event); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "=== run %s finished: %s ===\n", report.RunID, report.Summary())
	return err
}

func writeEvent(w io.Writer, event Event) error {
	var err error
	switch event.Kind {
	case EventPlaced:
		if event.Version > 1 {
			_, err = fmt.Fprintf(w, "placed   %s -> %s (collision, v%d, source=%s)\n",
				event.Archive, event.FinalPath, event.Version, event.Source)
		} else {
			_, err = fmt.Fprintf(w, "placed   %s -> %s (source=%s)\n",
				event.Archive, event.FinalPath, event.Source)
		}
	case EventSkipped:
		_, err = fmt.Fprintf(w, "skipped  %s: %s\n", event.Archive, event.Detail)
	case EventFailed:
		_, err = fmt.Fprintf(w, "failed   %s: %s\n", event.Archive, event.Detail)
	case EventWarning:
		_, err = fmt.Fprintf(w, "warning  %s: %s\n", event.Archive, event.Detail)
	default:
		_, err = fmt.Fprintf(w, "%s %s: %s\n", event.Kind, event.Archive, event.Detail)
	}
	return err
}
