package stdout

import (
	"fmt"
	"io"

	"github.com/jacoelho/jed/internal/formatter"
	"github.com/jacoelho/jed/internal/results"
)

const rule = "--------------------------------------------------------------------------------"

// Formatter writes plain text reports.
type Formatter struct {
	writer io.Writer
}

// NewWithWriter creates a formatter with a custom writer.
func NewWithWriter(writer io.Writer) formatter.Formatter {
	return &Formatter{
		writer: writer,
	}
}

func (f *Formatter) Format(summaries ...*results.Summary) error {
	for _, s := range summaries {
		if err := f.formatSingle(s); err != nil {
			return err
		}
	}
	if len(summaries) > 1 {
		return f.formatAggregated(results.CalculateAggregatedStats(summaries))
	}
	return nil
}

func (f *Formatter) formatSingle(s *results.Summary) error {
	for _, r := range s.StepResults {
		var status string
		switch {
		case r.Skipped:
			status = "Skipped"
		case r.Error != nil:
			status = fmt.Sprintf("Failed: %v", r.Error)
		default:
			status = "Success"
		}
		_, err := fmt.Fprintf(f.writer, "%s #%d %s %s: %s\n", s.Script, r.Index, r.Op, r.Target, status)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(f.writer, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Steps:     %d (%.1f%% succeeded)\n", len(s.StepResults), s.SuccessPercentage()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Succeeded: %d\n", s.SucceededSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Failed:    %d\n", s.FailedSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Skipped:   %d\n", s.SkippedSteps); err != nil {
		return err
	}
	if s.RolledBack {
		if _, err := fmt.Fprintln(f.writer, "Rolled back: no changes kept"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(f.writer, "Duration:  %d µs\n", s.TotalDuration.Microseconds()); err != nil {
		return err
	}

	return nil
}

func (f *Formatter) formatAggregated(stats results.AggregatedStats) error {
	if _, err := fmt.Fprintln(f.writer, "================================================================================"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Scripts:         %d (%d failed)\n", stats.ScriptCount, stats.FailedScripts); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Total steps:     %d\n", stats.TotalSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Total succeeded: %d\n", stats.TotalSucceededSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Total failed:    %d\n", stats.TotalFailedSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Total skipped:   %d\n", stats.TotalSkippedSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Total duration:  %d µs\n", stats.TotalDuration.Microseconds()); err != nil {
		return err
	}

	return nil
}
