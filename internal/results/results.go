// Package results collects the outcome of edit script steps.
package results

import (
	"time"
)

type StepResult struct {
	Index    int
	Op       string
	Target   string
	Duration time.Duration
	Error    error
	Skipped  bool
}

type StepResultBuilder struct {
	index    int
	op       string
	target   string
	duration time.Duration
	err      error
	skipped  bool
}

func NewStepResultBuilder(index int, op, target string) *StepResultBuilder {
	return &StepResultBuilder{
		index:  index,
		op:     op,
		target: target,
	}
}

func (b *StepResultBuilder) WithDuration(duration time.Duration) *StepResultBuilder {
	b.duration = duration
	return b
}

func (b *StepResultBuilder) WithError(err error) *StepResultBuilder {
	b.err = err
	return b
}

// Skip marks a step that was never attempted because an earlier one failed.
func (b *StepResultBuilder) Skip() *StepResultBuilder {
	b.skipped = true
	return b
}

func (b *StepResultBuilder) Build() StepResult {
	return StepResult{
		Index:    b.index,
		Op:       b.op,
		Target:   b.target,
		Duration: b.duration,
		Error:    b.err,
		Skipped:  b.skipped,
	}
}

// Summary is the outcome of one script.
type Summary struct {
	Script         string
	StepResults    []StepResult
	ExecutedSteps  int
	SucceededSteps int
	FailedSteps    int
	SkippedSteps   int
	// RolledBack is set when a transactional script failed and none of its
	// steps were kept.
	RolledBack    bool
	TotalDuration time.Duration
}

func NewSummary(script string, expectedSteps int) *Summary {
	return &Summary{
		Script:      script,
		StepResults: make([]StepResult, 0, expectedSteps),
	}
}

func (s *Summary) Add(builder *StepResultBuilder) {
	result := builder.Build()

	s.StepResults = append(s.StepResults, result)

	switch {
	case result.Skipped:
		s.SkippedSteps++
	case result.Error != nil:
		s.ExecutedSteps++
		s.FailedSteps++
	default:
		s.ExecutedSteps++
		s.SucceededSteps++
	}
}

func (s *Summary) SetTotalDuration(duration time.Duration) {
	s.TotalDuration = duration
}

func (s *Summary) SetRolledBack() {
	s.RolledBack = true
}

// Failed reports whether any step failed.
func (s *Summary) Failed() bool {
	return s.FailedSteps > 0
}

// Err returns the error of the first failed step.
func (s *Summary) Err() error {
	for _, r := range s.StepResults {
		if r.Error != nil {
			return r.Error
		}
	}
	return nil
}

// Applied is the number of step changes still present in the document.
func (s *Summary) Applied() int {
	if s.RolledBack {
		return 0
	}
	return s.SucceededSteps
}

func (s *Summary) SuccessPercentage() float64 {
	total := len(s.StepResults)
	if total == 0 {
		return 0
	}
	return (float64(s.SucceededSteps) / float64(total)) * 100
}

type AggregatedStats struct {
	ScriptCount         int
	FailedScripts       int
	TotalSteps          int
	TotalSucceededSteps int
	TotalFailedSteps    int
	TotalSkippedSteps   int
	TotalDuration       time.Duration
}

func CalculateAggregatedStats(all []*Summary) AggregatedStats {
	var stats AggregatedStats
	stats.ScriptCount = len(all)

	for _, s := range all {
		stats.TotalSteps += len(s.StepResults)
		stats.TotalSucceededSteps += s.SucceededSteps
		stats.TotalFailedSteps += s.FailedSteps
		stats.TotalSkippedSteps += s.SkippedSteps
		stats.TotalDuration += s.TotalDuration

		if s.Failed() {
			stats.FailedScripts++
		}
	}

	return stats
}
