package tracker

import (
	"fmt"
	"math"
	"sort"

	"github.com/journeyscribe/journeyscribe/internal/config"
)

// State is the tracker lifecycle: idle until Start, running while steps are
// recorded, finished after Finish.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

// Outcome is one step's conversion result as seen by the tracker.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFallback
	OutcomeFailure
)

// Summary is the tracker's final accounting.
type Summary struct {
	TotalSteps      int
	Successful      int
	Fallbacks       int
	Failures        int
	Accuracy        int // 0-100
	Level           string
	Recommendations []string
}

// Tracker counts step outcomes across one conversion run and derives an
// accuracy figure with a qualitative level and recommendations.
type Tracker struct {
	cfg   *config.AccuracyConfig
	state State

	successful int
	fallbacks  int
	failures   int

	// failuresByTag counts non-success outcomes per raw action tag, for
	// the dedicated-template recommendation.
	failuresByTag map[string]int
}

// New creates an idle Tracker.
func New(cfg *config.AccuracyConfig) *Tracker {
	return &Tracker{cfg: cfg, failuresByTag: make(map[string]int)}
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Start moves the tracker to running. Starting twice resets the counts.
func (t *Tracker) Start() {
	t.state = StateRunning
	t.successful = 0
	t.fallbacks = 0
	t.failures = 0
	t.failuresByTag = make(map[string]int)
}

// Record registers one step outcome. Records while not running are ignored.
func (t *Tracker) Record(action string, outcome Outcome) {
	if t.state != StateRunning {
		return
	}
	switch outcome {
	case OutcomeSuccess:
		t.successful++
	case OutcomeFallback:
		t.fallbacks++
		t.failuresByTag[action]++
	case OutcomeFailure:
		t.failures++
		t.failuresByTag[action]++
	}
}

// Finish closes the run and computes the summary. A run with zero steps is
// vacuously 100% accurate, not a division error.
func (t *Tracker) Finish() Summary {
	t.state = StateFinished

	total := t.successful + t.fallbacks + t.failures
	accuracy := 100
	if total > 0 {
		accuracy = int(math.Round(float64(t.successful) / float64(total) * 100))
	}

	return Summary{
		TotalSteps:      total,
		Successful:      t.successful,
		Fallbacks:       t.fallbacks,
		Failures:        t.failures,
		Accuracy:        accuracy,
		Level:           t.level(accuracy),
		Recommendations: t.recommendations(accuracy),
	}
}

// level maps an accuracy percentage onto the configured threshold ladder.
func (t *Tracker) level(accuracy int) string {
	switch {
	case accuracy >= t.cfg.Excellent:
		return "excellent"
	case accuracy >= t.cfg.Good:
		return "good"
	case accuracy >= t.cfg.Fair:
		return "fair"
	default:
		return "poor"
	}
}

// recommendations derives follow-up advice declaratively from the counts.
func (t *Tracker) recommendations(accuracy int) []string {
	var recs []string
	if accuracy < t.cfg.Good {
		recs = append(recs, "success rate below threshold: review unmatched action tags")
	}
	if t.fallbacks > 0 {
		recs = append(recs, fmt.Sprintf("%d steps used the fallback: consider adding dispatch arms for their tags", t.fallbacks))
	}
	tags := make([]string, 0, len(t.failuresByTag))
	for tag := range t.failuresByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if count := t.failuresByTag[tag]; count >= t.cfg.FamilyFailureLimit {
			recs = append(recs, fmt.Sprintf("%d failures for action %q: add a dedicated template", count, tag))
		}
	}
	return recs
}
