package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/journeyscribe/journeyscribe/internal/classifier"
	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/converter"
	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/selector"
	"github.com/journeyscribe/journeyscribe/internal/tracker"
	"github.com/journeyscribe/journeyscribe/internal/varscan"
)

// Generator runs the two passes over a journey: text conversion and variable
// classification. Both are read-only over the same input and independent of
// each other.
type Generator interface {
	Convert(journey domain.Journey) (string, domain.ConversionReport)
	Variables(journey domain.Journey, execution *domain.Execution, envs []domain.Environment) domain.VariableTable
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	resolver   *selector.Resolver
	converter  *converter.Converter
	scanner    *varscan.Scanner
	classifier *classifier.Classifier
	cfg        *config.Config
	log        *logrus.Logger
}

// NewGenerator creates a DefaultGenerator with all dependencies.
func NewGenerator(
	r *selector.Resolver,
	c *converter.Converter,
	s *varscan.Scanner,
	cl *classifier.Classifier,
	cfg *config.Config,
	log *logrus.Logger,
) *DefaultGenerator {
	return &DefaultGenerator{
		resolver:   r,
		converter:  c,
		scanner:    s,
		classifier: cl,
		cfg:        cfg,
		log:        log,
	}
}

// New wires a DefaultGenerator from configuration alone.
func New(cfg *config.Config, log *logrus.Logger) *DefaultGenerator {
	return NewGenerator(
		selector.NewResolver(&cfg.Selectors),
		converter.New(),
		varscan.NewScanner(),
		classifier.New(&cfg.Variables),
		cfg,
		log,
	)
}

// Convert traverses the journey once in strict checkpoint-then-step order
// and renders the natural-language script: one header line per checkpoint,
// one line per step, a blank line between checkpoints. It always terminates
// and always emits exactly one line per input step.
func (g *DefaultGenerator) Convert(journey domain.Journey) (string, domain.ConversionReport) {
	report := domain.ConversionReport{RunID: uuid.NewString()}
	track := tracker.New(&g.cfg.Accuracy)
	track.Start()

	// Checkpoints sharing a title share a display number, assigned by
	// first-seen order of distinct titles.
	numbers := map[string]int{}
	next := 1

	var blocks []string
	for _, checkpoint := range journey.Checkpoints {
		title := checkpoint.Title
		if title == "" {
			title = "Untitled checkpoint"
		}
		number, seen := numbers[title]
		if !seen {
			number = next
			numbers[title] = number
			next++
		}

		lines := []string{fmt.Sprintf("Checkpoint %d: %s", number, title)}
		for i, step := range checkpoint.Steps {
			res := g.resolver.Resolve(step, title, i+1, &report)
			result := g.converter.Convert(step, res, title, i+1, &report)
			track.Record(step.Action, outcomeFor(result.Status))
			lines = append(lines, result.Sentence)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))

		g.log.WithFields(logrus.Fields{
			"checkpoint": title,
			"number":     number,
			"steps":      len(checkpoint.Steps),
		}).Debug("converted checkpoint")
	}

	summary := track.Finish()
	report.TotalSteps = summary.TotalSteps
	report.SuccessfulSteps = summary.Successful
	report.FailedSteps = summary.Failures
	report.FallbackSteps = summary.Fallbacks
	report.Accuracy = summary.Accuracy
	report.AccuracyLevel = summary.Level
	report.Recommendations = summary.Recommendations

	g.log.WithFields(logrus.Fields{
		"runId":    report.RunID,
		"steps":    report.TotalSteps,
		"accuracy": report.Accuracy,
		"level":    report.AccuracyLevel,
		"unknown":  len(report.UnknownActions),
	}).Info("conversion finished")

	return strings.Join(blocks, "\n\n"), report
}

// Variables runs the classification pass: scan references, then classify
// them against test data, initial data, and environments.
func (g *DefaultGenerator) Variables(journey domain.Journey, execution *domain.Execution, envs []domain.Environment) domain.VariableTable {
	refs := g.scanner.Scan(journey)
	table := g.classifier.Classify(journey, execution, envs, refs)

	for _, name := range table.Filtered {
		g.log.WithField("variable", name).Debug("dropped empty-valued variable")
	}
	g.log.WithFields(logrus.Fields{
		"used":      table.Used,
		"available": table.Available,
		"filtered":  len(table.Filtered),
	}).Info("variables classified")

	return table
}

func outcomeFor(status converter.Status) tracker.Outcome {
	switch status {
	case converter.StatusFallback:
		return tracker.OutcomeFallback
	case converter.StatusError:
		return tracker.OutcomeFailure
	default:
		return tracker.OutcomeSuccess
	}
}
