package selector

import (
	"encoding/json"
	"strings"

	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/domain"
)

// Resolution is the outcome of resolving a step's selector list.
type Resolution struct {
	// Description is the human-readable element description, or the
	// configured missing marker when Found is false.
	Description string
	Found       bool
	// Variable is the name carried inside a descriptive-hint payload, if
	// any. Assertion arms render the variable instead of the literal text.
	Variable string
}

// Resolver picks one human-readable description from a step's candidate
// selectors using a fixed priority order. It never fails; when no selector
// is usable it records a missing-selector occurrence and returns the marker.
type Resolver struct {
	cfg *config.SelectorConfig
}

// NewResolver creates a Resolver.
func NewResolver(cfg *config.SelectorConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// kindPriority orders selector kinds from most to least descriptive. The
// descriptive hint and free text are handled before this list applies.
var kindPriority = []domain.SelectorKind{
	domain.SelectorText,
	domain.SelectorID,
	domain.SelectorLinkText,
	domain.SelectorXPathID,
	domain.SelectorXPathText,
	domain.SelectorXPath,
	domain.SelectorCSS,
	domain.SelectorClassName,
	domain.SelectorTagName,
	domain.SelectorDOMPath,
}

// Resolve walks the step's selectors in priority order and returns the first
// usable description. checkpoint and stepIndex tag the missing-selector
// occurrence recorded on the report when nothing is usable.
func (r *Resolver) Resolve(step domain.Step, checkpoint string, stepIndex int, report *domain.ConversionReport) Resolution {
	res := Resolution{}

	// Highest priority: the descriptive hint's clue, plus any variable it
	// names. A hint with only a variable still counts as found.
	for _, sel := range step.Selectors {
		if sel.Kind != domain.SelectorGuess {
			continue
		}
		payload := r.decodeGuess(sel.Value, checkpoint, stepIndex, report)
		if payload.Variable != "" {
			res.Variable = payload.Variable
		}
		if clue := r.normalize(payload.Clue); clue != "" {
			res.Description = clue
			res.Found = true
			return res
		}
		if payload.Variable != "" {
			res.Description = "$" + payload.Variable
			res.Found = true
			return res
		}
	}

	// Free text is trusted only below the ceiling; longer text is page
	// content, not an element label.
	if text := r.normalize(step.FreeText); text != "" && len(step.FreeText) <= r.cfg.FreeTextCeiling {
		res.Description = text
		res.Found = true
		return res
	}

	for _, kind := range kindPriority {
		for _, sel := range step.Selectors {
			if sel.Kind != kind {
				continue
			}
			if kind == domain.SelectorText && len(sel.Value) > r.cfg.FreeTextCeiling {
				continue
			}
			if value := r.normalize(sel.Value); value != "" {
				res.Description = value
				res.Found = true
				return res
			}
		}
	}

	report.MissingSelectors = append(report.MissingSelectors, domain.MissingSelector{
		Checkpoint: checkpoint,
		StepIndex:  stepIndex,
		Action:     step.Action,
	})
	res.Description = r.cfg.MissingMarker
	return res
}

// decodeGuess parses a descriptive-hint payload. A value that is not the
// expected encoded record is treated as a plain clue string and reported as
// a warning, not an error.
func (r *Resolver) decodeGuess(value, checkpoint string, stepIndex int, report *domain.ConversionReport) domain.GuessPayload {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return domain.GuessPayload{}
	}
	if strings.HasPrefix(trimmed, "{") {
		var payload domain.GuessPayload
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			return payload
		}
		report.Warnings = append(report.Warnings, domain.Issue{
			Checkpoint: checkpoint,
			StepIndex:  stepIndex,
			Message:    "malformed hint payload, using raw value as clue",
		})
	}
	return domain.GuessPayload{Clue: trimmed}
}

// normalize collapses whitespace runs, trims, and caps the length of text
// before it is embedded in output. Truncation counts runes, never bytes, so
// multibyte descriptions stay valid UTF-8.
func (r *Resolver) normalize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if runes := []rune(collapsed); len(runes) > r.cfg.DescriptionCap {
		collapsed = strings.TrimSpace(string(runes[:r.cfg.DescriptionCap])) + "..."
	}
	return collapsed
}
