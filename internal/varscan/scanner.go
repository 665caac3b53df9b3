package varscan

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/journeyscribe/journeyscribe/internal/domain"
)

// Reference is one variable name observed in a journey, with every place it
// was seen. A name referenced many times still yields a single Reference.
type Reference struct {
	Name  string
	Sites []domain.UsageSite
	// Direct is set when the name appeared as a step's variable field or
	// embedded in a value; SelectorOnly references (seen exclusively inside
	// descriptive-hint payloads) classify differently downstream.
	Direct       bool
	FromSelector bool
}

// Embedded variable spellings accepted inside literal values and free text.
var embeddedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`),
	regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`),
	regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`),
}

// Scanner walks a journey and collects every variable reference: direct step
// fields, names inside descriptive-hint selector payloads, and the embedded
// textual spellings $name, ${name} and {{name}}.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the journey's references ordered by first appearance. Steps
// are visited in strict checkpoint-then-step order so usage sites are
// reproducible.
func (s *Scanner) Scan(journey domain.Journey) []Reference {
	var order []string
	refs := make(map[string]*Reference)

	record := func(name string, site domain.UsageSite, fromSelector bool) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		ref, seen := refs[name]
		if !seen {
			ref = &Reference{Name: name}
			refs[name] = ref
			order = append(order, name)
		}
		ref.Sites = append(ref.Sites, site)
		if fromSelector {
			ref.FromSelector = true
		} else {
			ref.Direct = true
		}
	}

	for _, checkpoint := range journey.Checkpoints {
		for i, step := range checkpoint.Steps {
			site := domain.UsageSite{
				Checkpoint: checkpoint.Title,
				StepIndex:  i + 1,
				Action:     step.Action,
				FieldHint:  fieldHint(step),
			}

			if step.VariableName != "" {
				record(step.VariableName, site, false)
			}
			for _, name := range embeddedNames(step.Value) {
				record(name, site, false)
			}
			for _, name := range embeddedNames(step.FreeText) {
				record(name, site, false)
			}
			for _, sel := range step.Selectors {
				if sel.Kind != domain.SelectorGuess {
					continue
				}
				if payload := parseGuess(sel.Value); payload.Variable != "" {
					record(payload.Variable, site, true)
				}
			}
		}
	}

	out := make([]Reference, 0, len(order))
	for _, name := range order {
		out = append(out, *refs[name])
	}
	return out
}

// embeddedNames extracts variable names spelled inside free text.
func embeddedNames(text string) []string {
	if text == "" {
		return nil
	}
	var names []string
	for _, pattern := range embeddedPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			names = append(names, match[1])
		}
	}
	return names
}

// fieldHint derives a human field label from the step's descriptive hint,
// when one exists.
func fieldHint(step domain.Step) string {
	for _, sel := range step.Selectors {
		if sel.Kind != domain.SelectorGuess {
			continue
		}
		if payload := parseGuess(sel.Value); payload.Clue != "" {
			return payload.Clue
		}
	}
	return ""
}

// parseGuess decodes a descriptive-hint payload, tolerating the plain-string
// form the authoring tool sometimes emits.
func parseGuess(value string) domain.GuessPayload {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		var payload domain.GuessPayload
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			return payload
		}
	}
	return domain.GuessPayload{Clue: trimmed}
}
