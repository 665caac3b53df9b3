package converter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/selector"
)

// heal synthesizes a best-effort sentence for an action tag no dispatch arm
// matches: the humanized tag followed by the selector description or value.
// It records the tag and the synthesized text so unmatched tags show up in
// the report instead of breaking the run. It never returns an empty line.
func (c *Converter) heal(step domain.Step, sel selector.Resolution, checkpoint string, stepIndex int, report *domain.ConversionReport) Result {
	parts := []string{}
	if phrase := humanizeTag(step.Action); phrase != "" {
		parts = append(parts, phrase)
	}
	switch {
	case sel.Found:
		parts = append(parts, target(sel))
	case step.VariableName != "" || step.Value != "":
		parts = append(parts, valueExpr(step))
	}
	sentence := strings.Join(parts, " ")
	if sentence == "" {
		sentence = "# step could not be converted"
	}

	appendUnique(&report.UnknownActions, step.Action)
	report.Healed = append(report.Healed, domain.HealedStep{
		Action:     step.Action,
		Sentence:   sentence,
		Checkpoint: checkpoint,
		StepIndex:  stepIndex,
	})
	return Result{Sentence: sentence, Status: StatusFallback}
}

// humanizeTag turns a raw action tag into a capitalized phrase:
// "WAIT_FOR_TEXT" and "wait-for-text" both become "Wait for text".
func humanizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.ReplaceAll(tag, "_", " ")
	tag = strings.ReplaceAll(tag, "-", " ")
	words := strings.Fields(strings.ToLower(tag))
	if len(words) == 0 {
		return ""
	}
	first, size := utf8.DecodeRuneInString(words[0])
	words[0] = string(unicode.ToUpper(first)) + words[0][size:]
	return strings.Join(words, " ")
}
