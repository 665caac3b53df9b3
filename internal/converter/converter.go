package converter

import (
	"fmt"
	"strings"

	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/selector"
)

// Status classifies the outcome of converting one step.
type Status int

const (
	// StatusSuccess means a dispatch arm matched the action tag.
	StatusSuccess Status = iota
	// StatusFallback means the tag was unrecognized and the sentence was
	// synthesized by the self-healing path.
	StatusFallback
	// StatusError means the step lacked required shape (no action tag).
	StatusError
)

// Result is one converted step: exactly one output line, always.
type Result struct {
	Sentence string
	Status   Status
}

// Converter maps a step's action tag, resolved selector description, and
// variable reference to one natural-language line. It is total: every input
// step yields a sentence, with unrecognized tags routed through the fallback
// and shapeless steps rendered as commented error lines.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert produces the sentence for one step. checkpoint and stepIndex tag
// the diagnostics recorded on the report by the fallback and error paths.
func (c *Converter) Convert(step domain.Step, sel selector.Resolution, checkpoint string, stepIndex int, report *domain.ConversionReport) Result {
	if strings.TrimSpace(step.Action) == "" {
		report.Errors = append(report.Errors, domain.Issue{
			Checkpoint: checkpoint,
			StepIndex:  stepIndex,
			Message:    "step has no action tag",
		})
		return Result{Sentence: "# ERROR: step has no action tag", Status: StatusError}
	}

	kind := domain.ParseAction(step.Action)
	if kind == domain.ActionUnknown {
		return c.heal(step, sel, checkpoint, stepIndex, report)
	}

	sentence := c.dispatch(kind, step, sel)
	appendUnique(&report.RecognizedActions, kind.String())
	return Result{Sentence: sentence, Status: StatusSuccess}
}

// dispatch holds one arm per known action kind. Each arm owns its template;
// adding a new action means adding a constant, an alias, and an arm here.
func (c *Converter) dispatch(kind domain.ActionKind, step domain.Step, sel selector.Resolution) string {
	switch kind {
	case domain.ActionNavigate:
		return "Navigate to " + valueExpr(step)

	case domain.ActionWrite:
		s := "Write " + valueExpr(step)
		if sel.Found {
			s += fmt.Sprintf(" in field %q", sel.Description)
		}
		return s
	case domain.ActionClear:
		return fmt.Sprintf("Clear field %q", sel.Description)
	case domain.ActionPress:
		key := domain.DecodePressMeta(step.Meta).Key
		if key == "" {
			key = step.Value
		}
		s := fmt.Sprintf("Press %q", key)
		if sel.Found {
			s += fmt.Sprintf(" in field %q", sel.Description)
		}
		return s

	case domain.ActionClick:
		return "Click on " + target(sel)
	case domain.ActionDoubleClick:
		return "Double-click on " + target(sel)
	case domain.ActionRightClick:
		return "Right-click on " + target(sel)
	case domain.ActionHover:
		return "Hover over " + target(sel)
	case domain.ActionMouse:
		return mouseSentence(domain.DecodeMouseMeta(step.Meta), sel)
	case domain.ActionDrag:
		return "Drag " + target(sel)
	case domain.ActionDrop:
		return "Drop onto " + target(sel)

	case domain.ActionPick:
		return fmt.Sprintf("Pick %s from dropdown %s", valueExpr(step), target(sel))

	case domain.ActionWaitForElement:
		return "Wait for " + target(sel)
	case domain.ActionPause:
		return waitSentence(step)

	case domain.ActionAssertExists:
		return fmt.Sprintf("Look for element %s on the page", assertTarget(sel))
	case domain.ActionAssertNotExists:
		return fmt.Sprintf("Assert %s does not exist on the page", assertTarget(sel))
	case domain.ActionAssertEquals:
		return assertSentence(step, sel, "equals")
	case domain.ActionAssertNotEquals:
		return assertSentence(step, sel, "does not equal")
	case domain.ActionAssertLessThan:
		return assertSentence(step, sel, "is less than")
	case domain.ActionAssertLessThanOrEqual:
		return assertSentence(step, sel, "is less than or equal to")
	case domain.ActionAssertGreaterThan:
		return assertSentence(step, sel, "is greater than")
	case domain.ActionAssertGreaterThanOrEqual:
		return assertSentence(step, sel, "is greater than or equal to")
	case domain.ActionAssertMatches:
		return fmt.Sprintf("Assert %s matches pattern %q", assertTarget(sel), step.Value)
	case domain.ActionAssertSelected:
		return fmt.Sprintf("Assert %q is selected in %s", step.Value, target(sel))
	case domain.ActionAssertChecked:
		return fmt.Sprintf("Assert %s is checked", assertTarget(sel))
	case domain.ActionAssertVariable:
		meta := domain.DecodeAssertMeta(step.Meta)
		relation := relationPhrase(meta.Relation)
		expected := meta.Expected
		if expected == "" {
			expected = step.Value
		}
		return fmt.Sprintf("Assert variable $%s %s %q", step.VariableName, relation, expected)

	case domain.ActionStore:
		if step.Value == "" && sel.Found {
			return fmt.Sprintf("Store element text of %s as $%s", target(sel), step.VariableName)
		}
		return fmt.Sprintf("Store %q as $%s", step.Value, step.VariableName)

	case domain.ActionCookie:
		return cookieSentence(domain.DecodeCookieMeta(step.Meta))

	case domain.ActionRefresh:
		return "Refresh the page"
	case domain.ActionBack:
		return "Go back to the previous page"
	case domain.ActionForward:
		return "Go forward to the next page"
	case domain.ActionResize:
		meta := domain.DecodeResizeMeta(step.Meta)
		return fmt.Sprintf("Resize window to %d x %d", meta.Width, meta.Height)
	case domain.ActionMaximize:
		return "Maximize the window"
	case domain.ActionCloseWindow:
		return "Close the current window"

	case domain.ActionSwitch:
		return switchSentence(domain.DecodeSwitchMeta(step.Meta), sel)

	case domain.ActionDismiss:
		return dismissSentence(domain.DecodeDialogMeta(step.Meta))

	case domain.ActionExecute:
		meta := domain.DecodeExecuteMeta(step.Meta)
		if meta.ScriptName == "" {
			return "Execute script"
		}
		return fmt.Sprintf("Execute script %q", meta.ScriptName)
	case domain.ActionAPICall:
		return apiCallSentence(domain.DecodeAPICallMeta(step.Meta))

	case domain.ActionUpload:
		return fmt.Sprintf("Upload %s to %s", valueExpr(step), target(sel))

	case domain.ActionTap:
		return "Tap on " + target(sel)
	case domain.ActionDoubleTap:
		return "Double-tap on " + target(sel)
	case domain.ActionLongPress:
		return "Long-press on " + target(sel)
	case domain.ActionSwipe:
		return swipeSentence(domain.DecodeSwipeMeta(step.Meta), sel)

	case domain.ActionComment:
		text := step.FreeText
		if text == "" {
			text = step.Value
		}
		// Comment text is embedded raw, so collapse newlines or the step
		// would span multiple output lines.
		return "# " + strings.Join(strings.Fields(text), " ")

	case domain.ActionUnknown:
		// Handled before dispatch; kept so the switch covers the full set.
		return ""
	}
	return ""
}

// valueExpr renders the step's value: a variable reference as $name with no
// quotes, a literal double-quoted.
func valueExpr(step domain.Step) string {
	if step.VariableName != "" {
		return "$" + step.VariableName
	}
	return fmt.Sprintf("%q", step.Value)
}

// target renders a resolved selector description for embedding. The missing
// marker and variable references are embedded bare; literal descriptions are
// quoted.
func target(sel selector.Resolution) string {
	if !sel.Found {
		return sel.Description
	}
	if sel.Variable != "" && sel.Description == "$"+sel.Variable {
		return sel.Description
	}
	return fmt.Sprintf("%q", sel.Description)
}

// assertTarget prefers the variable named inside a descriptive hint over the
// literal selector text.
func assertTarget(sel selector.Resolution) string {
	if sel.Variable != "" {
		return "$" + sel.Variable
	}
	return target(sel)
}

func assertSentence(step domain.Step, sel selector.Resolution, relation string) string {
	if step.VariableName != "" {
		return fmt.Sprintf("Assert variable $%s %s %q", step.VariableName, relation, step.Value)
	}
	return fmt.Sprintf("Assert %s %s %q", assertTarget(sel), relation, step.Value)
}

func relationPhrase(relation string) string {
	switch relation {
	case "NOT_EQUALS":
		return "does not equal"
	case "LESS_THAN":
		return "is less than"
	case "LESS_THAN_OR_EQUAL":
		return "is less than or equal to"
	case "GREATER_THAN":
		return "is greater than"
	case "GREATER_THAN_OR_EQUAL":
		return "is greater than or equal to"
	default:
		return "equals"
	}
}

func mouseSentence(meta domain.MouseMeta, sel selector.Resolution) string {
	switch meta.SubAction {
	case "DOUBLE_CLICK":
		return "Double-click on " + target(sel)
	case "RIGHT_CLICK":
		return "Right-click on " + target(sel)
	case "OVER", "HOVER":
		return "Hover over " + target(sel)
	case "MOVE":
		if !sel.Found {
			return fmt.Sprintf("Move mouse to (%d, %d)", meta.X, meta.Y)
		}
		return "Move mouse to " + target(sel)
	case "DOWN":
		return "Press mouse down on " + target(sel)
	case "UP":
		return "Release mouse on " + target(sel)
	case "DRAG":
		return "Drag " + target(sel)
	case "DROP":
		return "Drop onto " + target(sel)
	default:
		return "Click on " + target(sel)
	}
}

func waitSentence(step domain.Step) string {
	meta := domain.DecodeWaitMeta(step.Meta)
	seconds := meta.DurationMS / 1000
	if seconds <= 0 {
		seconds = 1
	}
	if seconds == 1 {
		return "Wait 1 second"
	}
	return fmt.Sprintf("Wait %d seconds", seconds)
}

func cookieSentence(meta domain.CookieMeta) string {
	switch meta.Operation {
	case "ADD", "CREATE":
		return fmt.Sprintf("Create cookie %q with value %q", meta.Name, meta.Value)
	case "DELETE", "REMOVE":
		return fmt.Sprintf("Delete cookie %q", meta.Name)
	case "CLEAR":
		return "Clear all cookies"
	default:
		if meta.Name != "" {
			return fmt.Sprintf("Set cookie %q", meta.Name)
		}
		return "Clear all cookies"
	}
}

func switchSentence(meta domain.SwitchMeta, sel selector.Resolution) string {
	switch meta.Target {
	case "PARENT_FRAME":
		return "Switch to parent frame"
	case "FRAME_BY_INDEX":
		return fmt.Sprintf("Switch to frame %d", meta.Index)
	case "IFRAME":
		return "Switch to iframe " + target(sel)
	case "NEXT_TAB":
		return "Switch to next tab"
	case "PREVIOUS_TAB", "PREV_TAB":
		return "Switch to previous tab"
	default:
		if sel.Found {
			return "Switch to " + target(sel)
		}
		return "Switch context"
	}
}

func dismissSentence(meta domain.DialogMeta) string {
	switch meta.Kind {
	case "CONFIRM":
		if meta.Accept {
			return "Accept the confirmation dialog"
		}
		return "Cancel the confirmation dialog"
	case "PROMPT":
		if meta.Response != "" {
			return fmt.Sprintf("Reply %q to the prompt", meta.Response)
		}
		if meta.Accept {
			return "Accept the prompt"
		}
		return "Dismiss the prompt"
	default:
		return "Dismiss the alert"
	}
}

func apiCallSentence(meta domain.APICallMeta) string {
	if !meta.Resolved {
		if meta.CallID == "" {
			return "Call API test"
		}
		return fmt.Sprintf("Call API test %q", meta.CallID)
	}
	s := fmt.Sprintf("Call API %s %q", meta.Method, meta.URL)
	if len(meta.InputVariables) > 0 {
		refs := make([]string, len(meta.InputVariables))
		for i, name := range meta.InputVariables {
			refs[i] = "$" + name
		}
		s += " with " + strings.Join(refs, ", ")
	}
	return s
}

func swipeSentence(meta domain.SwipeMeta, sel selector.Resolution) string {
	direction := strings.ToLower(meta.Direction)
	if direction == "" {
		direction = "down"
	}
	s := "Swipe " + direction
	if sel.Found {
		s += " on " + target(sel)
	}
	return s
}

func appendUnique(list *[]string, value string) {
	for _, existing := range *list {
		if existing == value {
			return
		}
	}
	*list = append(*list, value)
}
