package domain

import (
	"strconv"
	"strings"
)

// The step's raw meta bag is loosely typed; each converter arm only
// understands one shape. These per-family records decode the fields they
// need and ignore everything else, so a malformed bag degrades to zero
// values instead of failing the step.

// MouseMeta parameterizes the generic MOUSE action.
type MouseMeta struct {
	SubAction string // CLICK, DOUBLE_CLICK, RIGHT_CLICK, OVER, MOVE, DOWN, UP, DRAG, DROP
	X         int
	Y         int
}

// DialogMeta parameterizes DISMISS.
type DialogMeta struct {
	Kind     string // ALERT, CONFIRM, PROMPT
	Accept   bool
	Response string
}

// WaitMeta parameterizes PAUSE and WAIT_FOR_ELEMENT.
type WaitMeta struct {
	DurationMS int
}

// ResizeMeta parameterizes RESIZE.
type ResizeMeta struct {
	Width  int
	Height int
}

// SwitchMeta parameterizes SWITCH.
type SwitchMeta struct {
	Target string // PARENT_FRAME, FRAME_BY_INDEX, IFRAME, NEXT_TAB, PREVIOUS_TAB
	Index  int
}

// CookieMeta parameterizes COOKIE.
type CookieMeta struct {
	Operation string // ADD, DELETE, CLEAR
	Name      string
	Value     string
}

// PressMeta parameterizes PRESS.
type PressMeta struct {
	Key string
}

// SwipeMeta parameterizes SWIPE.
type SwipeMeta struct {
	Direction string // UP, DOWN, LEFT, RIGHT
}

// ExecuteMeta parameterizes EXECUTE.
type ExecuteMeta struct {
	ScriptName string
}

// APICallMeta parameterizes API_CALL. Resolved indicates the call's
// definition was available ahead of time; when false only CallID is
// trustworthy and the sentence falls back to a placeholder.
type APICallMeta struct {
	Resolved       bool
	CallID         string
	Method         string
	URL            string
	InputVariables []string
}

// AssertMeta parameterizes ASSERT_VARIABLE.
type AssertMeta struct {
	Relation string // EQUALS, NOT_EQUALS, LESS_THAN, LESS_THAN_OR_EQUAL, GREATER_THAN, GREATER_THAN_OR_EQUAL
	Expected string
}

// DecodeMouseMeta extracts mouse parameters from a raw meta bag.
func DecodeMouseMeta(meta map[string]any) MouseMeta {
	return MouseMeta{
		SubAction: normalizeCode(metaString(meta, "action")),
		X:         metaInt(meta, "x"),
		Y:         metaInt(meta, "y"),
	}
}

// DecodeDialogMeta extracts dialog parameters from a raw meta bag.
func DecodeDialogMeta(meta map[string]any) DialogMeta {
	return DialogMeta{
		Kind:     normalizeCode(metaString(meta, "type")),
		Accept:   metaBool(meta, "accept"),
		Response: metaString(meta, "response"),
	}
}

// DecodeWaitMeta extracts wait parameters from a raw meta bag.
func DecodeWaitMeta(meta map[string]any) WaitMeta {
	return WaitMeta{DurationMS: metaInt(meta, "duration")}
}

// DecodeResizeMeta extracts window dimensions from a raw meta bag.
func DecodeResizeMeta(meta map[string]any) ResizeMeta {
	return ResizeMeta{
		Width:  metaInt(meta, "width"),
		Height: metaInt(meta, "height"),
	}
}

// DecodeSwitchMeta extracts the switch target from a raw meta bag.
func DecodeSwitchMeta(meta map[string]any) SwitchMeta {
	return SwitchMeta{
		Target: normalizeCode(metaString(meta, "type")),
		Index:  metaInt(meta, "index"),
	}
}

// DecodeCookieMeta extracts cookie parameters from a raw meta bag.
func DecodeCookieMeta(meta map[string]any) CookieMeta {
	return CookieMeta{
		Operation: normalizeCode(metaString(meta, "operation")),
		Name:      metaString(meta, "name"),
		Value:     metaString(meta, "value"),
	}
}

// DecodePressMeta extracts the key from a raw meta bag.
func DecodePressMeta(meta map[string]any) PressMeta {
	return PressMeta{Key: metaString(meta, "key")}
}

// DecodeSwipeMeta extracts the swipe direction from a raw meta bag.
func DecodeSwipeMeta(meta map[string]any) SwipeMeta {
	return SwipeMeta{Direction: normalizeCode(metaString(meta, "direction"))}
}

// DecodeExecuteMeta extracts the script name from a raw meta bag.
func DecodeExecuteMeta(meta map[string]any) ExecuteMeta {
	return ExecuteMeta{ScriptName: metaString(meta, "script")}
}

// DecodeAPICallMeta extracts remote-call parameters from a raw meta bag.
func DecodeAPICallMeta(meta map[string]any) APICallMeta {
	m := APICallMeta{
		CallID: metaString(meta, "apiTestId"),
		Method: normalizeCode(metaString(meta, "method")),
		URL:    metaString(meta, "url"),
	}
	if raw, ok := meta["inputVariables"].([]any); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				m.InputVariables = append(m.InputVariables, s)
			}
		}
	}
	m.Resolved = m.Method != "" && m.URL != ""
	return m
}

// DecodeAssertMeta extracts the relation and expected value from a raw meta bag.
func DecodeAssertMeta(meta map[string]any) AssertMeta {
	return AssertMeta{
		Relation: normalizeCode(metaString(meta, "relation")),
		Expected: metaString(meta, "expected"),
	}
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	switch v := meta[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func metaInt(meta map[string]any, key string) int {
	if meta == nil {
		return 0
	}
	switch v := meta[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func metaBool(meta map[string]any, key string) bool {
	if meta == nil {
		return false
	}
	switch v := meta[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

func normalizeCode(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
