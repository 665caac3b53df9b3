package domain

import "strings"

// ActionKind enumerates the action families the converter knows how to
// phrase. ActionUnknown is a deliberate member of the set: dispatch over
// ActionKind must handle it, which keeps new upstream tags a visible gap
// instead of a silent default.
type ActionKind int

const (
	ActionUnknown ActionKind = iota

	// navigation
	ActionNavigate

	// text input
	ActionWrite
	ActionClear
	ActionPress

	// pointer
	ActionClick
	ActionDoubleClick
	ActionRightClick
	ActionHover
	ActionMouse
	ActionDrag
	ActionDrop

	// selection
	ActionPick

	// waiting
	ActionWaitForElement
	ActionPause

	// assertions
	ActionAssertExists
	ActionAssertNotExists
	ActionAssertEquals
	ActionAssertNotEquals
	ActionAssertLessThan
	ActionAssertLessThanOrEqual
	ActionAssertGreaterThan
	ActionAssertGreaterThanOrEqual
	ActionAssertMatches
	ActionAssertSelected
	ActionAssertChecked
	ActionAssertVariable

	// storage
	ActionStore

	// cookies / environment side channel
	ActionCookie

	// browser and window control
	ActionRefresh
	ActionBack
	ActionForward
	ActionResize
	ActionMaximize
	ActionCloseWindow

	// frame and tab switching
	ActionSwitch

	// dialogs
	ActionDismiss

	// scripting and remote calls
	ActionExecute
	ActionAPICall

	// files
	ActionUpload

	// mobile gestures
	ActionTap
	ActionDoubleTap
	ActionLongPress
	ActionSwipe

	// annotations
	ActionComment
)

var actionNames = map[ActionKind]string{
	ActionUnknown:                  "UNKNOWN",
	ActionNavigate:                 "NAVIGATE",
	ActionWrite:                    "WRITE",
	ActionClear:                    "CLEAR",
	ActionPress:                    "PRESS",
	ActionClick:                    "CLICK",
	ActionDoubleClick:              "DOUBLE_CLICK",
	ActionRightClick:               "RIGHT_CLICK",
	ActionHover:                    "HOVER",
	ActionMouse:                    "MOUSE",
	ActionDrag:                     "DRAG",
	ActionDrop:                     "DROP",
	ActionPick:                     "PICK",
	ActionWaitForElement:           "WAIT_FOR_ELEMENT",
	ActionPause:                    "PAUSE",
	ActionAssertExists:             "ASSERT_EXISTS",
	ActionAssertNotExists:          "ASSERT_NOT_EXISTS",
	ActionAssertEquals:             "ASSERT_EQUALS",
	ActionAssertNotEquals:          "ASSERT_NOT_EQUALS",
	ActionAssertLessThan:           "ASSERT_LESS_THAN",
	ActionAssertLessThanOrEqual:    "ASSERT_LESS_THAN_OR_EQUAL",
	ActionAssertGreaterThan:        "ASSERT_GREATER_THAN",
	ActionAssertGreaterThanOrEqual: "ASSERT_GREATER_THAN_OR_EQUAL",
	ActionAssertMatches:            "ASSERT_MATCHES",
	ActionAssertSelected:           "ASSERT_SELECTED",
	ActionAssertChecked:            "ASSERT_CHECKED",
	ActionAssertVariable:           "ASSERT_VARIABLE",
	ActionStore:                    "STORE",
	ActionCookie:                   "COOKIE",
	ActionRefresh:                  "REFRESH",
	ActionBack:                     "BACK",
	ActionForward:                  "FORWARD",
	ActionResize:                   "RESIZE",
	ActionMaximize:                 "MAXIMIZE",
	ActionCloseWindow:              "CLOSE_WINDOW",
	ActionSwitch:                   "SWITCH",
	ActionDismiss:                  "DISMISS",
	ActionExecute:                  "EXECUTE",
	ActionAPICall:                  "API_CALL",
	ActionUpload:                   "UPLOAD",
	ActionTap:                      "TAP",
	ActionDoubleTap:                "DOUBLE_TAP",
	ActionLongPress:                "LONG_PRESS",
	ActionSwipe:                    "SWIPE",
	ActionComment:                  "COMMENT",
}

// actionAliases maps every recognized raw tag spelling to its kind. Upstream
// emits several spellings per action across API versions.
var actionAliases = map[string]ActionKind{
	"NAVIGATE": ActionNavigate,
	"GOTO":     ActionNavigate,
	"GO":       ActionNavigate,

	"WRITE": ActionWrite,
	"TYPE":  ActionWrite,
	"ENTER": ActionWrite,

	"CLEAR":       ActionClear,
	"CLEAR_FIELD": ActionClear,

	"PRESS": ActionPress,
	"KEY":   ActionPress,

	"CLICK":        ActionClick,
	"DOUBLE_CLICK": ActionDoubleClick,
	"RIGHT_CLICK":  ActionRightClick,
	"HOVER":        ActionHover,
	"MOUSE_OVER":   ActionHover,
	"MOUSE":        ActionMouse,
	"DRAG":         ActionDrag,
	"DROP":         ActionDrop,

	"PICK":   ActionPick,
	"SELECT": ActionPick,

	"WAIT_FOR_ELEMENT": ActionWaitForElement,
	"WAIT_ELEMENT":     ActionWaitForElement,
	"PAUSE":            ActionPause,
	"WAIT":             ActionPause,

	"ASSERT_EXISTS":                ActionAssertExists,
	"ASSERT":                       ActionAssertExists,
	"LOOK_FOR_ELEMENT":             ActionAssertExists,
	"ASSERT_NOT_EXISTS":            ActionAssertNotExists,
	"ASSERT_EQUALS":                ActionAssertEquals,
	"ASSERT_NOT_EQUALS":            ActionAssertNotEquals,
	"ASSERT_LESS_THAN":             ActionAssertLessThan,
	"ASSERT_LESS_THAN_OR_EQUAL":    ActionAssertLessThanOrEqual,
	"ASSERT_GREATER_THAN":          ActionAssertGreaterThan,
	"ASSERT_GREATER_THAN_OR_EQUAL": ActionAssertGreaterThanOrEqual,
	"ASSERT_MATCHES":               ActionAssertMatches,
	"ASSERT_SELECTED":              ActionAssertSelected,
	"ASSERT_CHECKED":               ActionAssertChecked,
	"ASSERT_VARIABLE":              ActionAssertVariable,

	"STORE": ActionStore,
	"SAVE":  ActionStore,

	"COOKIE":      ActionCookie,
	"ENVIRONMENT": ActionCookie,

	"REFRESH":      ActionRefresh,
	"RELOAD":       ActionRefresh,
	"BACK":         ActionBack,
	"FORWARD":      ActionForward,
	"RESIZE":       ActionResize,
	"MAXIMIZE":     ActionMaximize,
	"CLOSE_WINDOW": ActionCloseWindow,
	"CLOSE_TAB":    ActionCloseWindow,

	"SWITCH": ActionSwitch,

	"DISMISS": ActionDismiss,

	"EXECUTE":  ActionExecute,
	"API_CALL": ActionAPICall,

	"UPLOAD": ActionUpload,

	"TAP":        ActionTap,
	"DOUBLE_TAP": ActionDoubleTap,
	"LONG_PRESS": ActionLongPress,
	"SWIPE":      ActionSwipe,

	"COMMENT": ActionComment,
}

// String returns the canonical tag for the kind.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseAction maps a raw action tag to its kind. Tags are matched
// case-insensitively with spaces and hyphens treated as underscores.
// Unrecognized tags return ActionUnknown; callers route those to the
// fallback path, never reject them.
func ParseAction(tag string) ActionKind {
	normalized := strings.ToUpper(strings.TrimSpace(tag))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if kind, ok := actionAliases[normalized]; ok {
		return kind
	}
	return ActionUnknown
}
