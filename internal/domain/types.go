package domain

// SelectorKind identifies how a candidate selector locates a UI element.
type SelectorKind string

const (
	SelectorGuess     SelectorKind = "GUESS"      // authoring tool's descriptive hint, value is an encoded payload
	SelectorText      SelectorKind = "TEXT"       // raw visible text
	SelectorID        SelectorKind = "ID"         // stable element id
	SelectorLinkText  SelectorKind = "LINK"       // anchor text
	SelectorXPathID   SelectorKind = "XPATH_ID"   // path expression anchored on an id
	SelectorXPathText SelectorKind = "XPATH_TEXT" // path expression anchored on text
	SelectorXPath     SelectorKind = "XPATH"      // generic path expression
	SelectorCSS       SelectorKind = "CSS"        // style selector
	SelectorClassName SelectorKind = "CLASS"
	SelectorTagName   SelectorKind = "TAG"
	SelectorDOMPath   SelectorKind = "JS_PATH" // full DOM path, last resort
)

// Selector is one candidate way to identify the element a step acts on.
type Selector struct {
	Kind  SelectorKind `json:"type"`
	Value string       `json:"value"`
}

// GuessPayload is the encoded record carried by a GUESS selector's value:
// the authoring tool's best-effort description of an element. This is the
// one place a variable reference can appear nested inside a selector.
type GuessPayload struct {
	Clue     string `json:"clue"`
	Variable string `json:"variable"`
}

// Step is one test action. Steps are produced by the upstream system and
// never mutated here.
type Step struct {
	Action       string         `json:"action"`
	VariableName string         `json:"variable"`
	Value        string         `json:"value"`
	Selectors    []Selector     `json:"selectors"`
	FreeText     string         `json:"freeText"`
	Meta         map[string]any `json:"meta"`
}

// Checkpoint is a named, ordered group of steps. Multiple checkpoints in one
// journey may share a title; display numbering is handled downstream.
type Checkpoint struct {
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

// Journey is an ordered sequence of checkpoints plus the declared test-data
// variables (data attributes) authored with the journey.
type Journey struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Checkpoints    []Checkpoint      `json:"checkpoints"`
	DataAttributes map[string]string `json:"dataAttributes"`
}

// Execution optionally carries an initial-data table keyed by journey ID.
type Execution struct {
	ID          int64                        `json:"id"`
	InitialData map[string]map[string]string `json:"initialData"`
}

// EnvironmentEntry is one variable definition inside an environment. Entries
// are stored keyed by an internal identifier; the variable's human name lives
// here, in the payload.
type EnvironmentEntry struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden"`
}

// Environment is a named collection of variable entries keyed by identifier,
// not by name. Lookups by variable name must scan entry payloads; see the
// classifier's name index.
type Environment struct {
	Name    string                      `json:"name"`
	Entries map[string]EnvironmentEntry `json:"variables"`
}

// VariableCategory is the provenance classification of a referenced variable.
type VariableCategory string

const (
	CategoryTestData     VariableCategory = "TEST_DATA"
	CategoryEnvironment  VariableCategory = "ENVIRONMENT"
	CategoryLocal        VariableCategory = "LOCAL"
	CategoryRuntime      VariableCategory = "RUNTIME"
	CategorySelectorOnly VariableCategory = "SELECTOR_ONLY"
)

// UsageSite records one place a variable was referenced.
type UsageSite struct {
	Checkpoint string `json:"checkpoint"`
	StepIndex  int    `json:"step"` // 1-based within the checkpoint
	Action     string `json:"action"`
	FieldHint  string `json:"field,omitempty"`
}

// Variable is one classified entry of the output variable table.
type Variable struct {
	Name     string           `json:"name"`
	Value    string           `json:"value"`
	Category VariableCategory `json:"category"`
	Redacted bool             `json:"redacted"`
	Usage    []UsageSite      `json:"usage"`
}

// VariableTable is the output of the classification pass.
type VariableTable struct {
	Variables []Variable `json:"variables"` // ordered by first reference
	Used      int        `json:"used"`
	Available int        `json:"available"`
	Filtered  []string   `json:"filtered"` // names dropped for empty values, diagnostics only
}

// MissingSelector records a step for which no selector yielded a usable
// description.
type MissingSelector struct {
	Checkpoint string `json:"checkpoint"`
	StepIndex  int    `json:"step"`
	Action     string `json:"action"`
}

// HealedStep records one use of the unknown-action fallback.
type HealedStep struct {
	Action     string `json:"action"`
	Sentence   string `json:"sentence"`
	Checkpoint string `json:"checkpoint"`
	StepIndex  int    `json:"step"`
}

// Issue is a warning or error tagged with checkpoint+step coordinates.
type Issue struct {
	Checkpoint string `json:"checkpoint"`
	StepIndex  int    `json:"step"`
	Message    string `json:"message"`
}

// ConversionReport accumulates counts and diagnostics over one conversion run.
type ConversionReport struct {
	RunID             string            `json:"runId"`
	TotalSteps        int               `json:"totalSteps"`
	SuccessfulSteps   int               `json:"successfulSteps"`
	FailedSteps       int               `json:"failedSteps"`
	FallbackSteps     int               `json:"fallbackSteps"`
	RecognizedActions []string          `json:"recognizedActions"`
	UnknownActions    []string          `json:"unknownActions"`
	MissingSelectors  []MissingSelector `json:"missingSelectors"`
	Healed            []HealedStep      `json:"healed"`
	Warnings          []Issue           `json:"warnings"`
	Errors            []Issue           `json:"errors"`
	Accuracy          int               `json:"accuracy"`
	AccuracyLevel     string            `json:"accuracyLevel"`
	Recommendations   []string          `json:"recommendations"`
}
