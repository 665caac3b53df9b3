package classifier

import (
	"sort"
	"strconv"
	"strings"

	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/varscan"
)

// NameIndex maps variable names to their environment entries. Environments
// store entries keyed by an internal identifier with the name inside the
// payload; building this index once makes "lookup by name, never by key"
// explicit and avoids rescanning entries per lookup.
type NameIndex map[string]domain.EnvironmentEntry

// BuildNameIndex scans every entry payload of every environment by its name
// field. The outer identifier keys are ignored entirely. Later environments
// win on name collisions.
func BuildNameIndex(envs []domain.Environment) NameIndex {
	index := make(NameIndex)
	for _, env := range envs {
		for _, entry := range env.Entries {
			if entry.Name != "" {
				index[entry.Name] = entry
			}
		}
	}
	return index
}

// Classifier assigns a provenance category and display value to every
// variable a journey references.
type Classifier struct {
	cfg *config.VariableConfig
}

// New creates a Classifier.
func New(cfg *config.VariableConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify merges the scanned references against the journey's declared test
// data, the execution's initial-data table, and the environment name index.
//
// Value precedence is test-data > initial-data > environment > built-in
// defaults > not set. Favoring test data over environment values for a name
// present in both is a product decision, not an accident; pinned by test.
//
// A variable whose source defines it as the empty string is dropped from the
// table outright and listed in Filtered. This is a hard rule.
func (c *Classifier) Classify(journey domain.Journey, execution *domain.Execution, envs []domain.Environment, refs []varscan.Reference) domain.VariableTable {
	envIndex := BuildNameIndex(envs)
	initial := initialData(journey, execution)
	runtime := runtimeWrites(journey)

	table := domain.VariableTable{
		Available: availableNames(journey.DataAttributes, initial, envIndex),
	}
	filtered := map[string]bool{}
	drop := func(name string) {
		if !filtered[name] {
			filtered[name] = true
			table.Filtered = append(table.Filtered, name)
		}
	}

	for _, ref := range refs {
		variable := domain.Variable{Name: ref.Name, Usage: ref.Sites}

		switch {
		case hasKey(journey.DataAttributes, ref.Name):
			value := journey.DataAttributes[ref.Name]
			if value == "" {
				drop(ref.Name)
				continue
			}
			variable.Value = value
			variable.Category = domain.CategoryTestData

		case hasKey(initial, ref.Name):
			value := initial[ref.Name]
			if value == "" {
				drop(ref.Name)
				continue
			}
			variable.Value = value
			variable.Category = domain.CategoryTestData

		case hasEntry(envIndex, ref.Name):
			value := envIndex[ref.Name].Value
			if value == "" {
				drop(ref.Name)
				continue
			}
			variable.Value = value
			variable.Category = domain.CategoryEnvironment

		case hasKey(runtime, ref.Name):
			variable.Category = domain.CategoryRuntime
			variable.Value = runtime[ref.Name]
			if variable.Value == "" {
				variable.Value = "not set"
			}

		case !ref.Direct && ref.FromSelector:
			variable.Category = domain.CategorySelectorOnly
			variable.Value = "not set"

		default:
			variable.Category = domain.CategoryLocal
			if value, ok := c.cfg.Defaults[strings.ToLower(ref.Name)]; ok {
				variable.Value = value
			} else {
				variable.Value = "not set"
			}
		}

		if c.isSecret(ref.Name) {
			variable.Value = c.cfg.Mask
			variable.Redacted = true
		}

		table.Variables = append(table.Variables, variable)
	}
	table.Used = len(table.Variables)

	// Declared-but-empty test data goes into the diagnostic list even when
	// nothing references it.
	names := make([]string, 0, len(journey.DataAttributes))
	for name := range journey.DataAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if journey.DataAttributes[name] == "" {
			drop(name)
		}
	}

	return table
}

// isSecret reports whether the name matches any configured secret pattern,
// case-insensitively.
func (c *Classifier) isSecret(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range c.cfg.SecretPatterns {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// availableNames counts the union of names across the three sources; a name
// defined in more than one source is still one variable.
func availableNames(declared, initial map[string]string, envIndex NameIndex) int {
	names := map[string]struct{}{}
	for name := range declared {
		names[name] = struct{}{}
	}
	for name := range initial {
		names[name] = struct{}{}
	}
	for name := range envIndex {
		names[name] = struct{}{}
	}
	return len(names)
}

// initialData picks the execution's initial-data entry for this journey.
func initialData(journey domain.Journey, execution *domain.Execution) map[string]string {
	if execution == nil {
		return nil
	}
	if data, ok := execution.InitialData[strconv.FormatInt(journey.ID, 10)]; ok {
		return data
	}
	return nil
}

// runtimeWrites collects names written by storage and remote-call steps, with
// the literal value when one was carried on the step.
func runtimeWrites(journey domain.Journey) map[string]string {
	writes := map[string]string{}
	for _, checkpoint := range journey.Checkpoints {
		for _, step := range checkpoint.Steps {
			kind := domain.ParseAction(step.Action)
			if kind != domain.ActionStore && kind != domain.ActionAPICall {
				continue
			}
			if step.VariableName == "" {
				continue
			}
			if _, seen := writes[step.VariableName]; !seen {
				writes[step.VariableName] = step.Value
			}
		}
	}
	return writes
}

func hasKey(m map[string]string, key string) bool {
	_, ok := m[key]
	return ok
}

func hasEntry(index NameIndex, key string) bool {
	_, ok := index[key]
	return ok
}
