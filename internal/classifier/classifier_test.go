package classifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/journeyscribe/journeyscribe/internal/classifier"
	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/varscan"
)

var _ = Describe("NameIndex", func() {
	It("should index entries by payload name, never by identifier key", func() {
		envs := []domain.Environment{
			{
				Name: "staging",
				Entries: map[string]domain.EnvironmentEntry{
					"42": {Name: "signaturebox", Value: "/xpath/expr"},
				},
			},
		}

		index := classifier.BuildNameIndex(envs)
		Expect(index).To(HaveKey("signaturebox"))
		Expect(index).ToNot(HaveKey("42"))
		Expect(index["signaturebox"].Value).To(Equal("/xpath/expr"))
	})

	It("should resolve regardless of the identifier chosen", func() {
		envs := []domain.Environment{
			{
				Name: "staging",
				Entries: map[string]domain.EnvironmentEntry{
					"some-other-id": {Name: "signaturebox", Value: "/xpath/expr"},
				},
			},
		}

		index := classifier.BuildNameIndex(envs)
		Expect(index["signaturebox"].Value).To(Equal("/xpath/expr"))
	})
})

var _ = Describe("Classifier", func() {
	var (
		cl      *classifier.Classifier
		scanner *varscan.Scanner
	)

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		cl = classifier.New(&cfg.Variables)
		scanner = varscan.NewScanner()
	})

	classify := func(journey domain.Journey, execution *domain.Execution, envs []domain.Environment) domain.VariableTable {
		return cl.Classify(journey, execution, envs, scanner.Scan(journey))
	}

	It("should classify declared test data", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"username": "bob"},
			Checkpoints: []domain.Checkpoint{
				{Title: "Login", Steps: []domain.Step{{Action: "WRITE", VariableName: "username"}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(HaveLen(1))
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryTestData))
		Expect(table.Variables[0].Value).To(Equal("bob"))
	})

	It("should classify environment variables through the name index", func() {
		journey := domain.Journey{
			Checkpoints: []domain.Checkpoint{
				{Title: "Sign", Steps: []domain.Step{{Action: "WRITE", VariableName: "signaturebox"}}},
			},
		}
		envs := []domain.Environment{
			{Entries: map[string]domain.EnvironmentEntry{
				"42": {Name: "signaturebox", Value: "/xpath/expr"},
			}},
		}

		table := classify(journey, nil, envs)
		Expect(table.Variables).To(HaveLen(1))
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryEnvironment))
		Expect(table.Variables[0].Value).To(Equal("/xpath/expr"))
	})

	It("should prefer test data over an environment value for the same name", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"endpoint": "https://declared"},
			Checkpoints: []domain.Checkpoint{
				{Title: "Go", Steps: []domain.Step{{Action: "NAVIGATE", VariableName: "endpoint"}}},
			},
		}
		envs := []domain.Environment{
			{Entries: map[string]domain.EnvironmentEntry{
				"1": {Name: "endpoint", Value: "https://environment"},
			}},
		}

		table := classify(journey, nil, envs)
		Expect(table.Variables[0].Value).To(Equal("https://declared"))
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryTestData))
	})

	It("should use the execution's initial data for this journey", func() {
		journey := domain.Journey{
			ID: 527218,
			Checkpoints: []domain.Checkpoint{
				{Title: "Login", Steps: []domain.Step{{Action: "WRITE", VariableName: "order"}}},
			},
		}
		execution := &domain.Execution{InitialData: map[string]map[string]string{
			"527218": {"order": "A-100"},
		}}

		table := classify(journey, execution, nil)
		Expect(table.Variables[0].Value).To(Equal("A-100"))
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryTestData))
	})

	It("should classify stored variables as runtime-generated", func() {
		journey := domain.Journey{
			Checkpoints: []domain.Checkpoint{
				{Title: "Save", Steps: []domain.Step{{Action: "STORE", VariableName: "ordernumber", Value: "A-100"}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(HaveLen(1))
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryRuntime))
		Expect(table.Variables[0].Value).To(Equal("A-100"))
	})

	It("should classify hint-only references with no value as selector-only", func() {
		journey := domain.Journey{
			Checkpoints: []domain.Checkpoint{
				{Title: "Sign", Steps: []domain.Step{{
					Action: "ASSERT_EXISTS",
					Selectors: []domain.Selector{
						{Kind: domain.SelectorGuess, Value: `{"variable":"signaturebox"}`},
					},
				}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(HaveLen(1))
		Expect(table.Variables[0].Category).To(Equal(domain.CategorySelectorOnly))
		Expect(table.Variables[0].Value).To(Equal("not set"))
	})

	It("should fall back to the built-in defaults for well-known names", func() {
		journey := domain.Journey{
			Checkpoints: []domain.Checkpoint{
				{Title: "Go", Steps: []domain.Step{{Action: "NAVIGATE", VariableName: "url"}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryLocal))
		Expect(table.Variables[0].Value).To(Equal("https://example.com"))
	})

	It("should drop variables whose declared value is empty", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"QuestionType9": ""},
			Checkpoints: []domain.Checkpoint{
				{Title: "Form", Steps: []domain.Step{{Action: "WRITE", VariableName: "QuestionType9"}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(BeEmpty())
		Expect(table.Filtered).To(ContainElement("QuestionType9"))
	})

	It("should list unreferenced empty test data in the filtered diagnostics", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"QuestionType9": ""},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(BeEmpty())
		Expect(table.Filtered).To(Equal([]string{"QuestionType9"}))
	})

	It("should redact secret-like names regardless of category", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"AdminPassword": "hunter2"},
			Checkpoints: []domain.Checkpoint{
				{Title: "Login", Steps: []domain.Step{{Action: "WRITE", VariableName: "AdminPassword"}}},
			},
		}

		table := classify(journey, nil, nil)
		Expect(table.Variables).To(HaveLen(1))
		Expect(table.Variables[0].Value).To(Equal("********"))
		Expect(table.Variables[0].Redacted).To(BeTrue())
		Expect(table.Variables[0].Category).To(Equal(domain.CategoryTestData))
	})

	It("should count used and available variables", func() {
		journey := domain.Journey{
			DataAttributes: map[string]string{"username": "bob", "unused": "x"},
			Checkpoints: []domain.Checkpoint{
				{Title: "Login", Steps: []domain.Step{{Action: "WRITE", VariableName: "username"}}},
			},
		}
		envs := []domain.Environment{
			{Entries: map[string]domain.EnvironmentEntry{
				"1": {Name: "apihost", Value: "https://api"},
			}},
		}

		table := classify(journey, nil, envs)
		Expect(table.Used).To(Equal(1))
		Expect(table.Available).To(Equal(3))
	})

	It("should count a name defined in several sources once", func() {
		journey := domain.Journey{
			ID:             1,
			DataAttributes: map[string]string{"endpoint": "https://declared"},
			Checkpoints: []domain.Checkpoint{
				{Title: "Go", Steps: []domain.Step{{Action: "NAVIGATE", VariableName: "endpoint"}}},
			},
		}
		execution := &domain.Execution{InitialData: map[string]map[string]string{
			"1": {"endpoint": "https://initial"},
		}}
		envs := []domain.Environment{
			{Entries: map[string]domain.EnvironmentEntry{
				"7": {Name: "endpoint", Value: "https://environment"},
			}},
		}

		table := classify(journey, execution, envs)
		Expect(table.Available).To(Equal(1))
		Expect(table.Used).To(Equal(1))
	})
})
