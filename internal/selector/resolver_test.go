package selector_test

import (
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/selector"
)

var _ = Describe("Resolver", func() {
	var (
		resolver *selector.Resolver
		report   *domain.ConversionReport
	)

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		resolver = selector.NewResolver(&cfg.Selectors)
		report = &domain.ConversionReport{}
	})

	Describe("Resolve", func() {
		It("should prefer the hint clue over a raw-text selector", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorText, Value: "Submit order now"},
					{Kind: domain.SelectorGuess, Value: `{"clue":"Sign In"}`},
				},
			}

			res := resolver.Resolve(step, "Login", 1, report)
			Expect(res.Found).To(BeTrue())
			Expect(res.Description).To(Equal("Sign In"))
		})

		It("should use short free text when no hint exists", func() {
			step := domain.Step{
				Action:   "CLICK",
				FreeText: "Checkout",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorID, Value: "btn-42"},
				},
			}

			res := resolver.Resolve(step, "Cart", 1, report)
			Expect(res.Description).To(Equal("Checkout"))
		})

		It("should skip free text above the length ceiling", func() {
			step := domain.Step{
				Action:   "CLICK",
				FreeText: strings.Repeat("page content ", 20),
				Selectors: []domain.Selector{
					{Kind: domain.SelectorID, Value: "btn-42"},
				},
			}

			res := resolver.Resolve(step, "Cart", 1, report)
			Expect(res.Description).To(Equal("btn-42"))
		})

		It("should fall through the kind priority order", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorDOMPath, Value: "document.body.firstChild"},
					{Kind: domain.SelectorCSS, Value: ".btn-primary"},
					{Kind: domain.SelectorLinkText, Value: "View details"},
				},
			}

			res := resolver.Resolve(step, "Home", 1, report)
			Expect(res.Description).To(Equal("View details"))
		})

		It("should normalize whitespace in descriptions", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorGuess, Value: `{"clue":"  Sign \n\n  In  "}`},
				},
			}

			res := resolver.Resolve(step, "Login", 1, report)
			Expect(res.Description).To(Equal("Sign In"))
		})

		It("should surface the variable named inside a hint", func() {
			step := domain.Step{
				Action: "ASSERT_EXISTS",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorGuess, Value: `{"clue":"Signature box","variable":"signaturebox"}`},
				},
			}

			res := resolver.Resolve(step, "Sign", 1, report)
			Expect(res.Found).To(BeTrue())
			Expect(res.Variable).To(Equal("signaturebox"))
		})

		It("should treat a malformed hint payload as a plain clue and warn", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorGuess, Value: `{"clue": not-json`},
				},
			}

			res := resolver.Resolve(step, "Login", 2, report)
			Expect(res.Found).To(BeTrue())
			Expect(res.Description).To(ContainSubstring("clue"))
			Expect(report.Warnings).To(HaveLen(1))
			Expect(report.Warnings[0].StepIndex).To(Equal(2))
		})

		It("should record a missing-selector occurrence and return the marker", func() {
			step := domain.Step{Action: "CLICK"}

			res := resolver.Resolve(step, "Login", 3, report)
			Expect(res.Found).To(BeFalse())
			Expect(res.Description).To(Equal("[no selector found]"))
			Expect(report.MissingSelectors).To(HaveLen(1))
			Expect(report.MissingSelectors[0].Checkpoint).To(Equal("Login"))
			Expect(report.MissingSelectors[0].StepIndex).To(Equal(3))
		})

		It("should keep truncated multibyte descriptions valid UTF-8", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorCSS, Value: strings.Repeat("a", 79) + "日本語テスト"},
				},
			}

			res := resolver.Resolve(step, "Home", 1, report)
			Expect(utf8.ValidString(res.Description)).To(BeTrue())
			Expect(res.Description).To(HaveSuffix("..."))
			Expect(res.Description).To(ContainSubstring("日"))
		})

		It("should cap long descriptions", func() {
			step := domain.Step{
				Action: "CLICK",
				Selectors: []domain.Selector{
					{Kind: domain.SelectorCSS, Value: strings.Repeat("div > ", 30)},
				},
			}

			res := resolver.Resolve(step, "Home", 1, report)
			Expect(len(res.Description)).To(BeNumerically("<=", 83))
			Expect(res.Description).To(HaveSuffix("..."))
		})
	})
})
