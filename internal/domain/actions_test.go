package domain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/journeyscribe/journeyscribe/internal/domain"
)

var _ = Describe("ParseAction", func() {
	It("should match tags case-insensitively", func() {
		Expect(domain.ParseAction("navigate")).To(Equal(domain.ActionNavigate))
		Expect(domain.ParseAction("Navigate")).To(Equal(domain.ActionNavigate))
		Expect(domain.ParseAction("NAVIGATE")).To(Equal(domain.ActionNavigate))
	})

	It("should treat hyphens and spaces as underscores", func() {
		Expect(domain.ParseAction("wait-for-element")).To(Equal(domain.ActionWaitForElement))
		Expect(domain.ParseAction("double click")).To(Equal(domain.ActionDoubleClick))
	})

	It("should resolve upstream alias spellings", func() {
		Expect(domain.ParseAction("GOTO")).To(Equal(domain.ActionNavigate))
		Expect(domain.ParseAction("TYPE")).To(Equal(domain.ActionWrite))
		Expect(domain.ParseAction("SELECT")).To(Equal(domain.ActionPick))
		Expect(domain.ParseAction("WAIT")).To(Equal(domain.ActionPause))
	})

	It("should return the unknown kind for unrecognized tags", func() {
		Expect(domain.ParseAction("TELEPORT")).To(Equal(domain.ActionUnknown))
		Expect(domain.ParseAction("")).To(Equal(domain.ActionUnknown))
	})
})

var _ = Describe("Meta decoding", func() {
	It("should decode mouse parameters with JSON numeric types", func() {
		meta := domain.DecodeMouseMeta(map[string]any{"action": "right-click", "x": float64(5), "y": float64(9)})
		Expect(meta.SubAction).To(Equal("RIGHT_CLICK"))
		Expect(meta.X).To(Equal(5))
		Expect(meta.Y).To(Equal(9))
	})

	It("should tolerate a nil or partial bag", func() {
		Expect(domain.DecodeDialogMeta(nil).Kind).To(BeEmpty())
		Expect(domain.DecodeWaitMeta(map[string]any{}).DurationMS).To(BeZero())
	})

	It("should mark an API call resolved only with method and target", func() {
		resolved := domain.DecodeAPICallMeta(map[string]any{"method": "get", "url": "https://api"})
		Expect(resolved.Resolved).To(BeTrue())
		Expect(resolved.Method).To(Equal("GET"))

		unresolved := domain.DecodeAPICallMeta(map[string]any{"apiTestId": "8821"})
		Expect(unresolved.Resolved).To(BeFalse())
		Expect(unresolved.CallID).To(Equal("8821"))
	})
})
