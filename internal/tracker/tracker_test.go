package tracker_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/tracker"
)

var _ = Describe("Tracker", func() {
	var track *tracker.Tracker

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		track = tracker.New(&cfg.Accuracy)
	})

	It("should move through the idle, running, finished states", func() {
		Expect(track.State()).To(Equal(tracker.StateIdle))
		track.Start()
		Expect(track.State()).To(Equal(tracker.StateRunning))
		track.Finish()
		Expect(track.State()).To(Equal(tracker.StateFinished))
	})

	It("should ignore records while not running", func() {
		track.Record("CLICK", tracker.OutcomeSuccess)
		track.Start()
		summary := track.Finish()
		Expect(summary.TotalSteps).To(BeZero())
	})

	It("should treat zero steps as vacuous success", func() {
		track.Start()
		summary := track.Finish()
		Expect(summary.Accuracy).To(Equal(100))
		Expect(summary.Level).To(Equal("excellent"))
	})

	It("should compute a rounded accuracy percentage", func() {
		track.Start()
		track.Record("CLICK", tracker.OutcomeSuccess)
		track.Record("CLICK", tracker.OutcomeSuccess)
		track.Record("SCROLL", tracker.OutcomeFallback)
		summary := track.Finish()
		Expect(summary.TotalSteps).To(Equal(3))
		Expect(summary.Accuracy).To(Equal(67))
		Expect(summary.Level).To(Equal("fair"))
	})

	It("should walk the threshold ladder", func() {
		track.Start()
		for i := 0; i < 19; i++ {
			track.Record("CLICK", tracker.OutcomeSuccess)
		}
		track.Record("SCROLL", tracker.OutcomeFallback)
		summary := track.Finish()
		Expect(summary.Accuracy).To(Equal(95))
		Expect(summary.Level).To(Equal("excellent"))
	})

	It("should recommend reviewing unmatched tags on a low success rate", func() {
		track.Start()
		track.Record("CLICK", tracker.OutcomeSuccess)
		track.Record("SCROLL", tracker.OutcomeFallback)
		summary := track.Finish()
		Expect(summary.Recommendations).To(ContainElement(ContainSubstring("review unmatched action tags")))
	})

	It("should recommend a dedicated template for repeated failures on one tag", func() {
		track.Start()
		for i := 0; i < 10; i++ {
			track.Record("CLICK", tracker.OutcomeSuccess)
		}
		for i := 0; i < 3; i++ {
			track.Record("SCROLL", tracker.OutcomeFallback)
		}
		summary := track.Finish()
		Expect(summary.Recommendations).To(ContainElement(ContainSubstring(`"SCROLL"`)))
		Expect(summary.Recommendations).To(ContainElement(ContainSubstring("dedicated template")))
	})

	It("should reset counts when started again", func() {
		track.Start()
		track.Record("CLICK", tracker.OutcomeSuccess)
		track.Finish()
		track.Start()
		summary := track.Finish()
		Expect(summary.TotalSteps).To(BeZero())
	})
})
