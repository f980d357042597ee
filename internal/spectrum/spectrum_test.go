package spectrum

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quakesim/internal/excite"
)

var _ = Describe("Compute", func() {
	var rec *excite.Record

	BeforeEach(func() {
		// Ten seconds of a 2 Hz harmonic.
		rec = excite.Harmonic(1, 2, 0.005, 2000)
	})

	It("peaks at the resonant period", func() {
		periods := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
		points, err := Compute(context.Background(), rec, Request{
			Periods: periods,
			Ksi:     0.05,
			Scheme:  "naa",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(len(periods)))

		best := 0
		for i, p := range points {
			if p.Sd > points[best].Sd {
				best = i
			}
		}
		Expect(points[best].Period).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("derives the pseudo quantities from Sd", func() {
		points, err := Compute(context.Background(), rec, Request{
			Periods: []float64{0.25, 0.5, 1.0},
			Ksi:     0.05,
			Scheme:  "u0v0opt",
			Rho:     0.9,
		})
		Expect(err).NotTo(HaveOccurred())

		for _, p := range points {
			w := 2 * math.Pi / p.Period
			Expect(p.PSv).To(BeNumerically("~", w*p.Sd, 1e-9))
			Expect(p.PSa).To(BeNumerically("~", w*w*p.Sd, 1e-9))
		}
	})

	It("keeps the pseudo-acceleration close to Sa at light damping", func() {
		points, err := Compute(context.Background(), rec, Request{
			Periods: []float64{0.5},
			Ksi:     0.05,
			Scheme:  "naa",
		})
		Expect(err).NotTo(HaveOccurred())
		p := points[0]
		Expect(p.Sa).To(BeNumerically("~", p.PSa, 0.15*p.PSa))
	})

	It("returns identical points regardless of worker count", func() {
		periods, err := Periods(0.1, 2, 40)
		Expect(err).NotTo(HaveOccurred())

		serial, err := Compute(context.Background(), rec, Request{
			Periods: periods, Ksi: 0.05, Scheme: "hht", Rho: 0.9, Workers: 1,
		})
		Expect(err).NotTo(HaveOccurred())

		parallel, err := Compute(context.Background(), rec, Request{
			Periods: periods, Ksi: 0.05, Scheme: "hht", Rho: 0.9, Workers: 8,
		})
		Expect(err).NotTo(HaveOccurred())

		for i := range serial {
			Expect(parallel[i]).To(Equal(serial[i]))
		}
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Compute(ctx, rec, Request{
			Periods: []float64{0.2, 0.4, 0.6},
			Ksi:     0.05,
		})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("rejects an empty period grid", func() {
		_, err := Compute(context.Background(), rec, Request{Ksi: 0.05})
		Expect(err).To(HaveOccurred())
	})

	It("rejects non-positive periods", func() {
		_, err := Compute(context.Background(), rec, Request{
			Periods: []float64{0.5, -1},
			Ksi:     0.05,
		})
		Expect(err).To(HaveOccurred())
	})

	It("propagates pipeline failures with the period attached", func() {
		_, err := Compute(context.Background(), rec, Request{
			Periods: []float64{0.5},
			Ksi:     0.05,
			Scheme:  "nosuch",
		})
		Expect(err).To(MatchError(ContainSubstring("period 0.5")))
	})
})

var _ = Describe("Periods", func() {
	It("builds a log-spaced grid with exact endpoints", func() {
		grid, err := Periods(0.05, 5, 21)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid).To(HaveLen(21))
		Expect(grid[0]).To(Equal(0.05))
		Expect(grid[20]).To(Equal(5.0))

		// Log spacing keeps the ratio between neighbors constant.
		ratio := grid[1] / grid[0]
		for i := 2; i < len(grid); i++ {
			Expect(grid[i] / grid[i-1]).To(BeNumerically("~", ratio, 1e-9))
		}
	})

	It("rejects degenerate ranges", func() {
		_, err := Periods(0, 1, 10)
		Expect(err).To(HaveOccurred())
		_, err = Periods(1, 1, 10)
		Expect(err).To(HaveOccurred())
		_, err = Periods(0.1, 1, 1)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("LinearPeriods", func() {
	It("builds an even grid with exact endpoints", func() {
		grid, err := LinearPeriods(0.5, 2.5, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid).To(Equal([]float64{0.5, 1.0, 1.5, 2.0, 2.5}))
	})

	It("shares the range validation", func() {
		_, err := LinearPeriods(-1, 1, 10)
		Expect(err).To(HaveOccurred())
	})
})
