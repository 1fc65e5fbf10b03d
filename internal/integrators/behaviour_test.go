package integrators_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/integrators"
)

var _ = Describe("Steppers", func() {
	var (
		growth dynamo.Func
		grid   []float64
	)

	BeforeEach(func() {
		growth = func(t, y float64) float64 { return y }
		grid = dynamo.Grid(0, 1, 16)
	})

	DescribeTable("index-align the trajectory with the evaluation times",
		func(m dynamo.Method) {
			traj, err := m.Solve(growth, grid, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).To(HaveLen(len(grid)))
			Expect(traj[0]).To(Equal(1.0))
		},
		Entry("euler", integrators.NewEuler()),
		Entry("midpoint", integrators.NewMidpoint()),
		Entry("taylor2", integrators.NewTaylor2()),
		Entry("leapfrog", integrators.NewLeapfrog()),
		Entry("trapezoidal", integrators.NewTrapezoidal(false)),
		Entry("heun", integrators.NewTrapezoidal(true)),
		Entry("backward euler", integrators.NewBackwardEuler()),
		Entry("y-midpoint", integrators.NewYMidpoint()),
	)

	Describe("growth y' = y from y(0) = 1", func() {
		It("brackets e between forward and backward Euler", func() {
			fwd, _ := integrators.NewEuler().Solve(growth, grid, 1.0)
			bwd, err := integrators.NewBackwardEuler().Solve(growth, grid, 1.0)
			Expect(err).NotTo(HaveOccurred())

			Expect(fwd.Last()).To(BeNumerically("<", math.E))
			Expect(bwd.Last()).To(BeNumerically(">", math.E))
		})

		It("is closer to e with the second-order methods", func() {
			euler, _ := integrators.NewEuler().Solve(growth, grid, 1.0)
			taylor, _ := integrators.NewTaylor2().Solve(growth, grid, 1.0)
			trap, err := integrators.NewTrapezoidal(false).Solve(growth, grid, 1.0)
			Expect(err).NotTo(HaveOccurred())

			eulerErr := math.Abs(euler.Last() - math.E)
			Expect(math.Abs(taylor.Last() - math.E)).To(BeNumerically("<", eulerErr/4))
			Expect(math.Abs(trap.Last() - math.E)).To(BeNumerically("<", eulerErr/4))
		})
	})

	Describe("leapfrog", func() {
		It("seeds the second entry with a single Euler step", func() {
			lf := &integrators.Leapfrog{Bootstrap: integrators.BootstrapEuler}
			traj, err := lf.Solve(growth, grid, 1.0)
			Expect(err).NotTo(HaveOccurred())

			seed, _ := integrators.NewEuler().Solve(growth, grid[:2], 1.0)
			Expect(traj[:2]).To(Equal(seed))
		})

		It("rejects an unknown bootstrap", func() {
			_, err := (&integrators.Leapfrog{Bootstrap: -1}).Solve(growth, grid, 1.0)
			Expect(err).To(MatchError(dynamo.ErrUnknownBootstrap))
		})
	})

	Describe("implicit steppers", func() {
		It("stay bounded on a stiff decay where forward Euler blows up", func() {
			stiff := func(t, y float64) float64 { return -50 * y }
			coarse := dynamo.Grid(0, 1, 10)

			fwd, _ := integrators.NewEuler().Solve(stiff, coarse, 1.0)
			bwd, err := integrators.NewBackwardEuler().Solve(stiff, coarse, 1.0)
			Expect(err).NotTo(HaveOccurred())

			Expect(math.Abs(fwd.Last())).To(BeNumerically(">", 1))
			Expect(math.Abs(bwd.Last())).To(BeNumerically("<", 1e-6))
		})
	})
})
