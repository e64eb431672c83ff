package algorithms_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/qcircuit/algorithms"
	"github.com/katalvlaran/qcircuit/circuit"
)

func TestPaperCircuit(t *testing.T) {
	Convey("Given the paper circuit", t, func() {
		c, err := algorithms.NewPaperCircuit(circuit.WithSeed(5))
		So(err, ShouldBeNil)
		So(c.Check(), ShouldBeTrue)
		So(c.Gates(), ShouldHaveLength, 7)
		So(c.InternalWires(), ShouldHaveLength, 6)

		Convey("It should reproduce the truth table with either method", func() {
			for _, m := range []circuit.Method{circuit.MethodSumOverHistories, circuit.MethodStateVector} {
				for b0 := 0; b0 <= 1; b0++ {
					for b1 := 0; b1 <= 1; b1++ {
						out, err := c.Run([]int{b0, b1, 0, 0, 0, 0}, m)
						So(err, ShouldBeNil)
						So(out, ShouldResemble, []int{b0, b1, 1 - b0, 1 - b1, (1 - b0) & (1 - b1), b0 | b1})
					}
				}
			}
		})
	})
}

func TestGrover(t *testing.T) {
	Convey("Given a 2-qubit search", t, func() {
		Convey("One iteration should find the marked value with certainty", func() {
			for marked := 0; marked < 4; marked++ {
				res, err := algorithms.Grover(2, marked, algorithms.WithSeed(uint64(marked)))
				So(err, ShouldBeNil)
				So(res.Iterations, ShouldEqual, 1)
				So(res.Value, ShouldEqual, marked)
			}
		})
	})

	Convey("Given a 3-qubit search", t, func() {
		c, k, err := algorithms.BuildGrover(3, 5)
		So(err, ShouldBeNil)
		So(k, ShouldEqual, 2)

		Convey("The marked value should dominate the distribution", func() {
			w, _, err := c.Distribution([]int{0, 0, 0}, circuit.MethodSumOverHistories)
			So(err, ShouldBeNil)
			So(w[5], ShouldBeGreaterThan, 0.9)
		})

		Convey("The state-vector method should refuse the superposed result", func() {
			_, err := c.Run([]int{0, 0, 0}, circuit.MethodStateVector)
			So(err, ShouldWrap, circuit.ErrNotBasisState)
		})

		Convey("Grover should find it most of the time", func() {
			hits := 0
			for i := 0; i < 10; i++ {
				res, err := algorithms.Grover(3, 5, algorithms.WithSeed(uint64(100+i)))
				So(err, ShouldBeNil)
				So(res.Method, ShouldEqual, circuit.MethodSumOverHistories)
				if res.Value == 5 {
					hits++
				}
			}
			So(hits, ShouldBeGreaterThanOrEqualTo, 6)
		})
	})

	Convey("Given the 6-qubit search for 13", t, func() {
		c, k, err := algorithms.BuildGrover(6, 13)
		So(err, ShouldBeNil)
		So(k, ShouldEqual, 6)
		So(c.Gates(), ShouldHaveLength, 2)
		So(c.InternalWires(), ShouldHaveLength, 6)

		Convey("Grover should finish and find it", func() {
			hits := 0
			for i := 0; i < 5; i++ {
				res, err := algorithms.Grover(6, 13, algorithms.WithSeed(uint64(i)))
				So(err, ShouldBeNil)
				So(res.Iterations, ShouldEqual, 6)
				if res.Value == 13 {
					hits++
				}
			}
			So(hits, ShouldBeGreaterThanOrEqualTo, 4)
		})

		Convey("A cost limit below the estimate should fail fast", func() {
			_, err := algorithms.Grover(6, 13, algorithms.WithMaxCost(1000))
			So(err, ShouldWrap, algorithms.ErrTooLarge)
		})
	})

	Convey("Given bad arguments", t, func() {
		_, err := algorithms.Grover(0, 0)
		So(err, ShouldWrap, algorithms.ErrBadArgument)
		_, err = algorithms.Grover(2, 4)
		So(err, ShouldWrap, algorithms.ErrBadArgument)
		_, err = algorithms.Grover(2, -1)
		So(err, ShouldWrap, algorithms.ErrBadArgument)
	})

	Convey("Given an iteration override", t, func() {
		_, k, err := algorithms.BuildGrover(3, 1, algorithms.WithIterations(1))
		So(err, ShouldBeNil)
		So(k, ShouldEqual, 1)
		So(algorithms.GroverIterations(4), ShouldEqual, 3)
	})
}

func TestFactor(t *testing.T) {
	Convey("Given numbers with classical shortcuts", t, func() {
		cases := map[int][]int{
			2:  {2},
			13: {13},
			12: {2, 2, 3},
			9:  {3, 3},
			27: {3, 3, 3},
			32: {2, 2, 2, 2, 2},
		}
		for n, want := range cases {
			got, err := algorithms.Factor(n, algorithms.WithSeed(1))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, want)
		}
	})

	Convey("Given 15, which needs period finding or a lucky base", t, func() {
		for seed := uint64(0); seed < 3; seed++ {
			got, err := algorithms.Factor(15, algorithms.WithSeed(seed))
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{3, 5})
		}
	})

	Convey("Given the period-finding circuit for a=7, n=15", t, func() {
		c, err := algorithms.BuildPeriodFinder(7, 15)
		So(err, ShouldBeNil)
		So(c.Size(), ShouldEqual, 8)

		Convey("The counting register should only read multiples of 16/4", func() {
			w, _, err := c.Distribution(make([]int, 8), circuit.MethodSumOverHistories)
			So(err, ShouldBeNil)
			perY := make([]float64, 16)
			for o, p := range w {
				perY[o>>4] += p
			}
			for y, p := range perY {
				if y%4 == 0 {
					So(p, ShouldAlmostEqual, 0.25, 1e-9)
				} else {
					So(p, ShouldAlmostEqual, 0, 1e-9)
				}
			}
		})
	})

	Convey("Given invalid or oversized input", t, func() {
		_, err := algorithms.Factor(1)
		So(err, ShouldWrap, algorithms.ErrBadNumber)
		_, err = algorithms.Factor(15, algorithms.WithMaxQubits(6), algorithms.WithSeed(4))
		if err != nil {
			So(err, ShouldWrap, algorithms.ErrTooLarge)
		}
		_, err = algorithms.BuildPeriodFinder(7, 15, algorithms.WithMaxQubits(6))
		So(err, ShouldWrap, algorithms.ErrTooLarge)
		_, err = algorithms.BuildPeriodFinder(15, 15)
		So(err, ShouldWrap, algorithms.ErrBadArgument)
	})
}
