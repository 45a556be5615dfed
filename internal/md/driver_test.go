package md_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pairpot/internal/md"
	"github.com/san-kum/pairpot/internal/potential"
)

// fakeEngine records the order of calls made by the driver.
type fakeEngine struct {
	dt       float64
	calls    []string
	temps    []float64
	failAt   int
	failWith string
	steps    int
}

func (f *fakeEngine) record(name string) error {
	f.calls = append(f.calls, name)
	if f.failWith == name && f.steps == f.failAt {
		return errors.New("engine exploded")
	}
	return nil
}

func (f *fakeEngine) Integrate() error {
	f.steps++
	return f.record("integrate")
}

func (f *fakeEngine) Sample() error { return f.record("sample") }

func (f *fakeEngine) HeatBath(temperature float64) error {
	f.temps = append(f.temps, temperature)
	return f.record("heat_bath")
}

func (f *fakeEngine) Timestep() float64 { return f.dt }

var _ = Describe("Run", func() {
	var (
		eng     *fakeEngine
		samples []md.Snapshot
		sampler md.Sampler
		ctx     context.Context
	)

	BeforeEach(func() {
		eng = &fakeEngine{dt: 5e-16, failAt: -1}
		samples = nil
		sampler = md.SamplerFunc(func(_ context.Context, snap md.Snapshot) error {
			samples = append(samples, snap)
			return nil
		})
		ctx = context.Background()
	})

	It("calls integrate, sample and heat bath in order each step", func() {
		res, err := md.Run(ctx, eng, nil, md.RunConfig{Steps: 2, Temperature: 300})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(Equal(2))
		Expect(eng.calls).To(Equal([]string{
			"integrate", "sample", "heat_bath",
			"integrate", "sample", "heat_bath",
		}))
		Expect(eng.temps).To(Equal([]float64{300, 300}))
	})

	It("updates the sampler every ten steps by default", func() {
		res, err := md.Run(ctx, eng, sampler, md.RunConfig{Steps: 4000, Temperature: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steps).To(Equal(4000))
		Expect(res.Samples).To(Equal(400))
		Expect(samples).To(HaveLen(400))
		Expect(samples[0].Step).To(Equal(10))
		Expect(samples[399].Step).To(Equal(4000))
		Expect(res.Time).To(BeNumerically("~", 4000*5e-16, 1e-20))
	})

	It("honours a custom sample interval", func() {
		res, err := md.Run(ctx, eng, sampler, md.RunConfig{Steps: 25, SampleEvery: 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Samples).To(Equal(5))
		Expect(samples[1].Time).To(BeNumerically("~", 10*5e-16, 1e-25))
	})

	It("wraps engine failures with the failing phase", func() {
		eng.failAt = 3
		eng.failWith = "heat_bath"

		res, err := md.Run(ctx, eng, sampler, md.RunConfig{Steps: 10})
		Expect(err).To(HaveOccurred())

		var stepErr *md.StepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Phase).To(Equal(md.PhaseHeatBath))
		Expect(stepErr.Step).To(Equal(2))
		Expect(res.Steps).To(Equal(2))
	})

	It("wraps sampler failures", func() {
		failing := md.SamplerFunc(func(context.Context, md.Snapshot) error {
			return errors.New("display closed")
		})
		_, err := md.Run(ctx, eng, failing, md.RunConfig{Steps: 20})

		var stepErr *md.StepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Phase).To(Equal(md.PhaseUpdate))
		Expect(stepErr.Step).To(Equal(10))
	})

	It("stops when the context is canceled", func() {
		cctx, cancel := context.WithCancel(ctx)
		stopper := md.SamplerFunc(func(context.Context, md.Snapshot) error {
			cancel()
			return nil
		})

		res, err := md.Run(cctx, eng, stopper, md.RunConfig{Steps: 100})
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Steps).To(Equal(10))
	})

	DescribeTable("rejects invalid configs",
		func(cfg md.RunConfig) {
			_, err := md.Run(ctx, eng, nil, cfg)
			Expect(err).To(MatchError(md.ErrInvalidRun))
		},
		Entry("zero steps", md.RunConfig{Steps: 0}),
		Entry("negative interval", md.RunConfig{Steps: 1, SampleEvery: -1}),
		Entry("negative temperature", md.RunConfig{Steps: 1, Temperature: -1}),
	)

	It("rejects an engine with no timestep", func() {
		eng.dt = 0
		_, err := md.Run(ctx, eng, nil, md.RunConfig{Steps: 1})
		Expect(err).To(MatchError(md.ErrInvalidRun))
	})

	It("requires an engine", func() {
		_, err := md.Run(ctx, nil, nil, md.RunConfig{Steps: 1})
		Expect(err).To(MatchError(md.ErrNoEngine))
	})
})

var _ = Describe("Bind", func() {
	It("passes a defaulted, validated system to the factory", func() {
		var got md.System
		factory := func(sys md.System) (md.Engine, error) {
			got = sys
			return &fakeEngine{dt: sys.Timestep}, nil
		}

		eng, err := md.Bind(factory, md.System{Particles: 20, Temperature: 1, BoxLength: 20})
		Expect(err).NotTo(HaveOccurred())
		Expect(eng.Timestep()).To(Equal(md.DefaultTimestep))
		Expect(got.BoxShape).To(Equal(md.BoxSquare))
	})

	It("does not call the factory for an invalid system", func() {
		called := false
		factory := func(md.System) (md.Engine, error) {
			called = true
			return nil, nil
		}
		_, err := md.Bind(factory, md.System{Particles: 0, BoxLength: 1})
		Expect(err).To(MatchError(md.ErrInvalidSystem))
		Expect(called).To(BeFalse())
	})

	It("requires a factory", func() {
		_, err := md.Bind(nil, md.System{Particles: 1, BoxLength: 1})
		Expect(err).To(MatchError(md.ErrNoEngine))
	})
})

var _ = Describe("System", func() {
	bond := func() md.System {
		h, err := potential.NewHarmonic([]float64{440.5, 1.522e-10}, potential.SignNegated)
		Expect(err).NotTo(HaveOccurred())
		return md.System{
			Particles:   2,
			Temperature: 300,
			BoxLength:   10,
			BoxShape:    md.BoxSquare,
			Timestep:    md.DefaultTimestep,
			Cutoff:      30,
			XPositions:  []float64{5e-10, 6e-10},
			YPositions:  []float64{5e-10, 6e-10},
			Constants:   h.Constants(),
			Forcefield:  h,
		}
	}

	It("accepts the bond scenario", func() {
		Expect(bond().Validate()).To(Succeed())
	})

	It("computes pair distances from initial positions", func() {
		d := bond().PairDistances()
		Expect(d).To(HaveLen(1))
		Expect(d[0]).To(BeNumerically("~", 1.4142135623730951e-10, 1e-22))
	})

	It("lists every pair", func() {
		sys := md.System{XPositions: []float64{0, 3, 0}, YPositions: []float64{0, 0, 4}}
		Expect(sys.PairDistances()).To(Equal([]float64{3, 4, 5}))
	})

	It("returns nil without positions", func() {
		Expect(md.System{Particles: 20}.PairDistances()).To(BeNil())
	})

	DescribeTable("rejects invalid systems",
		func(mutate func(*md.System)) {
			sys := bond()
			mutate(&sys)
			Expect(sys.Validate()).To(MatchError(md.ErrInvalidSystem))
		},
		Entry("no particles", func(s *md.System) { s.Particles = 0 }),
		Entry("negative temperature", func(s *md.System) { s.Temperature = -1 }),
		Entry("empty box", func(s *md.System) { s.BoxLength = 0 }),
		Entry("unknown shape", func(s *md.System) { s.BoxShape = "hexagon" }),
		Entry("zero timestep", func(s *md.System) { s.Timestep = 0 }),
		Entry("negative cutoff", func(s *md.System) { s.Cutoff = -1 }),
		Entry("ragged positions", func(s *md.System) { s.YPositions = s.YPositions[:1] }),
		Entry("constants without forcefield", func(s *md.System) { s.Forcefield = nil }),
		Entry("wrong position count", func(s *md.System) {
			s.XPositions = []float64{1, 2, 3}
			s.YPositions = []float64{1, 2, 3}
		}),
	)
})
