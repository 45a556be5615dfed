package potential

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	argonEpsilon = 0.0103
	argonSigma   = 3.4
)

func TestLJEnergy_MinimumValue(t *testing.T) {
	r := argonSigma * math.Pow(2, 1.0/6.0)
	e := LJEnergy(r, argonEpsilon, argonSigma)
	if math.Abs(e+argonEpsilon) > 1e-12 {
		t.Errorf("expected -%g at minimum, got %g", argonEpsilon, e)
	}
	if math.Abs(LJMinimum(argonSigma)-r) > 1e-15 {
		t.Errorf("LJMinimum mismatch: %g vs %g", LJMinimum(argonSigma), r)
	}
}

func TestLJEnergy_MinimumLocation(t *testing.T) {
	rmin := LJMinimum(argonSigma)
	emin := LJEnergy(rmin, argonEpsilon, argonSigma)

	for r := 3.0; r <= 8.0; r += 0.01 {
		if e := LJEnergy(r, argonEpsilon, argonSigma); e < emin-1e-15 {
			t.Fatalf("energy %g at r=%g is below the minimum %g", e, r, emin)
		}
	}
}

func TestLJEnergy_ZeroAtSigma(t *testing.T) {
	if e := LJEnergy(argonSigma, argonEpsilon, argonSigma); math.Abs(e) > 1e-15 {
		t.Errorf("expected 0 at r == sigma, got %g", e)
	}
}

func TestLJTerms_OppositeSign(t *testing.T) {
	for _, r := range []float64{0.1, 1, 3, 3.4, 5, 8, 100} {
		rep := Repulsive(r, argonEpsilon, argonSigma)
		att := Attractive(r, argonEpsilon, argonSigma)
		if rep <= 0 || att >= 0 {
			t.Errorf("r=%g: expected repulsive > 0 > attractive, got %g, %g", r, rep, att)
		}
	}
}

func TestLJForce_NegativeDerivative(t *testing.T) {
	energy := func(r float64) float64 { return LJEnergy(r, argonEpsilon, argonSigma) }
	settings := &fd.Settings{Formula: fd.Central}

	for _, r := range []float64{3.2, 3.4, 3.816, 4.5, 6.0} {
		want := -fd.Derivative(energy, r, settings)
		got := LJForce(r, argonEpsilon, argonSigma)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("r=%g: expected force %g, got %g", r, want, got)
		}
	}

	if f := LJForce(LJMinimum(argonSigma), argonEpsilon, argonSigma); math.Abs(f) > 1e-12 {
		t.Errorf("expected zero force at minimum, got %g", f)
	}
}

func TestLJ_ZeroDistance(t *testing.T) {
	if !math.IsInf(Repulsive(0, argonEpsilon, argonSigma), 1) {
		t.Error("repulsive term at r=0 should be +Inf")
	}
	if !math.IsInf(Attractive(0, argonEpsilon, argonSigma), -1) {
		t.Error("attractive term at r=0 should be -Inf")
	}
	if !math.IsNaN(LJEnergy(0, argonEpsilon, argonSigma)) {
		t.Error("total energy at r=0 should be NaN (Inf - Inf)")
	}
}

func TestLJSlices_MatchScalar(t *testing.T) {
	r := []float64{3.0, 3.5, 4.0, 5.5, 8.0}

	rep := RepulsiveSlice(r, argonEpsilon, argonSigma)
	att := AttractiveSlice(r, argonEpsilon, argonSigma)
	tot := LJEnergySlice(r, argonEpsilon, argonSigma)
	frc := LJForceSlice(r, argonEpsilon, argonSigma)

	for i, v := range r {
		if rep[i] != Repulsive(v, argonEpsilon, argonSigma) {
			t.Errorf("repulsive[%d] mismatch", i)
		}
		if att[i] != Attractive(v, argonEpsilon, argonSigma) {
			t.Errorf("attractive[%d] mismatch", i)
		}
		if tot[i] != LJEnergy(v, argonEpsilon, argonSigma) {
			t.Errorf("total[%d] mismatch", i)
		}
		if frc[i] != LJForce(v, argonEpsilon, argonSigma) {
			t.Errorf("force[%d] mismatch", i)
		}
	}

	if got := LJEnergySlice(nil, argonEpsilon, argonSigma); len(got) != 0 {
		t.Errorf("expected empty result, got %d values", len(got))
	}
}

func TestLennardJonesForcefield(t *testing.T) {
	lj, err := NewLennardJones([]float64{argonEpsilon, argonSigma})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dr := []float64{3.5, 4.0}
	e := lj.Evaluate(dr, false)
	f := lj.Evaluate(dr, true)
	for i, r := range dr {
		if e[i] != LJEnergy(r, argonEpsilon, argonSigma) {
			t.Errorf("energy[%d] mismatch", i)
		}
		if f[i] != LJForce(r, argonEpsilon, argonSigma) {
			t.Errorf("force[%d] mismatch", i)
		}
	}

	if _, err := NewLennardJones([]float64{argonEpsilon}); err == nil {
		t.Error("expected error for single constant")
	}
}
