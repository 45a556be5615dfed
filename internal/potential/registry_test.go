package potential

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	ff, err := Lookup("harmonic", []float64{440.5, 1.522e-10}, SignNegated)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	h, ok := ff.(*Harmonic)
	if !ok {
		t.Fatalf("expected *Harmonic, got %T", ff)
	}
	if h.Sign != SignNegated {
		t.Errorf("sign not forwarded: %v", h.Sign)
	}

	ff, err = Lookup("lennard_jones", []float64{0.0103, 3.4}, SignAsWritten)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if ff.Name() != "lennard_jones" {
		t.Errorf("unexpected name %s", ff.Name())
	}
}

func TestLookup_Errors(t *testing.T) {
	if _, err := Lookup("morse", []float64{1, 2}, SignAsWritten); !errors.Is(err, ErrUnknownForcefield) {
		t.Errorf("expected ErrUnknownForcefield, got %v", err)
	}

	ff, err := Lookup("harmonic", []float64{1}, SignAsWritten)
	if !errors.Is(err, ErrConstants) {
		t.Errorf("expected ErrConstants, got %v", err)
	}
	if ff != nil {
		t.Errorf("expected nil forcefield on error, got %v", ff)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "harmonic" || names[1] != "lennard_jones" {
		t.Errorf("unexpected names %v", names)
	}
}
