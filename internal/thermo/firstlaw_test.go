package thermo

import (
	"errors"
	"math"
	"testing"
)

func TestDeltaU(t *testing.T) {
	sys, _ := NewSystem(0, 100, 50)

	du, err := DeltaU(sys)
	if err != nil {
		t.Fatalf("delta u failed: %v", err)
	}
	if du != 50.0 {
		t.Errorf("expected 50.0, got %f", du)
	}
}

func TestDeltaUNilSystem(t *testing.T) {
	if _, err := DeltaU(nil); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for nil system, got %v", err)
	}
}

func TestHeatAdded(t *testing.T) {
	q, err := HeatAdded(-30, 20)
	if err != nil {
		t.Fatalf("heat added failed: %v", err)
	}
	if q != -10.0 {
		t.Errorf("expected -10.0, got %f", q)
	}
}

func TestWorkDone(t *testing.T) {
	w, err := WorkDone(50, 100)
	if err != nil {
		t.Fatalf("work done failed: %v", err)
	}
	if w != 50.0 {
		t.Errorf("expected 50.0, got %f", w)
	}
}

func TestCalculatorRejectsNonFinite(t *testing.T) {
	if _, err := HeatAdded(math.NaN(), 1); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for NaN delta_u, got %v", err)
	}
	if _, err := HeatAdded(1, math.Inf(1)); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for Inf work_done, got %v", err)
	}
	if _, err := WorkDone(math.Inf(-1), 1); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for -Inf delta_u, got %v", err)
	}
	if _, err := WorkDone(1, math.NaN()); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for NaN heat_added, got %v", err)
	}

	var fe *FieldError
	_, err := WorkDone(1, math.NaN())
	if !errors.As(err, &fe) || fe.Field != "heat_added" {
		t.Errorf("expected FieldError naming heat_added, got %v", err)
	}
}

func TestFirstLawRoundTrip(t *testing.T) {
	cases := []struct{ du, w float64 }{
		{50, 20},
		{-30, 20},
		{0, 0},
		{12.5, -7.25},
		{-1e6, 3.5e5},
	}

	for _, tc := range cases {
		q, err := HeatAdded(tc.du, tc.w)
		if err != nil {
			t.Fatalf("heat added failed: %v", err)
		}

		sys, err := NewSystem(0, q, tc.w)
		if err != nil {
			t.Fatalf("construct failed: %v", err)
		}

		du, err := DeltaU(sys)
		if err != nil {
			t.Fatalf("delta u failed: %v", err)
		}
		if du != tc.du {
			t.Errorf("du=%v w=%v: expected delta u %v back, got %v", tc.du, tc.w, tc.du, du)
		}

		w, err := WorkDone(tc.du, q)
		if err != nil {
			t.Fatalf("work done failed: %v", err)
		}
		if w != tc.w {
			t.Errorf("du=%v w=%v: expected work %v back, got %v", tc.du, tc.w, tc.w, w)
		}
	}
}
