package process

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thermolab/internal/thermo"
)

func TestApply(t *testing.T) {
	initial, _ := thermo.NewSystem(100, 0, 0)
	steps := []Step{
		{Label: "heat", HeatAdded: 200, WorkDone: 70},  // +130
		{Label: "expand", HeatAdded: 0, WorkDone: 30},  // -30
		{Label: "cool", HeatAdded: -50, WorkDone: -10}, // -40
	}

	traj, err := Apply(initial, steps)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	want := []float64{100, 230, 200, 160}
	if len(traj.Energies) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(traj.Energies))
	}
	for i := range want {
		if traj.Energies[i] != want[i] {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], traj.Energies[i])
		}
	}

	if traj.Final.InternalEnergy() != 160 {
		t.Errorf("expected final energy 160, got %f", traj.Final.InternalEnergy())
	}
	if traj.Final.HeatAdded() != -50 || traj.Final.WorkDone() != -10 {
		t.Errorf("final system should carry the last exchange, got %v", traj.Final)
	}
}

func TestApplyNilSystem(t *testing.T) {
	if _, err := Apply(nil, []Step{{HeatAdded: 1}}); !errors.Is(err, thermo.ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric, got %v", err)
	}
}

func TestApplyNonFiniteStep(t *testing.T) {
	initial := &thermo.System{}
	steps := []Step{
		{Label: "ok", HeatAdded: 1},
		{Label: "bad", HeatAdded: math.NaN()},
	}

	_, err := Apply(initial, steps)
	if !errors.Is(err, thermo.ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}

	var fe *thermo.FieldError
	if !errors.As(err, &fe) || fe.Field != "heat_added" {
		t.Errorf("expected FieldError naming heat_added, got %v", err)
	}
}

func TestApplyEmptySteps(t *testing.T) {
	initial, _ := thermo.NewSystem(42, 0, 0)

	traj, err := Apply(initial, nil)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(traj.Energies) != 1 || traj.Energies[0] != 42 {
		t.Errorf("expected single initial sample, got %v", traj.Energies)
	}
	if traj.Final.InternalEnergy() != 42 {
		t.Errorf("expected final energy 42, got %f", traj.Final.InternalEnergy())
	}
}

func TestLoadSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	content := `- label: heat
  heat_added: 200.0
  work_done: 70.0
- label: expand
  work_done: 30.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	steps, err := LoadSteps(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Label != "heat" || steps[0].HeatAdded != 200.0 {
		t.Errorf("unexpected first step %+v", steps[0])
	}
	if steps[1].WorkDone != 30.0 || steps[1].HeatAdded != 0 {
		t.Errorf("unexpected second step %+v", steps[1])
	}
}

func TestLoadStepsErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := LoadSteps(missing)
	if !errors.Is(err, thermo.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing file, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), missing) {
		t.Errorf("expected path in message, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadSteps(path); err == nil {
		t.Error("expected error for empty step list")
	}

	path = filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("label: not a list"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadSteps(path); err == nil {
		t.Error("expected error for non-sequence yaml")
	}
}
