package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ============================================================================
// Basic Metrics Tests
// ============================================================================

func TestNew(t *testing.T) {
	m := New(nil)

	if m == nil {
		t.Fatal("Expected New to return non-nil")
	}
	if got := testutil.ToFloat64(m.SnapshotCorrupt); got != 0 {
		t.Errorf("Expected SnapshotCorrupt to be 0, got %v", got)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveLoad(OriginSeed)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Failed to gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "jai_kanban_board_loads_total" {
			found = true
		}
	}
	if !found {
		t.Error("Expected jai_kanban_board_loads_total to be registered")
	}
}

func TestObserveLoad(t *testing.T) {
	m := New(nil)

	m.ObserveLoad(OriginSnapshot)
	m.ObserveLoad(OriginSnapshot)
	m.ObserveLoad(OriginSeed)

	if got := testutil.ToFloat64(m.SnapshotLoads.WithLabelValues(OriginSnapshot)); got != 2 {
		t.Errorf("Expected 2 snapshot loads, got %v", got)
	}
	if got := testutil.ToFloat64(m.SnapshotLoads.WithLabelValues(OriginSeed)); got != 1 {
		t.Errorf("Expected 1 seed load, got %v", got)
	}
}

func TestObserveSaveAndMutation(t *testing.T) {
	m := New(nil)
	boom := errors.New("boom")

	m.ObserveSave(nil)
	m.ObserveSave(boom)
	m.ObserveMutation("move", nil)
	m.ObserveMutation("move", boom)
	m.ObserveMutation("move", boom)

	if got := testutil.ToFloat64(m.SnapshotSaves.WithLabelValues("error")); got != 1 {
		t.Errorf("Expected 1 failed save, got %v", got)
	}
	if got := testutil.ToFloat64(m.Mutations.WithLabelValues("move", "error")); got != 2 {
		t.Errorf("Expected 2 failed moves, got %v", got)
	}
}

func TestSetActiveTasks(t *testing.T) {
	m := New(nil)
	m.SetActiveTasks(3)
	if got := testutil.ToFloat64(m.ActiveTasks); got != 3 {
		t.Errorf("Expected ActiveTasks to be 3, got %v", got)
	}
}

// ============================================================================
// Nil and Concurrency Tests
// ============================================================================

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveLoad(OriginSeed)
	m.IncCorrupt()
	m.ObserveSave(nil)
	m.ObserveMutation("update", nil)
	m.IncReloads()
	m.SetActiveTasks(1)
	if snap := m.GetSnapshot(); !snap.StartTime.IsZero() {
		t.Errorf("Expected zero snapshot from nil metrics, got %+v", snap)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncReloads()
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(m.Reloads); got != 50 {
		t.Errorf("Expected 50 reloads, got %v", got)
	}
}
