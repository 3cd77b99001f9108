// Package metrics exposes Prometheus collectors for board persistence and
// mutations. Every method is safe to call on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jai_kanban"

// Load origins
const (
	OriginSnapshot = "snapshot"
	OriginSeed     = "seed"
)

// Metrics tracks board statistics
type Metrics struct {
	SnapshotLoads   *prometheus.CounterVec
	SnapshotCorrupt prometheus.Counter
	SnapshotSaves   *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
	Reloads         prometheus.Counter
	ActiveTasks     prometheus.Gauge
	StartTime       time.Time
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is what tests that read values directly want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SnapshotLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_loads_total",
			Help:      "Board loads by origin (snapshot or seed).",
		}, []string{"origin"}),
		SnapshotCorrupt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_corrupt_total",
			Help:      "Snapshots that failed to parse and fell back to the seed.",
		}),
		SnapshotSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_saves_total",
			Help:      "Snapshot writes by result.",
		}, []string{"result"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_mutations_total",
			Help:      "Task mutations by operation and result.",
		}, []string{"op", "result"}),
		Reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_reloads_total",
			Help:      "Board reloads triggered by snapshot changes on disk.",
		}),
		ActiveTasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_tasks",
			Help:      "Tasks currently in the active column.",
		}),
		StartTime: time.Now(),
	}

	if reg != nil {
		reg.MustRegister(m.SnapshotLoads, m.SnapshotCorrupt, m.SnapshotSaves, m.Mutations, m.Reloads, m.ActiveTasks)
	}
	return m
}

// ObserveLoad counts a board load from origin
func (m *Metrics) ObserveLoad(origin string) {
	if m == nil {
		return
	}
	m.SnapshotLoads.WithLabelValues(origin).Inc()
}

// IncCorrupt counts a snapshot that could not be parsed
func (m *Metrics) IncCorrupt() {
	if m == nil {
		return
	}
	m.SnapshotCorrupt.Inc()
}

// ObserveSave counts a snapshot write
func (m *Metrics) ObserveSave(err error) {
	if m == nil {
		return
	}
	m.SnapshotSaves.WithLabelValues(result(err)).Inc()
}

// ObserveMutation counts a task mutation
func (m *Metrics) ObserveMutation(op string, err error) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op, result(err)).Inc()
}

// IncReloads counts a reload from disk
func (m *Metrics) IncReloads() {
	if m == nil {
		return
	}
	m.Reloads.Inc()
}

// SetActiveTasks records the active column size
func (m *Metrics) SetActiveTasks(n int) {
	if m == nil {
		return
	}
	m.ActiveTasks.Set(float64(n))
}

// Snapshot represents a point-in-time view of the process, served by /healthz
type Snapshot struct {
	StartTime time.Time `json:"start_time"`
	Uptime    string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		StartTime: m.StartTime,
		Uptime:    time.Since(m.StartTime).Round(time.Second).String(),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
