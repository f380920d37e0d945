// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for a backend process.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	IncUserCreated()
	IncProductCreated()
	IncUsersListed()
	IncProductsListed()
	IncStoreError()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
