package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated    uint64
	ProductsCreated uint64
	UsersListed     uint64
	ProductsListed  uint64
	StoreErrors     uint64
}

// InMemoryRecorder stores counters in process memory.
// It backs the /metrics endpoint and the service tests.
type InMemoryRecorder struct {
	usersCreated    atomic.Uint64
	productsCreated atomic.Uint64
	usersListed     atomic.Uint64
	productsListed  atomic.Uint64
	storeErrors     atomic.Uint64
}

// NewInMemory returns a Recorder backed by atomic counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:    m.usersCreated.Load(),
		ProductsCreated: m.productsCreated.Load(),
		UsersListed:     m.usersListed.Load(),
		ProductsListed:  m.productsListed.Load(),
		StoreErrors:     m.storeErrors.Load(),
	}
}

func (m *InMemoryRecorder) IncUserCreated()    { m.usersCreated.Add(1) }
func (m *InMemoryRecorder) IncProductCreated() { m.productsCreated.Add(1) }
func (m *InMemoryRecorder) IncUsersListed()    { m.usersListed.Add(1) }
func (m *InMemoryRecorder) IncProductsListed() { m.productsListed.Add(1) }
func (m *InMemoryRecorder) IncStoreError()     { m.storeErrors.Add(1) }
