package metrics

import (
	"sync"
	"testing"
)

func TestInMemoryRecorder_Counters(t *testing.T) {
	m := NewInMemory()

	m.IncUserCreated()
	m.IncUserCreated()
	m.IncProductCreated()
	m.IncUsersListed()
	m.IncProductsListed()
	m.IncProductsListed()
	m.IncProductsListed()
	m.IncStoreError()

	snap := m.Snapshot()

	if snap.UsersCreated != 2 {
		t.Errorf("UsersCreated: got %d, want 2", snap.UsersCreated)
	}
	if snap.ProductsCreated != 1 {
		t.Errorf("ProductsCreated: got %d, want 1", snap.ProductsCreated)
	}
	if snap.UsersListed != 1 {
		t.Errorf("UsersListed: got %d, want 1", snap.UsersListed)
	}
	if snap.ProductsListed != 3 {
		t.Errorf("ProductsListed: got %d, want 3", snap.ProductsListed)
	}
	if snap.StoreErrors != 1 {
		t.Errorf("StoreErrors: got %d, want 1", snap.StoreErrors)
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncUserCreated()
			m.IncStoreError()
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.UsersCreated != 50 {
		t.Errorf("UsersCreated: got %d, want 50", snap.UsersCreated)
	}
	if snap.StoreErrors != 50 {
		t.Errorf("StoreErrors: got %d, want 50", snap.StoreErrors)
	}
}

func TestNoopRecorder(t *testing.T) {
	// Must be safe to call without setup.
	n := NewNoop()
	n.IncUserCreated()
	n.IncProductCreated()
	n.IncUsersListed()
	n.IncProductsListed()
	n.IncStoreError()
}
