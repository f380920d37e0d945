package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all events.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncUserCreated()    {}
func (n *NoopRecorder) IncProductCreated() {}
func (n *NoopRecorder) IncUsersListed()    {}
func (n *NoopRecorder) IncProductsListed() {}
func (n *NoopRecorder) IncStoreError()     {}
