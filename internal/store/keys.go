package store

// Keys names the storage entries for one namespace.
type Keys struct {
	Progress string
	Vocab    string
	Queue    string
	Outside  string
}

// KeysFor returns the versioned storage keys under namespace,
// e.g. "kupu-progress-v1".
func KeysFor(namespace string) Keys {
	return Keys{
		Progress: namespace + "-progress-v1",
		Vocab:    namespace + "-vocab-v1",
		Queue:    namespace + "-queue-v1",
		Outside:  namespace + "-outside-minutes",
	}
}

// All returns every key in a stable order.
func (k Keys) All() []string {
	return []string{k.Progress, k.Vocab, k.Queue, k.Outside}
}
