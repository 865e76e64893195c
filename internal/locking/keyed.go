package locking

import "sync"

// KeyedMutex serializes operations that share a key while leaving operations
// on different keys free to run concurrently. The bidding service and the
// settlement engine share one instance keyed by product ID, so racing bids
// and a racing sale on the same product take turns.
type KeyedMutex struct {
	locks sync.Map // key: string -> value: *sync.Mutex
}

// NewKeyedMutex creates an empty keyed mutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key and returns the matching unlock function
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
