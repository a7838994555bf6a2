package locker

import "sync"

// KeyedMutex serializes work per key. Cart mutations take the lock for
// their user so two concurrent adds cannot both read a stale aggregate
// and write an inconsistent total.
type KeyedMutex struct {
	locks sync.Map
}

func New() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock blocks until the key is free and returns the unlock func.
func (k *KeyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
