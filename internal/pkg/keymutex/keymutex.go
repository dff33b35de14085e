package keymutex

import "sync"

// KeyMutex hands out one mutex per key. Entries are dropped once no caller
// holds or waits on them.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyMutex {
	return &KeyMutex{locks: map[string]*entry{}}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *KeyMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.locks, key)
			}
			k.mu.Unlock()
		})
	}
}

// Do runs fn while holding key.
func (k *KeyMutex) Do(key string, fn func() error) error {
	unlock := k.Lock(key)
	defer unlock()
	return fn()
}

func (k *KeyMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
