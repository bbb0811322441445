package ai

import "sync"

// KeyPool rotates through a fixed set of upstream API credentials in
// round-robin order to spread quota usage across them. It performs no health
// checking: a key that failed its last call is handed out again on its next
// turn.
type KeyPool struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// NewKeyPool creates a pool over the given credentials. Blank entries are
// dropped. An empty pool is valid to construct; Next on it fails with
// ErrNotConfigured.
func NewKeyPool(keys []string) *KeyPool {
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			kept = append(kept, k)
		}
	}
	return &KeyPool{keys: kept}
}

// Next returns the next credential in rotation, wrapping at the end of the
// list. It returns ErrNotConfigured when no credentials are configured.
func (p *KeyPool) Next() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.keys) == 0 {
		return "", ErrNotConfigured
	}
	key := p.keys[p.cursor%len(p.keys)]
	p.cursor++
	return key, nil
}

// Size returns the number of configured credentials.
func (p *KeyPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}
