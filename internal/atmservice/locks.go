package atmservice

import (
	"sort"
	"sync"
)

// lockTable hands out exclusive access to accounts and the device singleton.
//
// Locks are always taken in the same global order: accounts by ascending id,
// then the device. Callers never take engine locks inside a ledger transaction.
type lockTable struct {
	mu       sync.Mutex
	accounts map[string]*sync.Mutex
	device   sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{accounts: make(map[string]*sync.Mutex)}
}

func (t *lockTable) account(id string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.accounts[id]
	if !ok {
		m = &sync.Mutex{}
		t.accounts[id] = m
	}

	return m
}

// lock acquires the given accounts and, if device is set, the device.
// The returned func releases everything in reverse order.
func (t *lockTable) lock(device bool, accountIDs ...string) (unlock func()) {
	ids := make([]string, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))

	for _, id := range accountIDs {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Strings(ids)

	held := make([]*sync.Mutex, 0, len(ids)+1)

	for _, id := range ids {
		m := t.account(id)
		m.Lock()
		held = append(held, m)
	}

	if device {
		t.device.Lock()
		held = append(held, &t.device)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
