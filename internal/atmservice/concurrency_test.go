package atmservice

import (
	"context"
	"sync"
	"testing"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentOppositeTransfers(t *testing.T) {
	svc, mem := newTestService(t, nil)

	const n = 50

	var wg sync.WaitGroup

	errs := make(chan error, 2*n)

	for i := 0; i < n; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, err := svc.Transfer(context.Background(), "ACC001", "2222", dec("10"))
			errs <- err
		}()

		go func() {
			defer wg.Done()

			_, err := svc.Transfer(context.Background(), "ACC002", "1111", dec("10"))
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	requireBalance(t, mem, "ACC001", "5000")
	requireBalance(t, mem, "ACC002", "3000")
	require.Len(t, entries(t, mem, "ACC001"), 2*n)
	require.Len(t, entries(t, mem, "ACC002"), 2*n)
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	svc, mem := newTestService(t, nil)

	const n = 40

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Withdraw(context.Background(), "ACC002", dec("100"))
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
				return
			}

			mu.Lock()
			succeeded++
			mu.Unlock()
		}()
	}

	wg.Wait()

	require.Equal(t, 30, succeeded)
	requireBalance(t, mem, "ACC002", "0")

	// Customer withdrawals move only the aggregate cash.
	d := requireCash(t, svc, "7000")
	require.False(t, inventory.Balanced(&d))
}

func TestConcurrentMixedOperations(t *testing.T) {
	svc, mem := newTestService(t, nil)

	const n = 20

	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(4)

		go func() {
			defer wg.Done()

			_, err := svc.Deposit(context.Background(), "ACC001", dec("5"))
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()

			_, err := svc.Withdraw(context.Background(), "ACC002", dec("5"))
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()

			_, err := svc.Transfer(context.Background(), "ACC002", "1111", dec("1"))
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()

			_, err := svc.AddBanknotes(context.Background(), domain.Banknotes{Notes20: 1})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	requireBalance(t, mem, "ACC001", "5120")
	requireBalance(t, mem, "ACC002", "2880")

	// 10000 + deposits - withdrawals + loaded notes.
	requireCash(t, svc, "10400")
}
