package proxy_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/proxy"
)

// dialer returns a Dialer over the standard fault table, counting dials
// into the given counter.
func dialer(dials *int) proxy.Dialer {
	return func() (*proxy.ECULink, error) {
		*dials++
		return proxy.NewECULink(map[string]string{
			"V-1": "P0300 random misfire",
			"V-2": "P0420 catalyst efficiency",
		}), nil
	}
}

// TestLazy_DialsAtMostOnce verifies any number of reads costs one dial.
func TestLazy_DialsAtMostOnce(t *testing.T) {
	var dials int
	p, err := proxy.NewLazy(dialer(&dials))
	require.NoError(t, err)

	assert.Zero(t, dials, "construction must not dial")

	for i := 0; i < 5; i++ {
		code, err := p.ReadFault("V-1")
		require.NoError(t, err)
		assert.Equal(t, "P0300 random misfire", code)
	}
	_, err = p.ReadFault("V-2")
	require.NoError(t, err)

	assert.Equal(t, 1, dials)
	assert.Equal(t, 1, p.Dials())
	assert.Equal(t, 4, p.Hits(), "four of the five V-1 reads came from cache")
}

// TestLazy_UnknownVIN verifies misses pass through and are not cached as
// answers.
func TestLazy_UnknownVIN(t *testing.T) {
	var dials int
	p, err := proxy.NewLazy(dialer(&dials))
	require.NoError(t, err)

	_, err = p.ReadFault("V-404")
	assert.ErrorIs(t, err, proxy.ErrUnknownVIN)

	_, err = p.ReadFault("V-404")
	assert.ErrorIs(t, err, proxy.ErrUnknownVIN)
	assert.Zero(t, p.Hits())
}

// TestLazy_DialFailure verifies a failing dial surfaces wrapped and is
// retried on the next read.
func TestLazy_DialFailure(t *testing.T) {
	boom := errors.New("ECU asleep")
	attempts := 0
	p, err := proxy.NewLazy(func() (*proxy.ECULink, error) {
		attempts++
		if attempts == 1 {
			return nil, boom
		}
		return proxy.NewECULink(map[string]string{"V-1": "P0300"}), nil
	})
	require.NoError(t, err)

	_, err = p.ReadFault("V-1")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "dial")

	code, err := p.ReadFault("V-1")
	require.NoError(t, err)
	assert.Equal(t, "P0300", code)
	assert.Equal(t, 1, p.Dials())
}

// TestLazy_Concurrent verifies the once-only dial under contention. Run
// with -race.
func TestLazy_Concurrent(t *testing.T) {
	var dials int
	p, err := proxy.NewLazy(dialer(&dials))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.ReadFault("V-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, p.Dials())
}

// TestGuarded_Credentials verifies the permission wall forwards for the
// right credential and refuses — without touching the subject — for the
// wrong one.
func TestGuarded_Credentials(t *testing.T) {
	var dials int
	lazy, err := proxy.NewLazy(dialer(&dials))
	require.NoError(t, err)

	ok, err := proxy.NewGuarded(lazy, "fleet-secret", "fleet-secret")
	require.NoError(t, err)
	code, err := ok.ReadFault("V-1")
	require.NoError(t, err)
	assert.Equal(t, "P0300 random misfire", code)

	bad, err := proxy.NewGuarded(lazy, "fleet-secret", "guess")
	require.NoError(t, err)
	before := lazy.Dials() + lazy.Hits()
	_, err = bad.ReadFault("V-1")
	assert.ErrorIs(t, err, proxy.ErrAccessDenied)
	assert.Equal(t, before, lazy.Dials()+lazy.Hits(), "a denied read must not reach the subject")
}

// TestConstructors_NilGuards verifies both proxies refuse a missing
// subject.
func TestConstructors_NilGuards(t *testing.T) {
	_, err := proxy.NewLazy(nil)
	assert.ErrorIs(t, err, proxy.ErrNilSubject)

	_, err = proxy.NewGuarded(nil, "a", "a")
	assert.ErrorIs(t, err, proxy.ErrNilSubject)
}
