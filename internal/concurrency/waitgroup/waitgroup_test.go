package waitgroup

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_ReportsConfiguredLimit(t *testing.T) {
	wg := New(5)
	assert.Equal(t, 5, wg.Limit())
}

func TestNew_NonPositiveLimitDefaultsToOne(t *testing.T) {
	wg := New(0)
	assert.Equal(t, 1, wg.Limit())
}

func TestLimitWaitGroup_AllGoroutinesComplete(t *testing.T) {
	wg := New(3)
	var counter int64
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 20, counter)
}

func TestLimitWaitGroup_NeverExceedsConcurrencyLimit(t *testing.T) {
	const limit = 3
	wg := New(limit)

	var current, maxObserved int64
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := atomic.AddInt64(&current, 1)
			mu.Lock()
			if n > maxObserved {
				maxObserved = n
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&current, -1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxObserved, int64(limit))
}
