package atomic_test

import (
	"sync"
	"testing"
	"time"

	"github.com/sagernet/sing-atomic"

	"github.com/stretchr/testify/require"
)

func TestConcurrent(t *testing.T) {
	const goroutines = 8

	t.Run("no torn access", func(t *testing.T) {
		t.Parallel()
		var value atomic.Value[pair]
		value.Store(pair{0, ^uint32(0)})
		stop := make(chan struct{})
		var torn atomic.Int[int64]
		var group sync.WaitGroup

		for writer := 0; writer < goroutines/2; writer++ {
			group.Add(1)
			go func(seed uint32) {
				defer group.Done()
				for i := seed; ; i += 7 {
					select {
					case <-stop:
						return
					default:
					}
					value.Store(pair{i, ^i})
				}
			}(uint32(writer) * 1000003)
		}
		for reader := 0; reader < goroutines/2; reader++ {
			group.Add(1)
			go func() {
				defer group.Done()
				for {
					select {
					case <-stop:
						return
					default:
					}
					loaded := value.Load()
					if loaded[1] != ^loaded[0] {
						torn.Inc()
					}
				}
			}()
		}

		time.Sleep(200 * time.Millisecond)
		close(stop)
		group.Wait()
		require.Zero(t, torn.Load())
	})

	t.Run("add total", func(t *testing.T) {
		t.Parallel()
		const perGoroutine = 10000
		var wide atomic.Int[uint64]
		var narrow atomic.Int[uint8]
		var group sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			group.Add(1)
			go func() {
				defer group.Done()
				for i := 0; i < perGoroutine; i++ {
					wide.Add(1)
					narrow.Add(1)
				}
			}()
		}
		group.Wait()

		require.Equal(t, uint64(goroutines*perGoroutine), wide.Load())
		require.Equal(t, uint8(goroutines*perGoroutine%256), narrow.Load())
	})

	t.Run("float add total", func(t *testing.T) {
		t.Parallel()
		const perGoroutine = 5000
		var total atomic.Float[float64]
		var group sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			group.Add(1)
			go func() {
				defer group.Done()
				for i := 0; i < perGoroutine; i++ {
					total.Add(1)
				}
			}()
		}
		group.Wait()

		require.Equal(t, float64(goroutines*perGoroutine), total.Load())
	})

	t.Run("fetch update tickets", func(t *testing.T) {
		t.Parallel()
		const limit = 1000
		var tickets atomic.Value[uint32]
		taken := make([]uint32, goroutines)
		var group sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			group.Add(1)
			go func(index int) {
				defer group.Done()
				for {
					_, updated := tickets.FetchUpdate(func(current uint32) (uint32, bool) {
						if current >= limit {
							return 0, false
						}
						return current + 1, true
					})
					if !updated {
						return
					}
					taken[index]++
				}
			}(g)
		}
		group.Wait()

		var total uint32
		for _, count := range taken {
			total += count
		}
		require.Equal(t, uint32(limit), total)
		require.Equal(t, uint32(limit), tickets.Load())
	})

	t.Run("compare exchange uniqueness", func(t *testing.T) {
		t.Parallel()
		const limit = 500
		var next atomic.Value[int32]
		claims := make([][]int32, goroutines)
		var group sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			group.Add(1)
			go func(index int) {
				defer group.Done()
				for {
					current := next.Load()
					if current >= limit {
						return
					}
					if _, swapped := next.CompareExchange(current, current+1); swapped {
						claims[index] = append(claims[index], current)
					}
				}
			}(g)
		}
		group.Wait()

		seen := make(map[int32]int)
		for _, claimed := range claims {
			for _, id := range claimed {
				seen[id]++
			}
		}
		require.Len(t, seen, limit)
		for id, count := range seen {
			require.Equal(t, 1, count, "id %d claimed %d times", id, count)
		}
	})

	t.Run("toggle parity", func(t *testing.T) {
		t.Parallel()
		const perGoroutine = 1000
		var flag atomic.Bool
		var group sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			group.Add(1)
			go func() {
				defer group.Done()
				for i := 0; i < perGoroutine; i++ {
					flag.Toggle()
				}
			}()
		}
		group.Wait()

		require.False(t, flag.Load())
	})
}
