package main

import (
	"runtime"
	"sync"
	"time"

	"github.com/sagernet/sing-atomic"
	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	Goroutines int
	Duration   time.Duration
	Operation  string
	Padded     bool
}

func main() {
	f := new(flags)

	command := &cobra.Command{
		Use:   "atomic-bench",
		Short: "atomic container contention benchmark",
		Run: func(cmd *cobra.Command, args []string) {
			run(f)
		},
	}

	command.Flags().IntVarP(&f.Goroutines, "goroutines", "g", runtime.GOMAXPROCS(0), "Set the number of worker goroutines.")
	command.Flags().DurationVarP(&f.Duration, "duration", "d", time.Second, "Set the measurement duration.")
	command.Flags().StringVarP(&f.Operation, "operation", "o", "add", "Set the operation to measure. [possible values: add, swap, cas, update, typed]")
	command.Flags().BoolVarP(&f.Padded, "padded", "p", false, "Pad the per goroutine counters to the cache line.")

	err := command.Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

type counter interface {
	Inc() uint64
	Load() uint64
}

func run(f *flags) {
	if f.Goroutines <= 0 {
		logrus.Fatal(E.New("invalid goroutine count: ", f.Goroutines))
	}
	worker, err := newWorker(f.Operation)
	if err != nil {
		logrus.Fatal(err)
	}

	counters := make([]counter, f.Goroutines)
	if f.Padded {
		padded := make([]atomic.PaddedInt[uint64], f.Goroutines)
		for index := range padded {
			counters[index] = &padded[index]
		}
	} else {
		unpadded := make([]atomic.Int[uint64], f.Goroutines)
		for index := range unpadded {
			counters[index] = &unpadded[index]
		}
	}

	stop := make(chan struct{})
	var group sync.WaitGroup
	for g := 0; g < f.Goroutines; g++ {
		group.Add(1)
		go func(count counter) {
			defer group.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				worker()
				count.Inc()
			}
		}(counters[g])
	}

	time.Sleep(f.Duration)
	close(stop)
	group.Wait()

	var total uint64
	for _, count := range counters {
		total += count.Load()
	}
	rate := uint64(float64(total) / f.Duration.Seconds())
	logrus.Info(f.Operation, " x", f.Goroutines, ": ", total, " ops in ", f.Duration, ", ", rate, " ops/s")
}

func newWorker(operation string) (func(), error) {
	switch operation {
	case "add":
		shared := new(atomic.Int[uint64])
		return func() { shared.Add(1) }, nil
	case "swap":
		shared := new(atomic.Value[uint64])
		return func() { shared.Swap(1) }, nil
	case "cas":
		shared := new(atomic.Value[uint64])
		return func() {
			current := shared.Load()
			shared.CompareAndSwap(current, current+1)
		}, nil
	case "update":
		shared := new(atomic.Value[uint64])
		return func() {
			shared.FetchUpdate(func(current uint64) (uint64, bool) {
				return current + 1, true
			})
		}, nil
	case "typed":
		shared := new(atomic.TypedValue[uint64])
		return func() { shared.Store(shared.Load() + 1) }, nil
	default:
		return nil, E.New("unknown operation: ", operation)
	}
}
