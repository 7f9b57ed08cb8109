package atomic_test

import (
	"fmt"

	"github.com/sagernet/sing-atomic"
)

func ExampleValue() {
	day := atomic.NewValue(monday)
	day.CompareAndSwap(monday, tuesday)
	fmt.Println(day.Load())
	// Output: 2
}

func ExampleValue_FetchUpdate() {
	counter := atomic.NewValue[uint8](250)
	for i := 0; i < 10; i++ {
		counter.FetchUpdate(func(current uint8) (uint8, bool) {
			if current == 255 {
				return 0, false
			}
			return current + 1, true
		})
	}
	fmt.Println(counter.Load())
	// Output: 255
}

func ExampleInt() {
	var requests atomic.Int[uint64]
	requests.Add(10)
	requests.Inc()
	fmt.Println(requests.Load())
	// Output: 11
}

func ExampleBool_Toggle() {
	flag := atomic.NewBool(true)
	fmt.Println(flag.Toggle(), flag.Load())
	// Output: true false
}

func ExampleNewPacked() {
	position := atomic.NewPacked(point{X: 2, Y: 3}, packPoint, unpackPoint)
	position.Store(point{X: -1, Y: 1})
	fmt.Println(position.Load().X, position.Load().Y)
	// Output: -1 1
}
