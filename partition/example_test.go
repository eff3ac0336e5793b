package partition_test

import (
	"fmt"

	"github.com/katalvlaran/conweave/partition"
)

// ExampleFirstIndex reproduces the reference scenario: four workers own a
// global collection round-robin, the first element belongs to worker 1, and
// a strategy walks the collection in steps of 3. Element i of that walk
// carries phase (1 + 3*i) mod 4, so the phases run 1, 0, 3, 2 and repeat.
func ExampleFirstIndex() {
	const (
		period = 4 // number of workers
		phase0 = 1 // owner of the very first element
		step   = 3 // slicing stride through the collection
	)

	for _, worker := range []int64{1, 0, 3, 2} {
		idx, err := partition.FirstIndex(period, phase0, step, worker)
		if err != nil {
			fmt.Println("worker", worker, "owns nothing:", err)

			continue
		}
		fmt.Printf("worker %d first owns index %d\n", worker, idx)
	}

	// Output:
	// worker 1 first owns index 0
	// worker 0 first owns index 1
	// worker 3 first owns index 2
	// worker 2 first owns index 3
}

// ExampleIndices shows a worker enumerating its full share of a bounded
// collection without any communication.
func ExampleIndices() {
	owned, err := partition.Indices(4, 1, 3, 3, 12)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("worker 3 owns indices", owned)

	// Output:
	// worker 3 owns indices [2 6 10]
}
