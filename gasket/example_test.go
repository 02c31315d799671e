package gasket_test

import (
	"fmt"

	"github.com/katalvlaran/gasket/exact"
	"github.com/katalvlaran/gasket/gasket"
)

// ExampleGenerate builds the classic (-1, 2, 2, 3) gasket one generation
// deep. The enclosing circle has curvature -1; every later curvature in
// this packing is a positive integer.
func ExampleGenerate() {
	seeds := []exact.Number{exact.Int(-1), exact.Int(2), exact.Int(2), exact.Int(3)}
	res, err := gasket.Generate(seeds, 1)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}
	for _, c := range res.Circles {
		fmt.Printf("gen %d  k=%s  center=%s\n", c.Gen, c.K, c.Z)
	}
	// Output:
	// gen 0  k=-1  center=(0, 0)
	// gen 0  k=2  center=(1/2, 0)
	// gen 0  k=2  center=(-1/2, 0)
	// gen 0  k=3  center=(0, 2/3)
	// gen 1  k=3  center=(0, -2/3)
	// gen 1  k=6  center=(1/2, 2/3)
	// gen 1  k=6  center=(-1/2, 2/3)
	// gen 1  k=15  center=(0, 4/15)
}

// ExampleRun_Next pulls circles in batches, which keeps deep runs
// responsive without materializing the whole packing first.
func ExampleRun_Next() {
	seeds := []exact.Number{exact.Int(-1), exact.Int(2), exact.Int(2), exact.Int(3)}
	run, err := gasket.NewRun(seeds, 2)
	if err != nil {
		fmt.Println("new run:", err)
		return
	}
	total := 0
	for !run.Done() {
		batch, err := run.Next(8)
		if err != nil {
			fmt.Println("next:", err)
			return
		}
		if len(batch) == 0 {
			break
		}
		total += len(batch)
	}
	fmt.Println("circles:", total)
	// Output:
	// circles: 20
}

// ExampleEnumerateRootQuadruples lists every primitive integral seed
// quadruple whose enclosing curvature is at most 3.
func ExampleEnumerateRootQuadruples() {
	for _, q := range gasket.EnumerateRootQuadruples(3) {
		fmt.Println(q)
	}
	// Output:
	// [-1 2 2 3]
	// [-2 3 6 7]
	// [-3 4 12 13]
	// [-3 5 8 8]
}
