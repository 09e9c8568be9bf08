package comm_test

import (
	"fmt"

	"github.com/cold-young/PaScaL-TDMA/comm"
)

// ExampleRun gathers one value per rank to rank 0 of an in-process
// world of four ranks.
func ExampleRun() {
	const p = 4
	gathered := make([]float64, p)

	err := comm.Run(p, func(c *comm.Comm) error {
		send := []float64{float64(c.Rank() * c.Rank())}
		var recv []float64
		if c.Rank() == 0 {
			recv = gathered
		}
		return c.Igather(send, recv, 0, 1).Wait()
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(gathered)
	// Output:
	// [0 1 4 9]
}
