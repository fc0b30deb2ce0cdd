package bint_test

import (
	"fmt"

	bint "github.com/electronicpanopticon/bint-go"
)

func ExampleBint() {
	b, _ := bint.New(5, 6)

	b = b.Up()
	fmt.Println(b)

	b = b.UpBy(2)
	fmt.Println(b)
	// Output:
	// 0
	// 2
}

func ExampleCell() {
	c, _ := bint.NewCell(0, 3)

	for i := 0; i < 5; i++ {
		fmt.Println(c.Up())
	}
	// Output:
	// 1
	// 2
	// 0
	// 1
	// 2
}

func ExampleDrainCell() {
	d, _ := bint.NewDrainCell(0, 4, 4)

	for {
		val, ok := d.Up()
		if !ok {
			fmt.Println("drained")
			return
		}
		fmt.Println(val)
	}
	// Output:
	// 1
	// 2
	// 3
	// 0
	// drained
}
