package paths_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/paths"
)

// ExampleBetween lists the row-first and column-first routes from 2 to 9.
func ExampleBetween() {
	ps, err := paths.Between(keypad.Numeric(), '2', '9')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ps)
	// Output:
	// [^^>A >^^A]
}

// ExampleBetween_gap shows a route pruned because it would cross the gap:
// going left first from A would pass the empty corner of the numeric keypad.
func ExampleBetween_gap() {
	ps, _ := paths.Between(keypad.Numeric(), 'A', '1')
	fmt.Println(ps)
	// Output:
	// [^<<A]
}
