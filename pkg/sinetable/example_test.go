package sinetable_test

import (
	"fmt"

	"github.com/tardyp/esp-am/pkg/sinetable"
)

func ExampleGenerate() {
	fmt.Println(sinetable.Generate(8, 100))
	// Output:
	// [100 170 200 170 100 29 0 29]
}

func ExampleTable_Lookup() {
	table := sinetable.New(sinetable.DefaultSize, sinetable.DefaultScale)
	fmt.Println(table.Lookup(0), table.Lookup(0x4000), table.Lookup(0xC000))
	// Output:
	// 32767 65534 0
}
