package zerocalc_test

import (
	"fmt"

	"github.com/michal1024/zerocalc"
)

func ExampleFunctions() {
	for _, f := range zerocalc.Functions() {
		if f.Arity() == 2 {
			fmt.Println(f.Name(), "of two arguments:", f.Help())
		}
	}

	// Output:
	// log of two arguments: base y logarithm of x
	// root of two arguments: y'th root of x
}

func ExampleEvalString() {
	r, err := zerocalc.EvalString("log(8, 2) + abs(-3)")
	fmt.Println(r, r.Kind(), err)
	r, err = zerocalc.EvalString("log(8, 2")
	fmt.Println(r, err)

	// Output:
	// 6 Float <nil>
	// NaN 8: expected closing bracket
}
