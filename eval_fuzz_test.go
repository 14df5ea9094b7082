package zerocalc_test

import (
	"testing"

	"github.com/michal1024/zerocalc"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y = x ^ 127")
	f.Add("1/0 + 5")
	f.Add("root(-8, 3)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := zerocalc.EvalString(s, zerocalc.SetVar("x", zerocalc.Int(2)))
		if err != nil && !r.IsNaN() {
			t.Fatalf("%q: result %v with error %v", s, r, err)
		}
		if r.String() == "" {
			t.Fatalf("%q: empty result text", s)
		}
	})
}
