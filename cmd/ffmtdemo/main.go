// Command ffmtdemo drives the ffmt engine over a small table of
// format strings, printing each rendered result alongside the byte
// count Vfctprintf reports when given a nil sink, and registers one
// custom specifier to show RegisterSpecifier in action.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ffmt-go/ffmt"
)

type scenario struct {
	name   string
	format string
	args   []any
}

var scenarios = []scenario{
	{"S1", "Hello %s, you are %d years old", []any{"Ada", 37}},
	{"S2", "%08x", []any{0xabc}},
	{"S3", "%+.3f", []any{3.14159}},
	{"S4", "%-10s|%10s", []any{"hi", "hi"}},
	{"S5", "%.0f %.0f %.0f", []any{1.5, 2.5, 3.5}},
	{"S6", "%g %g %g", []any{0.0001, 1.0, 1e7}},
	{"S7", "%#b %#o %#x %#X", []any{5, 8, 255, 255}},
}

func main() {
	quiet := flag.Bool("quiet", false, "suppress the scenario table, only exercise the custom specifier")
	flag.Parse()

	ffmt.RegisterSpecifier('V', func(st *ffmt.State) {
		st.PutString("ffmtdemo")
	})

	if !*quiet {
		for _, sc := range scenarios {
			count := ffmt.Vfctprintf(nil, sc.format, sc.args...)
			rendered := ffmt.Vfctprintf(func(b byte) { os.Stdout.Write([]byte{b}) }, sc.format, sc.args...)
			if rendered != count {
				fmt.Fprintf(os.Stderr, "%s: count mismatch: nil-sink=%d rendered=%d\n", sc.name, count, rendered)
			}
			fmt.Printf("  (%s, %d bytes)\n", sc.name, count)
		}
	}

	fmt.Println()
	ffmt.Vfctprintf(func(b byte) { os.Stdout.Write([]byte{b}) }, "custom specifier: %V\n")
}
