package ffmt

import (
	"strings"
	"testing"
)

func sprintf(format string, args ...any) string {
	var b strings.Builder
	Vfctprintf(func(c byte) { b.WriteByte(c) }, format, args...)
	return b.String()
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"S1", "Hello %s, you are %d years old", []any{"Ada", 37}, "Hello Ada, you are 37 years old"},
		{"S2", "%08x", []any{0xabc}, "00000abc"},
		{"S3", "%+.3f", []any{3.14159}, "+3.142"},
		{"S4", "%-10s|%10s", []any{"hi", "hi"}, "hi        |        hi"},
		{"S5", "%.0f %.0f %.0f", []any{1.5, 2.5, 3.5}, "2 2 4"},
		{"S6", "%g %g %g", []any{0.0001, 1.0, 1e7}, "0.0001 1 1e+07"},
		{"S7", "%#b %#o %#x %#X", []any{5, 8, 255, 255}, "0b101 010 0xff 0XFF"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := sprintf(c.format, c.args...)
			if got != c.want {
				t.Errorf("sprintf(%q, %v) = %q, want %q", c.format, c.args, got, c.want)
			}
		})
	}
}

func TestCountConsistency(t *testing.T) {
	formats := []struct {
		format string
		args   []any
	}{
		{"Hello %s, you are %d years old", []any{"Ada", 37}},
		{"%08x", []any{0xabc}},
		{"%+.3f", []any{3.14159}},
		{"%-10s|%10s", []any{"hi", "hi"}},
		{"%g %e %f", []any{1e7, 2.5, 9.99}},
	}
	for _, f := range formats {
		countOnly := Vfctprintf(nil, f.format, f.args...)
		collected := sprintf(f.format, f.args...)
		if countOnly != len(collected) {
			t.Errorf("count mismatch for %q: Vfctprintf(nil,...) = %d, len(collected) = %d", f.format, countOnly, len(collected))
		}
	}
}

func TestLiteralPassthrough(t *testing.T) {
	for _, s := range []string{"", "plain text", "no percent here!\n"} {
		if got := sprintf(s); got != s {
			t.Errorf("sprintf(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestWidthAtLeastContent(t *testing.T) {
	got := sprintf("%20d", 42)
	if len(got) != 20 {
		t.Errorf("len(%q) = %d, want 20", got, len(got))
	}
	got = sprintf("%-20d", 42)
	if len(got) != 20 {
		t.Errorf("len(%q) = %d, want 20", got, len(got))
	}
}

func TestLeftRightDuality(t *testing.T) {
	right := sprintf("%10s", "hi")
	left := sprintf("%-10s", "hi")
	if len(right) != len(left) {
		t.Fatalf("left/right lengths differ: %d vs %d", len(left), len(right))
	}
	if strings.TrimLeft(right, " ") != strings.TrimRight(left, " ") {
		t.Errorf("padding did not mirror: right=%q left=%q", right, left)
	}
}

func TestPrecisionBoundsString(t *testing.T) {
	got := sprintf("%.3s", "hello world")
	if len(got) != 3 {
		t.Errorf("sprintf(%%.3s, ...) = %q, want length 3", got)
	}
	if got != "hel" {
		t.Errorf("sprintf(%%.3s, ...) = %q, want %q", got, "hel")
	}
}

func TestBankersRoundingAtHalf(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1.5, "2"},
		{2.5, "2"},
		{3.5, "4"},
		{0.5, "0"},
	}
	for _, c := range cases {
		if got := sprintf("%.0f", c.v); got != c.want {
			t.Errorf("sprintf(%%.0f, %v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestCustomSpecifierRoundtrip(t *testing.T) {
	ok := RegisterSpecifier('Q', func(st *State) {
		st.PutString("QCONST")
	})
	if !ok {
		t.Fatal("RegisterSpecifier('Q', ...) = false, want true")
	}
	if got := sprintf("%Q"); got != "QCONST" {
		t.Errorf("sprintf(%%Q) = %q, want %q", got, "QCONST")
	}
	if RegisterSpecifier('5', func(st *State) {}) {
		t.Error("RegisterSpecifier('5', ...) = true, want false (digit rejected)")
	}
}

func TestUnknownSpecifierDiagnostic(t *testing.T) {
	got := sprintf("%~")
	want := "%!(unknown specifier='~')"
	if got != want {
		t.Errorf("sprintf(%%~) = %q, want %q", got, want)
	}
}

func TestPercentLiteral(t *testing.T) {
	if got := sprintf("100%%"); got != "100%" {
		t.Errorf("sprintf(100%%%%) = %q, want %q", got, "100%")
	}
}

func TestReentrantVPrintf(t *testing.T) {
	RegisterSpecifier('N', func(st *State) {
		st.VPrintf("[%d]", 7)
	})
	if got := sprintf("x%Ny"); got != "x[7]y" {
		t.Errorf("sprintf(x%%Ny) = %q, want %q", got, "x[7]y")
	}
}

func TestStarWidthAndPrecision(t *testing.T) {
	if got := sprintf("%*d", 6, 42); got != "    42" {
		t.Errorf("sprintf(%%*d, 6, 42) = %q, want %q", got, "    42")
	}
	if got := sprintf("%.*f", 2, 3.14159); got != "3.14" {
		t.Errorf("sprintf(%%.*f, 2, 3.14159) = %q, want %q", got, "3.14")
	}
	if got := sprintf("%*d", -6, 42); got != "42    " {
		t.Errorf("sprintf(%%*d, -6, 42) = %q, want %q", got, "42    ")
	}
}
