package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCommentString(t *testing.T) {
	tests := []struct {
		names []string
		out   string
	}{
		{[]string{}, "# Column contents:"},
		{[]string{"A"}, "# Column contents: A(0)"},
		{[]string{"A", "B"}, "# Column contents: A(0) B(1)"},
		{[]string{"k", "T", "P"}, "# Column contents: k(0) T(1) P(2)"},
	}

	for i, test := range tests {
		out := CommentString(test.names)
		if out != test.out {
			t.Errorf("%d) Expected '%s', got '%s'.", i, test.out, out)
		}
	}
}

func TestFormatCols(t *testing.T) {
	lines, err := FormatCols([][]float64{{1, 10}, {0.5, 2.25}})
	if err != nil {
		t.Fatalf("FormatCols returned error %v.", err)
	}
	want := []string{" 1  0.5", "10 2.25"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d.", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("%d) Expected '%s', got '%s'.", i, want[i], lines[i])
		}
	}

	if _, err := FormatCols([][]float64{{1, 2}, {1}}); err == nil {
		t.Errorf("FormatCols accepted columns of unequal height.")
	}
}

func floatsEq(xs, ys []float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	data := []byte("# k T\n\n1e-3 1.0 7\n0.01\t0.9 8 # comment\n  0.1   0.5 9\n")
	cols, err := Parse(data, []int{0, 1})
	if err != nil {
		t.Fatalf("Parse returned error %v.", err)
	}
	if !floatsEq(cols[0], []float64{1e-3, 0.01, 0.1}) {
		t.Errorf("Column 0 parsed to %v.", cols[0])
	}
	if !floatsEq(cols[1], []float64{1.0, 0.9, 0.5}) {
		t.Errorf("Column 1 parsed to %v.", cols[1])
	}

	cols, err = Parse(data, []int{2})
	if err != nil {
		t.Fatalf("Parse returned error %v.", err)
	}
	if !floatsEq(cols[0], []float64{7, 8, 9}) {
		t.Errorf("Column 2 parsed to %v.", cols[0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		data string
		cols []int
		line int
	}{
		{"1 2\n3\n", []int{0, 1}, 2},
		{"1 2\n3 4 5\n", []int{0, 1}, 2},
		{"# header\n1 2\n3 meow\n", []int{0, 1}, 3},
		{"1 2\n", []int{0, 2}, 1},
	}

	for i, test := range tests {
		_, err := Parse([]byte(test.data), test.cols)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%d) Expected a *ParseError, got %v.", i, err)
			continue
		}
		if pe.Line != test.line {
			t.Errorf("%d) Expected error on line %d, got line %d.",
				i, test.line, pe.Line)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	cols, err := Parse([]byte("# nothing here\n\n"), []int{0, 1})
	if err != nil {
		t.Fatalf("Parse returned error %v.", err)
	}
	if len(cols) != 2 || len(cols[0]) != 0 || len(cols[1]) != 0 {
		t.Errorf("Expected two empty columns, got %v.", cols)
	}
}

func TestReadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tk.dat")
	if err := os.WriteFile(fname, []byte("1 2\n3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cols, err := ReadFile(fname, []int{1, 0})
	if err != nil {
		t.Fatalf("ReadFile returned error %v.", err)
	}
	if !floatsEq(cols[0], []float64{2, 4}) || !floatsEq(cols[1], []float64{1, 3}) {
		t.Errorf("ReadFile parsed to %v.", cols)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.dat"), []int{0})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v.", err)
	}
}
