package parse

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestIntConv(t *testing.T) {
	var x int64
	ok := intConv(&x)("41891")
	if !ok {
		t.Errorf("intConv unsuccessful on valid input.")
	}
	if x != 41891 {
		t.Errorf("intConv did not write input to pointer.")
	}
	ok = intConv(&x)("meow")
	if ok {
		t.Errorf("intConv successful on invalid input.")
	}
}

func TestFloatConv(t *testing.T) {
	var x float64
	ok := floatConv(&x)("0.0456")
	if !ok {
		t.Errorf("floatConv unsuccessful on valid input.")
	}
	if x != 0.0456 {
		t.Errorf("floatConv did not write input to pointer.")
	}
	ok = floatConv(&x)("meow")
	if ok {
		t.Errorf("floatConv successful on invalid input.")
	}
}

func TestStringConv(t *testing.T) {
	var x string
	ok := stringConv(&x)("  tk.dat")
	if !ok {
		t.Errorf("stringConv unsuccessful on valid input.")
	}
	if x != "tk.dat" {
		t.Errorf("stringConv did not write input to pointer.")
	}
}

func stringsEq(xs, ys []string) bool {
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

func intsEq(xs, ys []int) bool {
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

func TestRemoveComments(t *testing.T) {
	table := []struct {
		in, out  []string
		lineNums []int
	}{
		{[]string{}, []string{}, []int{}},
		{[]string{"meow"}, []string{"meow"}, []int{0}},
		{[]string{"#meow"}, []string{}, []int{}},
		{[]string{"meow", " # comment", "", "   mew "},
			[]string{"meow", "mew"}, []int{0, 3}},
	}

	for i := range table {
		res, lineNums := removeComments(table[i].in)
		if !stringsEq(table[i].out, res) {
			t.Errorf("%d) Called removeComments(%v), got %v",
				i+1, table[i].in, res)
		}
		if !intsEq(table[i].lineNums, lineNums) {
			t.Errorf("%d) Called removeComments(%v), got %v linenNums",
				i+1, table[i].in, lineNums)
		}
	}
}

func TestAssociationList(t *testing.T) {
	table := []struct {
		lines       []string
		names, vals []string
		errLine     int
	}{
		{[]string{"a=b"}, []string{"a"}, []string{"b"}, -1},
		{[]string{"a"}, []string{}, []string{}, 0},
		{[]string{"=b"}, []string{}, []string{}, 0},
		{[]string{"a=b", "c=", " Omega_M = "},
			[]string{"a", "c", "omega_m"},
			[]string{"b", "", ""}, -1},
	}

	for i := range table {
		names, vals, errLine := associationList(table[i].lines)
		if errLine != table[i].errLine {
			t.Errorf("%d) Expected errLine = %d, got %d",
				i+1, table[i].errLine, errLine)
		}
		if errLine != -1 {
			continue
		}

		if !stringsEq(names, table[i].names) {
			t.Errorf("%d) Expected names = %v, got %v.",
				i+1, table[i].names, names)
		}
		if !stringsEq(vals, table[i].vals) {
			t.Errorf("%d) Expected vals = %v, got %v.",
				i+1, table[i].vals, vals)
		}
	}
}

func TestCheckDuplicateNames(t *testing.T) {
	table := []struct {
		names []string
		i, j  int
	}{
		{[]string{"a", "b", "c"}, -1, -1},
		{[]string{"a", "b", "b", "c", "c"}, 1, 2},
	}

	for k := range table {
		i, j := checkDuplicateNames(table[k].names)
		if i != table[k].i || j != table[k].j {
			t.Errorf("%d) expected (i, j) = (%d, %d) but got (%d, %d)",
				k+1, table[k].i, table[k].j, i, j)
		}
	}
}

func TestCheckValidNames(t *testing.T) {
	table := []struct {
		names, vars []string
		i           int
	}{
		{[]string{"a", "b", "c"}, []string{"a", "b", "c", "d"}, -1},
		{[]string{"a", "b", "c"}, []string{"a", "b", "d"}, 2},
		{[]string{"a", "a", "a"}, []string{"a", "b", "c", "d"}, -1},
	}

	for j := range table {
		vars := &ConfigVars{varNames: table[j].vars}
		i := checkValidNames(table[j].names, vars)
		if i != table[j].i {
			t.Errorf("%d) expected i = %d, but got %d", j+1, table[j].i, i)
		}
	}
}

func TestConvertAssoc(t *testing.T) {
	table := []struct {
		names, vals []string
		i           int
		xVal        int64
	}{
		{[]string{"a"}, []string{"3"}, -1, 3},
		{[]string{"a", "a"}, []string{"3", "meow"}, 1, 3},
	}

	config := struct{ x int64 }{}
	vars := NewConfigVars("meow")
	vars.Int(&config.x, "a", 0)

	for j := range table {
		config.x = 0
		i := convertAssoc(table[j].names, table[j].vals, vars)
		if i != table[j].i {
			t.Errorf("%d) expected errLine = %d, but got %d",
				j+1, table[j].i, i)
		}
		if i != -1 {
			continue
		}
		if config.x != table[j].xVal {
			t.Errorf("%d) expected config.x = %d, got %d",
				j+1, table[j].xVal, config.x)
		}
	}
}

type testConfig struct {
	h, omegaM float64
	kcol      int64
	tkfile    string
	version   string
}

func makeTestConfig() (*testConfig, *ConfigVars) {
	config := &testConfig{}
	vars := NewConfigVars("Cosmology")
	vars.Float(&config.h, "h", 0)
	vars.Float(&config.omegaM, "Omega_m", 0)
	vars.Int(&config.kcol, "kcol", 1)
	vars.String(&config.tkfile, "tkfile", "")
	vars.String(&config.version, "Version", "0.1.0")
	return config, vars
}

const validConfig = `# A test cosmology.
[cosmology]
h = 0.704
OMEGA_M	= 0.272 # tabs are allowed
tkfile = camb_tk.dat

Version = 0.2.0
`

func TestValidConfig(t *testing.T) {
	config, vars := makeTestConfig()
	if err := Parse([]byte(validConfig), "test.ini", vars); err != nil {
		t.Fatalf("Expected successful read of config file, but got "+
			"error:\n %s", err.Error())
	}

	if math.Abs(config.h-0.704) > 1e-12 {
		t.Errorf("Expected h = %g, but got %g", 0.704, config.h)
	}
	if math.Abs(config.omegaM-0.272) > 1e-12 {
		t.Errorf("Expected Omega_m = %g, but got %g", 0.272, config.omegaM)
	}
	if config.kcol != 1 {
		t.Errorf("Expected default kcol = 1, but got %d", config.kcol)
	}
	if config.tkfile != "camb_tk.dat" {
		t.Errorf("Expected tkfile = camb_tk.dat, but got %s", config.tkfile)
	}
	if config.version != "0.2.0" {
		t.Errorf("Expected Version = 0.2.0, but got %s", config.version)
	}

	if !vars.IsSet("h") || !vars.IsSet("omega_M") {
		t.Errorf("IsSet did not report assigned variables.")
	}
	if vars.IsSet("kcol") {
		t.Errorf("IsSet reported an unassigned variable.")
	}
	if missing := vars.Missing("h", "kcol", "tkfile"); !stringsEq(missing, []string{"kcol"}) {
		t.Errorf("Expected Missing = [kcol], got %v", missing)
	}
}

func TestInvalidConfig(t *testing.T) {
	table := []struct {
		text string
		line int
	}{
		{"", 0},
		{"[Snapshot]\nh = 1\n", 0},
		{"[Cosmology]\nh = 1\nmeow\n", 3},
		{"[Cosmology]\n = 1\n", 2},
		{"[Cosmology]\nh = 1\n\nh = 2\n", 4},
		{"[Cosmology]\nw0 = -1\n", 2},
		{"[Cosmology]\nh = 0.7\nkcol = two\n", 3},
	}

	for i := range table {
		_, vars := makeTestConfig()
		err := Parse([]byte(table[i].text), "test.ini", vars)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%d) Expected a *SyntaxError, got %v", i+1, err)
			continue
		}
		if se.Line != table[i].line {
			t.Errorf("%d) Expected error on line %d, got line %d (%s)",
				i+1, table[i].line, se.Line, se.Msg)
		}
		if testing.Verbose() {
			t.Logf("%d) %s", i+1, se.Msg)
		}
	}
}

func TestReadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cosmo.ini")
	if err := os.WriteFile(fname, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	config, vars := makeTestConfig()
	if err := ReadConfig(fname, vars); err != nil {
		t.Fatalf("ReadConfig returned error %v", err)
	}
	if config.tkfile != "camb_tk.dat" {
		t.Errorf("Expected tkfile = camb_tk.dat, but got %s", config.tkfile)
	}

	err := ReadConfig(filepath.Join(t.TempDir(), "missing.ini"), vars)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
