/*package parse reads ini-style config files made up of a single [Header]
line followed by "name = value" assignments. Variable names are
case-insensitive and "#" starts a comment.*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

/////////////////////
// Conversion Code //
/////////////////////

type varType int
const (
	intVar varType = iota
	floatVar
	stringVar
)

func (v varType) String() string {
	switch v {
	case intVar: return "int"
	case floatVar: return "float"
	case stringVar: return "string"
	}
	panic("Impossible")
}

type conversionFunc func(string) bool

// ConfigVars is the set of variables that may appear in a config file,
// along with pointers to where their values should be written.
type ConfigVars struct {
	name string
	varNames []string
	varTypes []varType
	conversionFuncs []conversionFunc
	set []bool
}

func intConv(ptr *int64) conversionFunc {
	return func(s string) bool {
		i, err := strconv.Atoi(s)
		if err != nil { return false }
		*ptr = int64(i)
		return true
	}
}

func floatConv(ptr *float64) conversionFunc {
	return func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil { return false }
		*ptr = f
		return true
	}
}

func stringConv(ptr *string) conversionFunc {
	return func(s string) bool {
		*ptr = strings.Trim(s, " ")
		return true
	}
}

// NewConfigVars creates an empty variable set for config files with the
// header [name].
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

func (vars *ConfigVars) add(name string, t varType, conv conversionFunc) {
	vars.varNames = append(vars.varNames, strings.ToLower(name))
	vars.conversionFuncs = append(vars.conversionFuncs, conv)
	vars.varTypes = append(vars.varTypes, t)
	vars.set = append(vars.set, false)
}

func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, intConv(ptr))
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, floatConv(ptr))
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, stringConv(ptr))
}

// IsSet returns true if the most recent call to ReadConfig or Parse assigned
// a value to the variable name.
func (vars *ConfigVars) IsSet(name string) bool {
	name = strings.ToLower(name)
	for i := range vars.varNames {
		if vars.varNames[i] == name { return vars.set[i] }
	}
	return false
}

// Missing returns the names of the given variables which were not assigned
// by the most recent call to ReadConfig or Parse.
func (vars *ConfigVars) Missing(names ...string) []string {
	missing := []string{}
	for _, name := range names {
		if !vars.IsSet(name) { missing = append(missing, name) }
	}
	return missing
}

//////////////////
// Parsing Code //
//////////////////

// ReadConfig reads the config file fname into vars. Errors from reading the
// file are returned unchanged; errors in its contents are *SyntaxErrors.
func ReadConfig(fname string, vars *ConfigVars) error {
	bs, err := os.ReadFile(fname)
	if err != nil { return err }
	return Parse(bs, fname, vars)
}

// SyntaxError reports a config file which could not be interpreted.
type SyntaxError struct {
	File string
	Line int // 1-indexed, or 0 if the problem isn't tied to a single line
	Msg  string
}

func (e *SyntaxError) Error() string { return e.Msg }

// Parse interprets the contents of a config file. fname is only used in
// error messages.
func Parse(bs []byte, fname string, vars *ConfigVars) error {
	for i := range vars.set { vars.set[i] = false }

	text := strings.ReplaceAll(string(bs), "\r", "")
	text = strings.ReplaceAll(text, "\t", " ")
	lines := strings.Split(text, "\n")
	lines, lineNums := removeComments(lines)
	for i := range lineNums { lineNums[i] ++ }

	if len(lines) == 0 ||
		strings.ToLower(lines[0]) != strings.ToLower(fmt.Sprintf("[%s]", vars.name)) {
		return &SyntaxError{fname, 0, fmt.Sprintf(
			"I expected the config file %s to have the header " +
			"[%s] at the top, but didn't find it.", fname, vars.name,
		)}
	}
	lines = lines[1:]

	names, vals, errLine := associationList(lines)
	if errLine !=  -1 {
		return &SyntaxError{fname, lineNums[errLine+1], fmt.Sprintf(
			"I could not parse line %d of the config file %s because it " +
			"did not take the form of a variable assignment.",
			lineNums[errLine+1], fname,
		)}
	}

	if errLine = checkValidNames(names, vars); errLine != -1 {
		return &SyntaxError{fname, lineNums[errLine+1], fmt.Sprintf(
			"Line %d of the config file %s assigns a value to the " +
			"variable '%s', but config files of type %s don't have that " +
			"variable.", lineNums[errLine+1], fname, names[errLine], vars.name,
		)}
	}

	if errLine1, errLine2 := checkDuplicateNames(names); errLine1 != -1 {
		return &SyntaxError{fname, lineNums[errLine2+1], fmt.Sprintf(
			"Lines %d and %d of the config file %s both assign a value to " +
			"the variable '%s'.", lineNums[errLine1+1], lineNums[errLine2+1],
			fname, names[errLine1],
		)}
	}

	if errLine = convertAssoc(names, vals, vars); errLine != -1 {
		j := indexOf(vars, names[errLine])
		typeName := vars.varTypes[j].String()
		a := "a"
		if typeName[0] == 'i' { a = "an" }
		return &SyntaxError{fname, lineNums[errLine+1], fmt.Sprintf(
			"I could not parse line %d of the config file %s because '%s' " +
			"expects values of type %s and '%s' cannnot be converted to " +
			"%s %s.", lineNums[errLine+1], fname, vars.varNames[j], typeName,
			vals[errLine], a, typeName,
		)}
	}

	return nil
}

func removeComments(lines []string) ([]string, []int) {
	tmp := make([]string, len(lines))
	copy(tmp, lines)
	lines = tmp

	for i := range lines {
		comment := strings.Index(lines[i], "#")
		if comment == -1 { continue }
		lines[i] = lines[i][:comment]
	}

	out, lineNums := []string{}, []int{}
	for i := range lines {
		line := strings.Trim(lines[i], " ")
		if len(line) == 0 { continue }
		out = append(out, line)
		lineNums = append(lineNums, i)
	}

	return out, lineNums
}

func associationList(lines []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range lines {
		eq := strings.Index(lines[i], "=")
		if eq == -1 { return nil, nil, i }
		name := lines[i][:eq]
		val := ""
		if len(lines[i]) - 1 > eq { val = lines[i][eq+1:] }
		names = append(names, strings.ToLower(strings.Trim(name, " ")))
		if len(names[len(names) - 1]) == 0 { return nil, nil, i }
		vals = append(vals, strings.Trim(val, " "))
	}
	return names, vals, -1
}

func indexOf(vars *ConfigVars, name string) int {
	for j := range vars.varNames {
		if vars.varNames[j] == name { return j }
	}
	return -1
}

func checkValidNames(names []string, vars *ConfigVars) int {
	for i := range names {
		if indexOf(vars, names[i]) == -1 { return i }
	}
	return -1
}

func checkDuplicateNames(names []string) (int, int) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] { return i, j }
		}
	}
	return -1, -1
}

func convertAssoc(names, vals []string, vars *ConfigVars) int {
	for i := range names {
		j := indexOf(vars, names[i])
		ok := vars.conversionFuncs[j](vals[i])
		if !ok { return i }
		vars.set[j] = true
	}
	return -1
}
