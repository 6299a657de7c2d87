/*package version holds Copter's source version and the semantic version
comparisons used to check config files against it.*/
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the semantic version number of the source code.
const SourceVersion = "0.1.0"

// ErrFormat is returned for version strings which aren't three
// period-separated non-negative integers.
var ErrFormat = errors.New("version string does not take the form of three " +
	"period-separated non-negative numbers")

// Version is a parsed semantic version number.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 if v is earlier than, the same as, or later
// than w.
func (v Version) Compare(w Version) int {
	a := [3]int{v.Major, v.Minor, v.Patch}
	b := [3]int{w.Major, w.Minor, w.Patch}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Parse parses a semantic version number string and returns an error
// wrapping ErrFormat if the string is invalid.
func Parse(s string) (Version, error) {
	toks := strings.Split(s, ".")
	if len(toks) != 3 {
		return Version{}, fmt.Errorf("%w: '%s'", ErrFormat, s)
	}

	var nums [3]int
	for i, tok := range toks {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || strings.HasPrefix(tok, "+") {
			return Version{}, fmt.Errorf("%w: '%s'", ErrFormat, s)
		}
		nums[i] = n
	}

	return Version{nums[0], nums[1], nums[2]}, nil
}

// Current returns SourceVersion parsed.
func Current() Version {
	v, err := Parse(SourceVersion)
	if err != nil {
		panic(err.Error())
	}
	return v
}
