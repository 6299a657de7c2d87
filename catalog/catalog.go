/*package catalog reads and writes whitespace-separated columns of numbers,
such as the transfer function tables written by CAMB and CMBFast.*/
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CommentString returns a header line naming the given columns, e.g.
// "# Column contents: k(0) T(1) P(2)".
func CommentString(names []string) string {
	tokens := []string{"# Column contents:"}
	for i, name := range names {
		tokens = append(tokens, fmt.Sprintf("%s(%d)", name, i))
	}
	return strings.Join(tokens, " ")
}

// FormatCols formats a set of equal-height columns as right-aligned text
// lines. Columns of unequal height are an error.
func FormatCols(cols [][]float64) ([]string, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return []string{}, nil
	}

	height := len(cols[0])
	formatted := make([][]string, len(cols))
	for i := range cols {
		if len(cols[i]) != height {
			return nil, fmt.Errorf(
				"Column %d has height %d, but column 0 has height %d.",
				i, len(cols[i]), height,
			)
		}
		formatted[i] = formatFloatCol(cols[i])
	}

	lines := make([]string, height)
	tokens := make([]string, len(cols))
	for i := 0; i < height; i++ {
		for j := range formatted {
			tokens[j] = formatted[j][i]
		}
		lines[i] = strings.Join(tokens, " ")
	}

	return lines, nil
}

// WriteCols writes a CommentString header followed by the formatted columns.
func WriteCols(w io.Writer, names []string, cols [][]float64) error {
	lines, err := FormatCols(cols)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, CommentString(names)); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatFloatCol(col []float64) []string {
	width := 0
	for i := range col {
		n := len(fmt.Sprintf("%.6g", col[i]))
		if n > width {
			width = n
		}
	}

	out := make([]string, len(col))
	for i := range col {
		out[i] = fmt.Sprintf("%*.6g", width, col[i])
	}

	return out
}

// ParseError reports a malformed line of a column file. Line is the 1-indexed
// line number within the file, counting comments and blank lines.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse parses the specified 0-indexed columns in a byte block. Every non-empty
// line must have the same number of columns.
func Parse(data []byte, colIdxs []int) ([][]float64, error) {
	data = bytes.ReplaceAll(data, []byte{'\t'}, []byte{' '})
	data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{' '})
	lines, nComm := split(data, '\n', '#')
	lineNums := make([]int, len(lines))
	for i := range lineNums { lineNums[i] = i + 1 }
	lines = uncomment(lines, '#', nComm)
	lines, lineNums = trim(lines, lineNums, ' ')
	return parse(lines, lineNums, ' ', colIdxs)
}

// ReadFile reads the specified 0-indexed columns from the file fname. The
// file is closed before ReadFile returns.
func ReadFile(fname string, colIdxs []int) ([][]float64, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Parse(data, colIdxs)
}

// split splits a byte splice at each separating flag. Faster than
// bytes.Split() because slicing is used instead of allocations and because
// only one separator is used.
//
// Some of the calculations associated with uncommenting are done here for a
// slight performance boost.
func split(data []byte, sep, comm byte) (lines [][]byte, nComm int) {
	n, nComm := 0, 0
	for _, c := range data {
		if c == sep { n++ }
		if c == comm { nComm++ }
	}

	tokens := make([][]byte, n+1)

	idx := 0
	for j := 0; j < n; j++ {
		data = data[idx:]
		idx = bytes.IndexByte(data, sep)
		tokens[j] = data[:idx]
		idx++
	}
	tokens[n] = data[idx:]

	return tokens, nComm
}

// uncomment removes file comments  in the form of "data # comment". Optimized
// for the common case where comments are rare and at the start of the file.
func uncomment(lines [][]byte, comm byte, nComm int) [][]byte {
	if nComm == 0 { return lines }

	for i, line := range lines {
		commentStart := bytes.IndexByte(line, comm)
		if commentStart == -1 {
			continue
		}

		lines[i] = line[:commentStart]

		n := 1
		for _, c := range line[commentStart+1:] {
			if c == comm { n++ }
		}

		nComm -= n
		if nComm == 0 { return lines }
	}

	return lines
}

// trim removes empty lines, keeping lineNums aligned with the lines which
// remain.
func trim(lines [][]byte, lineNums []int, sep byte) ([][]byte, []int) {
	j := 0

	LineLoop:
	for i, line := range lines {
		for _, c := range line {
			if c != sep {
				lines[j] = lines[i]
				lineNums[j] = lineNums[i]
				j++
				continue LineLoop
			}
		}
	}

	return lines[:j], lineNums[:j]
}

func parse(lines [][]byte, lineNums []int, sep byte, colIdxs []int) (
	[][]float64, error,
) {
	cols := make([][]float64, len(colIdxs))
	for i := range cols { cols[i] = make([]float64, len(lines)) }

	if len(lines) == 0 { return cols, nil }
	buf := make([][]byte, len(bytes.Fields(lines[0])))

	for _, idx := range colIdxs {
		if idx < 0 || idx >= len(buf) {
			return nil, &ParseError{lineNums[0], fmt.Sprintf(
				"I was asked for column %d, but the file only has %d columns.",
				idx, len(buf),
			)}
		}
	}

	var err error
	for i, line := range lines {
		words := fields(line, sep, buf)
		if len(words) != len(buf) {
			return nil, &ParseError{lineNums[i], fmt.Sprintf(
				"line has %d columns, not %d.", len(words), len(buf),
			)}
		}

		for j := range colIdxs {
			word := string(words[colIdxs[j]])
			cols[j][i], err = strconv.ParseFloat(word, 64)
			if err != nil {
				return nil, &ParseError{lineNums[i], fmt.Sprintf(
					"'%s' in column %d is not a number.", word, colIdxs[j],
				)}
			}
		}
	}

	return cols, nil
}

// Optimized and buffered analog to the standard library's bytes.FieldsFunc()
// function. Lines with more fields than buf has room for are reported by
// returning a slice longer than buf.
func fields(data []byte, sep byte, buf [][]byte) [][]byte {
	n := 0
	inField := false
	for _, c := range data {
		wasInField := inField
		inField = sep != c
		if inField && !wasInField { n++ }
	}
	if n > len(buf) { return make([][]byte, n) }

	na := 0
	fieldStart := -1

	for i := 0; i < len(data) && na < n; i++ {
		c := data[i]

		if fieldStart < 0 && c != sep {
			fieldStart = i
			continue
		}

		if fieldStart >= 0 && c == sep {
			buf[na] = data[fieldStart:i]
			na++
			fieldStart = -1
		}
	}

	if fieldStart >= 0 {
		buf[na] = data[fieldStart:]
		na++
	}

	return buf[0:na]
}
