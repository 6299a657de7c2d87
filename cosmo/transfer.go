package cosmo

import (
	"errors"
	"fmt"
	"math"

	"github.com/kingdwd/Copter/catalog"
	"github.com/kingdwd/Copter/logging"
	"github.com/kingdwd/Copter/math/interpolate"
)

// Default 1-indexed columns of a transfer function file.
const (
	DefaultKColumn = 1
	DefaultTColumn = 2
)

// SetTransferFunction replaces the stored transfer function with a copy of
// (k, t). k must be positive and strictly increasing, and k and t must have
// the same length. Empty slices unload the transfer function. On error the
// previous table is kept.
//
// Any existing normalization is discarded.
func (c *Cosmology) SetTransferFunction(k, t []float64) error {
	const op = "cosmo.set_transfer_function"
	if err := checkTable(k, t); err != nil {
		return opErr(op, KindInvalidArgument, "", err)
	}

	c.k = append([]float64(nil), k...)
	c.t = append([]float64(nil), t...)
	c.tSpline = nil
	if len(c.k) >= 2 {
		lnk := make([]float64, len(c.k))
		for i := range lnk {
			lnk[i] = math.Log(c.k[i])
		}
		c.tSpline = interpolate.NewSpline(lnk, c.t)
	}
	c.deltaH, c.normalized = 0, false

	logging.L().Debug(op, "samples", len(c.k))
	return nil
}

func checkTable(k, t []float64) error {
	if len(k) != len(t) {
		return fmt.Errorf("len(k) = %d but len(T) = %d", len(k), len(t))
	}
	for i := range k {
		if !(k[i] > 0) || math.IsInf(k[i], 0) {
			return fmt.Errorf("k[%d] = %g is not a positive finite wavenumber",
				i, k[i])
		}
		if i > 0 && !(k[i] > k[i-1]) {
			return fmt.Errorf("k is not strictly increasing at index %d "+
				"(%g after %g)", i, k[i], k[i-1])
		}
	}
	return nil
}

// LoadTransferFunction reads a transfer function from the 1-indexed columns
// kCol and tCol of the text file tkfile. Column indices of 0 select
// DefaultKColumn and DefaultTColumn. On error the previous table is kept.
func (c *Cosmology) LoadTransferFunction(tkfile string, kCol, tCol int) error {
	const op = "cosmo.load_transfer_function"
	if kCol == 0 {
		kCol = DefaultKColumn
	}
	if tCol == 0 {
		tCol = DefaultTColumn
	}
	if kCol < 1 || tCol < 1 {
		return opErr(op, KindInvalidArgument, tkfile, fmt.Errorf(
			"columns are 1-indexed, but kcol = %d and tcol = %d", kCol, tCol,
		))
	}

	cols, err := catalog.ReadFile(tkfile, []int{kCol - 1, tCol - 1})
	if err != nil {
		var pe *catalog.ParseError
		if errors.As(err, &pe) {
			return opErr(op, KindParse, tkfile, err)
		}
		return opErr(op, KindIO, tkfile, err)
	}

	if err := c.SetTransferFunction(cols[0], cols[1]); err != nil {
		var oe *OpError
		if errors.As(err, &oe) {
			err = oe.Err
		}
		return opErr(op, KindParse, tkfile, err)
	}

	logging.L().Debug(op, "path", tkfile, "samples", len(c.k))
	return nil
}
