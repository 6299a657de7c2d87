/*package cosmo encapsulates the parameters of a Lambda CDM cosmology, for
the purposes of perturbation theory.

A Cosmology is specified by five primary parameters (h, n, Omega_m, Omega_b
and sigma8) and, in order to compute a realistic linear power spectrum, a
transfer function T(k). Transfer functions are typically generated by a
Boltzmann code such as CMBFast or CAMB. In most cases a Cosmology will be
read from a config file with FromFile.

A Cosmology is not safe for concurrent mutation. Once it has been configured
and normalized, any number of goroutines may read from it.
*/
package cosmo

import (
	"errors"
	"math"

	"github.com/kingdwd/Copter/logging"
	"github.com/kingdwd/Copter/math/interpolate"
)

// Cosmology is a Lambda CDM cosmology together with its transfer function.
// The zero value is unconfigured; it must be set up with Initialize before
// use.
type Cosmology struct {
	params    Params
	constants Constants
	derived   Derived

	k, t []float64
	// Cubic spline of T over ln k. nil if fewer than two samples are loaded.
	tSpline *interpolate.Spline

	deltaH     float64
	normalized bool
	configured bool
}

// Config collects everything needed to construct a Cosmology. Only Params is
// required. If Params.Sigma8 is positive and a transfer function is supplied
// through either Transfer or TransferFile, the transfer function is
// normalized during construction.
type Config struct {
	Params    Params
	Constants Constants // zero value means DefaultConstants

	Transfer     *Table
	TransferFile *TransferFile
}

// Table is a sampled transfer function. K must be positive and strictly
// increasing, in h/Mpc.
type Table struct {
	K, T []float64
}

// TransferFile names a column text file holding a transfer function. Columns
// are 1-indexed; zero values mean DefaultKColumn and DefaultTColumn.
type TransferFile struct {
	Path             string
	KColumn, TColumn int
}

// Default returns the fiducial WMAP7+ cosmology with no transfer function.
func Default() *Cosmology {
	c := &Cosmology{}
	c.Initialize(DefaultParams())
	return c
}

// New constructs a Cosmology from cfg.
func New(cfg Config) (*Cosmology, error) {
	c := &Cosmology{constants: cfg.Constants.orDefault()}
	c.Initialize(cfg.Params)

	if cfg.Transfer != nil && cfg.TransferFile != nil {
		return nil, opErr("cosmo.new", KindInvalidArgument, cfg.TransferFile.Path,
			errors.New("both a transfer table and a transfer file were given"))
	}

	switch {
	case cfg.Transfer != nil:
		if err := c.SetTransferFunction(cfg.Transfer.K, cfg.Transfer.T); err != nil {
			return nil, err
		}
	case cfg.TransferFile != nil:
		tf := cfg.TransferFile
		if err := c.LoadTransferFunction(tf.Path, tf.KColumn, tf.TColumn); err != nil {
			return nil, err
		}
	default:
		return c, nil
	}

	if cfg.Params.Sigma8 > 0 {
		if err := c.NormalizeTransferFunction(cfg.Params.Sigma8); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Initialize replaces the primary parameters and recomputes the derived
// parameters. The transfer function is left alone, but any existing
// normalization is discarded; call NormalizeTransferFunction again.
func (c *Cosmology) Initialize(p Params) {
	c.constants = c.constants.orDefault()
	c.params = p
	c.CalculateAdditionalParameters()
	c.deltaH, c.normalized = 0, false
	c.configured = true
}

// CalculateAdditionalParameters recomputes the derived parameters from the
// current primary parameters.
func (c *Cosmology) CalculateAdditionalParameters() {
	c.derived = Derive(c.params, c.constants)
	logging.L().Debug("cosmo.derive",
		"h", c.params.H, "omega_m", c.params.OmegaM,
		"omega_lambda", c.derived.OmegaLambda, "z_eq", c.derived.ZEq,
	)
}

// Configured reports whether c has been given a set of parameters.
func (c *Cosmology) Configured() bool { return c.configured }

// Normalized reports whether DeltaH is valid for the current parameters and
// transfer function.
func (c *Cosmology) Normalized() bool { return c.normalized }

func (c *Cosmology) Params() Params       { return c.params }
func (c *Cosmology) Derived() Derived     { return c.derived }
func (c *Cosmology) Constants() Constants { return c.constants }

// DeltaH returns the normalization of the linear power spectrum at z = 0.
// It is 0 until NormalizeTransferFunction succeeds.
func (c *Cosmology) DeltaH() float64 { return c.deltaH }

// K returns the wavenumbers of the transfer function in h/Mpc. The returned
// slice is the internal buffer, so don't modify it.
func (c *Cosmology) K() []float64 { return c.k }

// T returns the transfer function at each wavenumber in K. The returned
// slice is the internal buffer, so don't modify it.
func (c *Cosmology) T() []float64 { return c.t }

// H returns the Hubble parameter at scale factor a in km/s/Mpc. Only matter
// and dark energy are included; radiation is neglected here even though it
// is tracked in OmegaR. H returns NaN if c is unconfigured.
func (c *Cosmology) H(a float64) float64 {
	if !c.configured {
		return math.NaN()
	}
	return c.derived.H0 * math.Sqrt(c.params.OmegaM/(a*a*a)+c.derived.OmegaLambda)
}

// DHda returns dH/da at scale factor a. It is undefined at a = 0. DHda
// returns NaN if c is unconfigured.
func (c *Cosmology) DHda(a float64) float64 {
	if !c.configured {
		return math.NaN()
	}
	H0 := c.derived.H0
	return -3 * H0 * H0 * c.params.OmegaM / (2 * c.H(a) * a * a * a * a)
}
