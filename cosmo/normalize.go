package cosmo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"

	"github.com/kingdwd/Copter/logging"
	"github.com/kingdwd/Copter/math/interpolate"
)

// varianceSamples is the number of uniformly spaced ln k points the variance
// integrand is resampled onto. At k = 10 h/Mpc and R = 8 Mpc/h this resolves
// each oscillation of the window function with about 17 points.
const varianceSamples = 4096

// TopHat is the Fourier transform of a spherical top-hat window of unit
// volume, W(x) = 3 (sin x - x cos x) / x^3, evaluated at x = kR.
func TopHat(x float64) float64 {
	if math.Abs(x) < 1e-3 {
		x2 := x * x
		return 1 - x2/10 + x2*x2/280
	}
	return 3 * (math.Sin(x) - x*math.Cos(x)) / (x * x * x)
}

// NormalizeTransferFunction computes DeltaH so that the linear power spectrum
// has an rms fluctuation of sigma8 in spheres of radius 8 Mpc/h. The variance
// integral only covers the tabulated range of k.
//
// An ErrInvalidState error is returned, and c is left unchanged, if c is
// unconfigured, fewer than two transfer function samples are loaded, or
// sigma8 is not positive.
func (c *Cosmology) NormalizeTransferFunction(sigma8 float64) error {
	const op = "cosmo.normalize_transfer_function"
	switch {
	case !c.configured:
		return opErr(op, KindInvalidState, "",
			errors.New("cosmology has not been initialized"))
	case c.tSpline == nil:
		return opErr(op, KindInvalidState, "", fmt.Errorf(
			"a transfer function with at least two samples is required, "+
				"but %d are loaded", len(c.k),
		))
	case !(sigma8 > 0):
		return opErr(op, KindInvalidState, "", fmt.Errorf(
			"sigma8 must be positive, got %g", sigma8,
		))
	}

	var t time.Time
	if logging.Mode == logging.Performance {
		t = time.Now()
	}

	raw := c.rawVariance(SigmaRadius)
	c.deltaH = sigma8 / math.Sqrt(raw)
	c.params.Sigma8 = sigma8
	c.normalized = true

	logging.L().Debug(op, "sigma8", sigma8, "delta_h", c.deltaH,
		"samples", len(c.k))
	if logging.Mode == logging.Performance {
		logging.L().Info(op, "time", time.Since(t).String(),
			"mem", logging.MemString())
	}
	return nil
}

// rawVariance returns the variance of the unnormalized (DeltaH = 1) linear
// density field smoothed on the scale R:
//
//	sigma^2(R) = Int dln k (k R_H)^(n+3) T(k)^2 W(kR)^2
//
// The integrand is sampled uniformly in ln k and integrated exactly through
// a cubic spline.
func (c *Cosmology) rawVariance(R float64) float64 {
	lo, hi := math.Log(c.k[0]), math.Log(c.k[len(c.k)-1])
	n := c.params.N

	// Span accumulates rounding error, which can push the last point just
	// outside the table.
	lnk := floats.Span(make([]float64, varianceSamples), lo, hi)
	lnk[0], lnk[len(lnk)-1] = lo, hi

	integrand := c.tSpline.EvalAll(lnk)
	for i, x := range lnk {
		k, t := math.Exp(x), integrand[i]
		w := TopHat(k * R)
		integrand[i] = math.Pow(k*HubbleRadius, n+3) * t * t * w * w
	}

	return interpolate.NewSpline(lnk, integrand).Integrate(lo, hi)
}

// Sigma returns the rms linear density fluctuation at z = 0 in spheres of
// radius R Mpc/h. Sigma(SigmaRadius) reproduces the normalization.
func (c *Cosmology) Sigma(R float64) (float64, error) {
	const op = "cosmo.sigma"
	if !c.normalized {
		return 0, opErr(op, KindInvalidState, "",
			errors.New("transfer function has not been normalized"))
	}
	if !(R > 0) {
		return 0, opErr(op, KindInvalidArgument, "", fmt.Errorf(
			"radius must be positive, got %g", R,
		))
	}
	return c.deltaH * math.Sqrt(c.rawVariance(R)), nil
}

// LinearPower returns the linear matter power spectrum at z = 0 in
// (Mpc/h)^3,
//
//	P(k) = 2 pi^2 DeltaH^2 (k R_H)^(n+3) T(k)^2 / k^3.
//
// k must lie within the tabulated range of the transfer function.
func (c *Cosmology) LinearPower(k float64) (float64, error) {
	const op = "cosmo.linear_power"
	if !c.normalized {
		return 0, opErr(op, KindInvalidState, "",
			errors.New("transfer function has not been normalized"))
	}
	if !(k >= c.k[0] && k <= c.k[len(c.k)-1]) {
		return 0, opErr(op, KindInvalidArgument, "", fmt.Errorf(
			"k = %g is outside the tabulated range [%g, %g]",
			k, c.k[0], c.k[len(c.k)-1],
		))
	}

	t := c.transfer(k)
	dH := c.deltaH
	return 2 * math.Pi * math.Pi * dH * dH *
		math.Pow(k*HubbleRadius, c.params.N+3) * t * t / (k * k * k), nil
}

// transfer interpolates the transfer function at k, which must be inside
// the table.
func (c *Cosmology) transfer(k float64) float64 {
	switch k {
	case c.k[0]:
		return c.t[0]
	case c.k[len(c.k)-1]:
		return c.t[len(c.t)-1]
	}
	return c.tSpline.Eval(math.Log(k))
}
