package cosmo

import (
	"math"
)

// Params are the primary inputs which specify a Lambda CDM cosmology.
type Params struct {
	H      float64 // Hubble parameter today, H0 = 100*h km/s/Mpc
	N      float64 // scalar spectral index
	OmegaM float64 // matter density parameter today
	OmegaB float64 // baryon density parameter today
	Sigma8 float64 // power spectrum variance smoothed at 8 Mpc/h, 0 if unset
}

// DefaultParams returns the fiducial WMAP7+ cosmology.
func DefaultParams() Params {
	return Params{
		H:      DefaultH,
		N:      DefaultN,
		OmegaM: DefaultOmegaM,
		OmegaB: DefaultOmegaB,
		Sigma8: DefaultSigma8,
	}
}

// Derived are the secondary parameters which follow from Params.
type Derived struct {
	H0          float64 // km/s/Mpc
	RhoCrit     float64 // critical density today, M_sun/Mpc^3
	OmegaGamma  float64 // photon density parameter
	OmegaNu     float64 // neutrino density parameter
	OmegaR      float64 // radiation (photon + neutrino) density parameter
	OmegaLambda float64 // dark energy density parameter
	AEq         float64 // scale factor at matter-radiation equality
	ZEq         float64 // redshift of equality
	KEq         float64 // comoving wavenumber of the horizon at equality, h/Mpc
}

// Derive computes the derived parameters of p. It is a pure function of its
// arguments.
//
// No inputs are checked. Unphysical values (e.g. OmegaM = 0 or h = 0) give
// NaN or Inf results rather than errors, so callers that accept user input
// should sanity check the output. OmegaLambda is set by flatness and is not
// clamped.
func Derive(p Params, c Constants) Derived {
	c = c.orDefault()
	d := Derived{}

	d.H0 = 100 * p.H
	d.RhoCrit = rhoCriticalMks(d.H0) * math.Pow(MpcMks, 3) / MSunMks
	d.OmegaGamma = photonDensity(c.Tcmb) / d.RhoCrit
	d.OmegaNu = c.NEff * neutrinoFrac * d.OmegaGamma
	d.OmegaR = d.OmegaGamma + d.OmegaNu
	d.OmegaLambda = 1 - p.OmegaM - d.OmegaR
	d.AEq = d.OmegaR / p.OmegaM
	d.ZEq = 1/d.AEq - 1
	// a H(a) / c at equality, where matter and radiation contribute equally
	// to H^2. H0/h/c is the inverse Hubble radius in h/Mpc.
	d.KEq = math.Sqrt(2*p.OmegaM/d.AEq) * (d.H0 / p.H) / SpeedOfLight

	return d
}
