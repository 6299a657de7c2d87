package cosmo

// Physical constants. Names ending in Mks are in SI units.
const (
	MpcMks       = 3.0856775814913673e22 // m
	MSunMks      = 1.98847e30            // kg
	GMks         = 6.67430e-11           // m^3 / (kg s^2)
	CMks         = 2.99792458e8          // m / s
	RadiationMks = 7.565723e-16          // J / (m^3 K^4), radiation constant a

	// SpeedOfLight is c in km/s.
	SpeedOfLight = 299792.458
	// HubbleRadius is c/H0 in Mpc/h.
	HubbleRadius = SpeedOfLight / 100
)

// Fiducial WMAP7+ parameters used by Default.
const (
	DefaultH      = 0.704
	DefaultN      = 0.963
	DefaultOmegaM = 0.272
	DefaultOmegaB = 0.0456
	DefaultSigma8 = 0.809
)

// SigmaRadius is the smoothing radius in Mpc/h at which sigma8 is defined.
const SigmaRadius = 8.0

// Constants holds the physical inputs which are fixed for a given
// measurement epoch but which tests and exotic models may want to change.
type Constants struct {
	Tcmb float64 // present-day CMB temperature in Kelvin
	NEff float64 // number of relativistic neutrino species
}

// DefaultConstants is used whenever a zero Constants is supplied.
var DefaultConstants = Constants{Tcmb: 2.725, NEff: 3}

func (c Constants) orDefault() Constants {
	if c == (Constants{}) {
		return DefaultConstants
	}
	if c.Tcmb == 0 {
		c.Tcmb = DefaultConstants.Tcmb
	}
	if c.NEff == 0 {
		c.NEff = DefaultConstants.NEff
	}
	return c
}
