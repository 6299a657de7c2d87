package cosmo

import (
	"math"
)

// HubbleFrac calculates h(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 + k (c/a)**2 = H0**2 (OmegaR a**-4 + OmegaM a**-3 + OmegaL).
// Assumes k, r = 0, which is the same approximation Cosmology.H makes.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}

// rhoCriticalMks returns the critical density in kg/m^3 for a Hubble
// constant H0 given in km/s/Mpc.
func rhoCriticalMks(H0 float64) float64 {
	H0Mks := (H0 * 1000) / MpcMks
	return 3.0 * H0Mks * H0Mks / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe at redshift z.
// The returned value is in cosmological units, (M_sun/h) / (Mpc/h)^3.
func RhoCritical(H0, omegaM, omegaL, z float64) float64 {
	H100 := H0 / 100
	H := HubbleFrac(omegaM, omegaL, z) * H0
	return rhoCriticalMks(H) * math.Pow(MpcMks, 3) / MSunMks / (H100 * H100)
}

// RhoAverage calculates the average density of matter in the universe. The
// returned value is in cosmological units, (M_sun/h) / (Mpc/h)^3.
func RhoAverage(H0, omegaM, omegaL, z float64) float64 {
	return RhoCritical(H0, omegaM, omegaL, 0) * omegaM * math.Pow(1+z, 3.0)
}

// photonDensity returns the energy density of a blackbody at temperature
// tcmb, expressed as a mass density in M_sun/Mpc^3.
func photonDensity(tcmb float64) float64 {
	t2 := tcmb * tcmb
	rhoMks := RadiationMks * t2 * t2 / (CMks * CMks)
	return rhoMks * math.Pow(MpcMks, 3) / MSunMks
}

// neutrinoFrac is the ratio of the energy density of a single relativistic
// neutrino species to the photon energy density.
var neutrinoFrac = 7.0 / 8.0 * math.Pow(4.0/11.0, 4.0/3.0)
