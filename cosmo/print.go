package cosmo

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes every primary and derived parameter to w, one per line, with
// each line starting with prefix.
func (c *Cosmology) Fprint(w io.Writer, prefix string) error {
	p, d := c.params, c.derived
	lines := []struct {
		name string
		val  float64
		unit string
	}{
		{"h", p.H, ""},
		{"n", p.N, ""},
		{"Omega_m", p.OmegaM, ""},
		{"Omega_b", p.OmegaB, ""},
		{"sigma8", p.Sigma8, ""},
		{"H0", d.H0, "km/s/Mpc"},
		{"rho_crit", d.RhoCrit, "M_sun/Mpc^3"},
		{"Omega_gamma", d.OmegaGamma, ""},
		{"Omega_nu", d.OmegaNu, ""},
		{"Omega_r", d.OmegaR, ""},
		{"Omega_Lambda", d.OmegaLambda, ""},
		{"a_eq", d.AEq, ""},
		{"z_eq", d.ZEq, ""},
		{"k_eq", d.KEq, "h/Mpc"},
		{"delta_H", c.deltaH, ""},
		{"Tcmb", c.constants.Tcmb, "K"},
	}

	if !c.configured {
		if _, err := fmt.Fprintf(w, "%s(unconfigured)\n", prefix); err != nil {
			return err
		}
	}
	for _, l := range lines {
		var err error
		if l.unit == "" {
			_, err = fmt.Fprintf(w, "%s%-12s = %g\n", prefix, l.name, l.val)
		} else {
			_, err = fmt.Fprintf(w, "%s%-12s = %g %s\n",
				prefix, l.name, l.val, l.unit)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s%-12s = %d samples\n", prefix, "T(k)", len(c.k))
	return err
}

// Print writes the parameter listing of Fprint to stdout.
func (c *Cosmology) Print(prefix string) {
	_ = c.Fprint(os.Stdout, prefix)
}
