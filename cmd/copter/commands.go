package main

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/spf13/cobra"

	"github.com/kingdwd/Copter/catalog"
	"github.com/kingdwd/Copter/cosmo"
	"github.com/kingdwd/Copter/math/calc"
)

func printCmd() *cobra.Command {
	var prefix string

	c := &cobra.Command{
		Use:   "print [config]",
		Short: "Print the primary and derived parameters of a cosmology",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := load(args)
			if err != nil {
				return err
			}
			return model.Fprint(cmd.OutOrStdout(), prefix)
		},
	}

	c.Flags().StringVarP(&prefix, "prefix", "p", "", "string written at the start of every line")
	return c
}

func sigmaCmd() *cobra.Command {
	var radius float64

	c := &cobra.Command{
		Use:   "sigma <config>",
		Short: "Print the rms linear overdensity in top-hat spheres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := load(args)
			if err != nil {
				return err
			}
			s, err := model.Sigma(radius)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sigma(%g Mpc/h) = %.6g\n", radius, s)
			return err
		},
	}

	c.Flags().Float64VarP(&radius, "radius", "r", cosmo.SigmaRadius, "sphere radius in Mpc/h")
	return c
}

func pkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pk <config>",
		Short: "Print k, T(k), and the normalized linear P(k) at each tabulated k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := load(args)
			if err != nil {
				return err
			}

			k, t := model.K(), model.T()
			pk := make([]float64, len(k))
			for i := range k {
				if pk[i], err = model.LinearPower(k[i]); err != nil {
					return err
				}
			}

			return catalog.WriteCols(
				cmd.OutOrStdout(),
				[]string{"k(h/Mpc)", "T(k)", "P(k)((Mpc/h)^3)"},
				[][]float64{k, t, pk},
			)
		},
	}
}

func hubbleCmd() *cobra.Command {
	var aMin, aMax float64
	var steps int

	c := &cobra.Command{
		Use:   "hubble [config]",
		Short: "Tabulate H(a) and dH/da, with a finite-difference check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 3 {
				return fmt.Errorf("--steps must be at least 3, got %d", steps)
			} else if !(aMin > 0) || !(aMax > aMin) {
				return fmt.Errorf("need 0 < --amin < --amax, got %g and %g", aMin, aMax)
			}

			model, err := load(args)
			if err != nil {
				return err
			}

			as := floats.Span(make([]float64, steps), aMin, aMax)
			as[steps-1] = aMax
			hs, dhs := make([]float64, steps), make([]float64, steps)
			for i := range as {
				hs[i] = model.H(as[i])
				dhs[i] = model.DHda(as[i])
			}

			order := 4
			if steps < 5 {
				order = 2
			}
			fd := calc.Deriv(as, hs, order)

			return catalog.WriteCols(
				cmd.OutOrStdout(),
				[]string{"a", "H(km/s/Mpc)", "dH/da", "dH/da(numerical)"},
				[][]float64{as, hs, dhs, fd},
			)
		},
	}

	c.Flags().Float64Var(&aMin, "amin", 0.01, "smallest scale factor")
	c.Flags().Float64Var(&aMax, "amax", 1, "largest scale factor")
	c.Flags().IntVar(&steps, "steps", 100, "number of uniformly spaced scale factors")
	return c
}
