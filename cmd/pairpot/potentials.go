package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/pairpot/internal/curve"
	"github.com/san-kum/pairpot/internal/potential"
	"github.com/san-kum/pairpot/internal/viz"
)

func newLJCmd() *cobra.Command {
	var (
		out                        outputFlags
		epsilon, sigma, rMin, rMax float64
		points                     int
	)

	cmd := &cobra.Command{
		Use:   "lj",
		Short: "attractive, repulsive and total Lennard-Jones energy curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lj := cfg.LJ
			if cmd.Flags().Changed("epsilon") {
				lj.Epsilon = epsilon
			}
			if cmd.Flags().Changed("sigma") {
				lj.Sigma = sigma
			}
			if cmd.Flags().Changed("r-min") {
				lj.RMin = rMin
			}
			if cmd.Flags().Changed("r-max") {
				lj.RMax = rMax
			}
			if cmd.Flags().Changed("points") {
				lj.Points = points
			}

			r, err := curve.Linspace(lj.RMin, lj.RMax, lj.Points)
			if err != nil {
				return err
			}
			set := curve.LennardJones(r, lj.Epsilon, lj.Sigma)

			params := map[string]float64{"epsilon": lj.Epsilon, "sigma": lj.Sigma}
			if err := out.emit(cmd.OutOrStdout(), "lj", params, nil, set); err != nil {
				return err
			}
			if out.format != "ascii" || out.out != "" {
				return nil
			}

			total, _ := set.Lookup("Lennard-Jones")
			xMin, yMin, err := curve.Minimum(total)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), viz.Metrics([]viz.Metric{
				{Label: "sampled minimum r", Value: xMin},
				{Label: "sampled minimum E", Value: yMin},
				{Label: "σ·2^(1/6)", Value: potential.LJMinimum(lj.Sigma)},
				{Label: "-ε", Value: -lj.Epsilon},
			}))
			return nil
		},
	}

	cmd.Flags().Float64Var(&epsilon, "epsilon", 0, "well depth (eV)")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "zero-crossing distance (Å)")
	cmd.Flags().Float64Var(&rMin, "r-min", 0, "first separation")
	cmd.Flags().Float64Var(&rMax, "r-max", 0, "last separation")
	cmd.Flags().IntVar(&points, "points", 0, "number of samples")
	out.register(cmd)
	return cmd
}

func newBondCmd() *cobra.Command {
	var (
		out                outputFlags
		k, b, drMin, drMax float64
		points             int
		sign               string
		force              bool
	)

	cmd := &cobra.Command{
		Use:   "bond",
		Short: "harmonic bond energy or force curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := cfg.Bond
			if cmd.Flags().Changed("k") {
				bc.K = k
			}
			if cmd.Flags().Changed("b") {
				bc.B = b
			}
			if cmd.Flags().Changed("sign") {
				bc.Sign = sign
			}
			if cmd.Flags().Changed("dr-min") {
				bc.DrMin = drMin
			}
			if cmd.Flags().Changed("dr-max") {
				bc.DrMax = drMax
			}
			if cmd.Flags().Changed("points") {
				bc.Points = points
			}

			h, err := bc.Harmonic()
			if err != nil {
				return err
			}
			if force {
				logrus.WithField("sign", h.Sign).Warn("harmonic force sign is a convention choice: as_written gives K(|dr|-b), negated gives -K(|dr|-b)")
				fmt.Fprintln(os.Stderr, viz.Warning.Render(fmt.Sprintf("force sign: %s", h.Sign)))
			}

			dr, err := curve.Linspace(bc.DrMin, bc.DrMax, bc.Points)
			if err != nil {
				return err
			}
			set := curve.Harmonic(dr, h, force)

			params := map[string]float64{"k": h.K, "b": h.B}
			labels := map[string]string{"force_sign": h.Sign.String(), "mode": set.Series[0].Name}
			return out.emit(cmd.OutOrStdout(), "bond", params, labels, set)
		},
	}

	cmd.Flags().Float64Var(&k, "k", 0, "spring constant K")
	cmd.Flags().Float64Var(&b, "b", 0, "equilibrium separation b")
	cmd.Flags().StringVar(&sign, "sign", "", "force sign convention (as_written, negated)")
	cmd.Flags().Float64Var(&drMin, "dr-min", 0, "first separation")
	cmd.Flags().Float64Var(&drMax, "dr-max", 0, "last separation")
	cmd.Flags().IntVar(&points, "points", 0, "number of samples")
	cmd.Flags().BoolVar(&force, "force", false, "tabulate the force instead of the energy")
	out.register(cmd)
	return cmd
}
