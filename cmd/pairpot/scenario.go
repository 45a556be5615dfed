package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pairpot/internal/config"
	"github.com/san-kum/pairpot/internal/potential"
	"github.com/san-kum/pairpot/internal/viz"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list simulation presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES\tBOX\tSTEPS\tFORCEFIELD\tSIGN")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				ff := p.Forcefield
				if ff == "" {
					ff = "engine default"
				}
				fmt.Fprintf(w, "%s\t%d\t%g\t%d\t%s\t%s\n", name, p.Particles, p.BoxLength, p.Steps, ff, p.ForceSign)
			}
			return w.Flush()
		},
	}
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [preset]",
		Short: "show the system a driver hands to the MD engine",
		Long: "Resolves a preset (or the simulation section of --config) into the " +
			"system description and loop parameters, and evaluates the forcefield " +
			"callback at the initial pair distances. No engine ships with pairpot: " +
			"programs embedding one bind it with md.Bind and drive it with md.Run.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := &cfg.Simulation
			title := "simulation (config)"
			if len(args) == 1 {
				sc = config.GetPreset(args[0])
				if sc == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
				}
				title = "simulation " + args[0]
			}

			sys, err := sc.System()
			if err != nil {
				return err
			}
			run := sc.RunConfig()

			items := []viz.Metric{
				{Label: "particles", Value: sys.Particles},
				{Label: "temperature", Value: sys.Temperature},
				{Label: "box", Value: fmt.Sprintf("%g (%s)", sys.BoxLength, sys.BoxShape)},
				{Label: "timestep", Value: sys.Timestep},
				{Label: "cutoff", Value: sys.Cutoff},
				{Label: "steps", Value: run.Steps},
				{Label: "sample every", Value: run.SampleEvery},
				{Label: "duration", Value: float64(run.Steps) * sys.Timestep},
			}
			if len(sys.XPositions) > 0 {
				items = append(items,
					viz.Metric{Label: "x positions", Value: sys.XPositions},
					viz.Metric{Label: "y positions", Value: sys.YPositions},
				)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.Section(title, viz.Metrics(items)))
			fmt.Fprintln(out, viz.Separator(40))

			if sys.Forcefield == nil {
				fmt.Fprintln(out, viz.Subtle.Render("forcefield: engine default"))
				return nil
			}

			ffItems := []viz.Metric{
				{Label: "forcefield", Value: sys.Forcefield.Name()},
				{Label: "constants", Value: sys.Forcefield.Constants()},
			}
			h, isHarmonic := sys.Forcefield.(*potential.Harmonic)
			if isHarmonic {
				ffItems = append(ffItems, viz.Metric{Label: "force sign", Value: h.Sign})
			}
			if dr := sys.PairDistances(); len(dr) > 0 {
				ffItems = append(ffItems,
					viz.Metric{Label: "initial dr", Value: dr},
					viz.Metric{Label: "energy", Value: sys.Forcefield.Evaluate(dr, false)},
					viz.Metric{Label: "force", Value: sys.Forcefield.Evaluate(dr, true)},
				)
			}
			fmt.Fprintln(out, viz.Section("callback", viz.Metrics(ffItems)))

			if isHarmonic {
				fmt.Fprintln(os.Stderr, viz.Warning.Render(
					fmt.Sprintf("note: bond drivers disagree on the force sign; %s is in use", h.Sign)))
			}
			return nil
		},
	}
}
