package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"thermolab/internal/config"
	"thermolab/internal/process"
	"thermolab/internal/statefile"
	"thermolab/internal/thermo"
	"thermolab/internal/tui"
)

var (
	configFile string
	statePath  string

	internalEnergy float64
	heatAdded      float64
	workDone       float64
	deltaU         float64

	saveFinal bool
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thermolab",
		Short: "first law of thermodynamics workbench",
		Long:  "thermolab models lumped thermodynamic systems under ΔU = Q − W\n(W is work done BY the system; all quantities in Joules).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sys, err := initialSystem(cfg)
			if err != nil {
				return err
			}
			return tui.Run(sys, resolveStatePath(cfg), cfg.Inspector.StepSize)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "workbench config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "state file path")

	deltaUCmd := &cobra.Command{
		Use:   "delta-u",
		Short: "change in internal energy: ΔU = Q − W",
		RunE:  runDeltaU,
	}
	deltaUCmd.Flags().Float64Var(&heatAdded, "heat", 0, "heat added Q (J)")
	deltaUCmd.Flags().Float64Var(&workDone, "work", 0, "work done W (J)")

	heatCmd := &cobra.Command{
		Use:   "heat",
		Short: "heat added: Q = ΔU + W",
		RunE:  runHeat,
	}
	heatCmd.Flags().Float64Var(&deltaU, "delta-u", 0, "change in internal energy ΔU (J)")
	heatCmd.Flags().Float64Var(&workDone, "work", 0, "work done W (J)")

	workCmd := &cobra.Command{
		Use:   "work",
		Short: "work done: W = Q − ΔU",
		RunE:  runWork,
	}
	workCmd.Flags().Float64Var(&deltaU, "delta-u", 0, "change in internal energy ΔU (J)")
	workCmd.Flags().Float64Var(&heatAdded, "heat", 0, "heat added Q (J)")

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a state file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().Float64Var(&internalEnergy, "internal-energy", 0, "internal energy U (J)")
	initCmd.Flags().Float64Var(&heatAdded, "heat", 0, "heat added Q (J)")
	initCmd.Flags().Float64Var(&workDone, "work", 0, "work done W (J)")

	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "display a state file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	processCmd := &cobra.Command{
		Use:   "process [steps.yaml]",
		Short: "apply a step file and plot the energy trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().BoolVar(&saveFinal, "save", false, "save the final state")

	rootCmd.AddCommand(deltaUCmd, heatCmd, workCmd, initCmd, showCmd, processCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func resolveStatePath(cfg *config.Config) string {
	if statePath != "" {
		return statePath
	}
	return cfg.StatePath
}

// initialSystem loads the state file if it exists, falling back to the
// configured initial quantities.
func initialSystem(cfg *config.Config) (*thermo.System, error) {
	path := resolveStatePath(cfg)
	if _, err := os.Stat(path); err == nil {
		return statefile.Load(path)
	}
	return thermo.NewSystem(cfg.Initial.InternalEnergy, cfg.Initial.HeatAdded, cfg.Initial.WorkDone)
}

func runDeltaU(cmd *cobra.Command, args []string) error {
	var sys *thermo.System
	var err error

	if statePath != "" {
		sys, err = statefile.Load(statePath)
	} else {
		sys, err = thermo.NewSystem(0, heatAdded, workDone)
	}
	if err != nil {
		return err
	}

	du, err := thermo.DeltaU(sys)
	if err != nil {
		return err
	}
	fmt.Printf("ΔU = %s J\n", thermo.FormatJoules(du))
	return nil
}

func runHeat(cmd *cobra.Command, args []string) error {
	q, err := thermo.HeatAdded(deltaU, workDone)
	if err != nil {
		return err
	}
	fmt.Printf("Q = %s J\n", thermo.FormatJoules(q))
	return nil
}

func runWork(cmd *cobra.Command, args []string) error {
	w, err := thermo.WorkDone(deltaU, heatAdded)
	if err != nil {
		return err
	}
	fmt.Printf("W = %s J\n", thermo.FormatJoules(w))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := resolveStatePath(cfg)
	if len(args) == 1 {
		path = args[0]
	}

	u, q, w := cfg.Initial.InternalEnergy, cfg.Initial.HeatAdded, cfg.Initial.WorkDone
	if cmd.Flags().Changed("internal-energy") {
		u = internalEnergy
	}
	if cmd.Flags().Changed("heat") {
		q = heatAdded
	}
	if cmd.Flags().Changed("work") {
		w = workDone
	}

	sys, err := thermo.NewSystem(u, q, w)
	if err != nil {
		return err
	}
	if err := statefile.Save(sys, path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := resolveStatePath(cfg)
	if len(args) == 1 {
		path = args[0]
	}

	sys, err := statefile.Load(path)
	if err != nil {
		return err
	}
	du, err := thermo.DeltaU(sys)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(path))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "internal energy U\t%s J\n", thermo.FormatJoules(sys.InternalEnergy()))
	fmt.Fprintf(w, "heat added Q\t%s J\n", thermo.FormatJoules(sys.HeatAdded()))
	fmt.Fprintf(w, "work done W\t%s J\n", thermo.FormatJoules(sys.WorkDone()))
	fmt.Fprintf(w, "ΔU = Q − W\t%s J\n", thermo.FormatJoules(du))
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(sys.String())
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	steps, err := process.LoadSteps(args[0])
	if err != nil {
		return err
	}

	initial, err := initialSystem(cfg)
	if err != nil {
		return err
	}

	traj, err := process.Apply(initial, steps)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(traj.Energies,
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.Caption(fmt.Sprintf("internal energy over %d steps (J)", len(steps))),
	)
	fmt.Println(graph)
	fmt.Printf("final: %s\n", traj.Final)

	if saveFinal {
		path := resolveStatePath(cfg)
		if err := statefile.Save(traj.Final, path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
