package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Kemerd/aircraft-tug-physics/internal/config"
	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/rig"
	"github.com/Kemerd/aircraft-tug-physics/internal/scenario"
	"github.com/Kemerd/aircraft-tug-physics/internal/storage"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
	"github.com/Kemerd/aircraft-tug-physics/internal/tug"
	"github.com/Kemerd/aircraft-tug-physics/internal/tui"
)

var (
	dataDir string
	// lever inputs
	f1       float64
	inputArm float64
	arm2     float64
	// tug inputs
	weightLb    float64
	surfaceName string
	inclineDeg  float64
	handleArm   float64
	aircraftArm float64
	// shared
	configFile string
	preset     string
	noSave     bool
	// settle
	settleConfig string
	dt           float64
	duration     float64
	// sweep
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tugsim",
		Short: "lever and aircraft tow tug force calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tugsim", "data directory")

	leverCmd := &cobra.Command{
		Use:   "lever",
		Short: "interactive lever demonstrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunLever()
		},
	}

	tugCmd := &cobra.Command{
		Use:   "tug",
		Short: "interactive tow tug calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunTug()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [simulator]",
		Short: "evaluate one scenario and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&f1, "f1", config.DefaultLeverF1, "applied force (lbf)")
	runCmd.Flags().Float64Var(&inputArm, "input-arm", lever.DefaultInputArm, "input arm C (ft)")
	runCmd.Flags().Float64Var(&arm2, "arm2", lever.DefaultOutputArm, "output arm length (ft)")
	runCmd.Flags().Float64Var(&weightLb, "weight", tug.DefaultWeightLb, "aircraft weight (lb)")
	runCmd.Flags().StringVar(&surfaceName, "surface", surface.Presets[0].Name, "ground surface")
	runCmd.Flags().Float64Var(&inclineDeg, "incline", 0, "ramp incline (deg)")
	runCmd.Flags().Float64Var(&handleArm, "handle-arm", tug.DefaultHandleArm, "handle arm (ft)")
	runCmd.Flags().Float64Var(&aircraftArm, "aircraft-arm", tug.DefaultAircraftArm, "aircraft attach arm (ft)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "print only, do not record the run")

	settleCmd := &cobra.Command{
		Use:   "settle [config_id]",
		Short: "simulate lever tipping to rest and plot the rotation",
		Args:  cobra.ExactArgs(1),
		RunE:  settleLever,
	}
	settleCmd.Flags().Float64Var(&f1, "f1", config.DefaultLeverF1, "applied force (lbf)")
	settleCmd.Flags().Float64Var(&inputArm, "input-arm", lever.DefaultInputArm, "input arm C (ft)")
	settleCmd.Flags().Float64Var(&arm2, "arm2", lever.DefaultOutputArm, "output arm length (ft)")
	settleCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	settleCmd.Flags().Float64Var(&duration, "time", 20.0, "max simulated time")

	sweepCmd := &cobra.Command{
		Use:   "sweep [simulator]",
		Short: "sweep the main input and plot each configuration's response",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepInput,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start (lever: f1 lbf, tug: weight lb)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "sample count")
	sweepCmd.Flags().Float64Var(&inputArm, "input-arm", lever.DefaultInputArm, "input arm C (ft)")
	sweepCmd.Flags().Float64Var(&arm2, "arm2", lever.DefaultOutputArm, "output arm length (ft)")
	sweepCmd.Flags().StringVar(&surfaceName, "surface", surface.Presets[0].Name, "ground surface")
	sweepCmd.Flags().Float64Var(&inclineDeg, "incline", 0, "ramp incline (deg)")
	sweepCmd.Flags().Float64Var(&handleArm, "handle-arm", tug.DefaultHandleArm, "handle arm (ft)")
	sweepCmd.Flags().Float64Var(&aircraftArm, "aircraft-arm", tug.DefaultAircraftArm, "aircraft attach arm (ft)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's result table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [simulator]",
		Short: "list preset scenarios for a simulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for simulator: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rigsCmd := &cobra.Command{
		Use:   "rigs",
		Short: "show the built-in lever and tug configurations",
		RunE:  showRigs,
	}

	rootCmd.AddCommand(leverCmd, tugCmd, runCmd, settleCmd, sweepCmd, listCmd, exportCmd, exportCSVCmd, presetsCmd, rigsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyPresetAndConfig layers the shared input sources: preset first, then
// config file, with explicitly-set CLI flags winning over both.
func applyPresetAndConfig(cmd *cobra.Command, simulator string) error {
	if preset != "" {
		cfg := config.GetPreset(simulator, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(simulator))
		}
		applyConfig(cfg, nil)
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cfg, cmd.Flags().Changed)
	}
	return nil
}

func applyConfig(cfg *config.Config, changed func(string) bool) {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	if !changed("f1") {
		f1 = cfg.Lever.F1
	}
	if !changed("input-arm") {
		inputArm = cfg.Lever.InputArm
	}
	if !changed("arm2") {
		arm2 = cfg.Lever.Arm2
	}
	if !changed("weight") {
		weightLb = cfg.Tug.WeightLb
	}
	if !changed("surface") && cfg.Tug.Surface != "" {
		surfaceName = cfg.Tug.Surface
	}
	if !changed("incline") {
		inclineDeg = cfg.Tug.InclineDeg
	}
	if !changed("handle-arm") {
		handleArm = cfg.Tug.HandleArm
	}
	if !changed("aircraft-arm") {
		aircraftArm = cfg.Tug.AircraftArm
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	simulator := args[0]
	if err := applyPresetAndConfig(cmd, simulator); err != nil {
		return err
	}

	switch simulator {
	case "lever":
		return runLeverScenario()
	case "tug":
		return runTugScenario()
	default:
		return fmt.Errorf("unknown simulator: %s (want lever or tug)", simulator)
	}
}

func runLeverScenario() error {
	set, err := rig.LeverSet(inputArm, arm2)
	if err != nil {
		return err
	}
	report, err := scenario.EvaluateLevers(f1, set)
	if err != nil {
		return err
	}

	fmt.Printf("applied force: %.1f lbf  input arm: %.2f ft  output arm: %.2f ft\n\n", f1, inputArm, arm2)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONFIG\tKIND\tF2 (lbf)\tTORQUE (lb-ft)\tX1 (ft)\tGROUP")
	for i, res := range report.Results {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.3f\t%d\n",
			res.ConfigID, set[i].Kind, res.F2, res.Torque, res.X1, report.Groups[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if report.Balanced {
		fmt.Println("\nbalanced: all diagrams produce the same output force")
	} else {
		fmt.Println("\nnot balanced")
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveLever(report, inputArm, arm2)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runTugScenario() error {
	sfc, err := surface.ByName(surfaceName)
	if err != nil {
		return err
	}
	set, err := rig.TugSet(handleArm, aircraftArm)
	if err != nil {
		return err
	}
	report, err := scenario.EvaluateTug(weightLb, sfc, inclineDeg, set)
	if err != nil {
		return err
	}

	fmt.Printf("weight: %.0f lb  surface: %s (μ=%.3f)  incline: %.2f°\n",
		weightLb, sfc.Name, sfc.Mu, inclineDeg)
	fmt.Printf("handle arm: %.2f ft  aircraft arm: %.2f ft\n\n", handleArm, aircraftArm)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONFIG\tPULL (lbf)\tHANDLE (lbf)\tEFFORT\tMOTOR (lb-ft)\tMOTOR (hp)\tHUMAN OK")
	for i, res := range report.Results {
		mark := ""
		if i == report.BestIndex {
			mark = " *"
		}
		fmt.Fprintf(w, "%s%s\t%.1f\t%.1f\t%s\t%.2f\t%.3f\t%v\n",
			res.ConfigID, mark, res.TotalPull, res.HandleForce, res.Effort,
			res.MotorTorqueLbFt, res.MotorPowerHP, res.FeasibleByHuman)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n* lowest handle force: %s\n", report.Results[report.BestIndex].ConfigID)

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveTug(report, handleArm, aircraftArm)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func settleLever(cmd *cobra.Command, args []string) error {
	set, err := rig.LeverSet(inputArm, arm2)
	if err != nil {
		return err
	}
	cfg, err := rig.LeverByID(set, args[0])
	if err != nil {
		return err
	}

	m := lever.NewMotion(cfg, f1)
	steps := int(duration / dt)
	trace := make([]float64, 0, steps)
	start := time.Now()
	var settledAt float64 = -1
	for i := 0; i < steps; i++ {
		m.Step(dt)
		trace = append(trace, m.RotationDeg)
		if settledAt < 0 && i > 10 && m.Settled() {
			settledAt = float64(i) * dt
			break
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("config: %s (%s)  f1: %.1f lbf\n", cfg.ID, cfg.Kind, f1)
	if settledAt >= 0 {
		fmt.Printf("settled after %.2fs simulated (%v wall)\n\n", settledAt, elapsed)
	} else {
		fmt.Printf("still moving after %.1fs simulated (%v wall)\n\n", duration, elapsed)
	}

	graph := asciigraph.Plot(trace,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("rotation (deg) vs time"),
	)
	fmt.Println(graph)
	fmt.Printf("\nfinal rotation: %+.2f°  output force at rest: %.1f lbf\n",
		m.RotationDeg, m.F2Current())
	return nil
}

func sweepInput(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "lever":
		return sweepLever()
	case "tug":
		return sweepTug()
	default:
		return fmt.Errorf("unknown simulator: %s (want lever or tug)", args[0])
	}
}

func sweepLever() error {
	from, to := sweepFrom, sweepTo
	if to == 0 {
		from, to = 0, 500
	}
	set, err := rig.LeverSet(inputArm, arm2)
	if err != nil {
		return err
	}

	for _, cfg := range set {
		data := make([]float64, 0, sweepSteps)
		for i := 0; i < sweepSteps; i++ {
			v := from + (to-from)*float64(i)/float64(sweepSteps-1)
			res, err := lever.Evaluate(v, cfg)
			if err != nil {
				return err
			}
			data = append(data, res.F2)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: F2 (lbf) vs F1 %.0f..%.0f lbf", cfg.ID, from, to)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func sweepTug() error {
	from, to := sweepFrom, sweepTo
	if to == 0 {
		from, to = tug.MinWeightLb, tug.MaxWeightLb
	}
	sfc, err := surface.ByName(surfaceName)
	if err != nil {
		return err
	}
	set, err := rig.TugSet(handleArm, aircraftArm)
	if err != nil {
		return err
	}

	for _, cfg := range set {
		data := make([]float64, 0, sweepSteps)
		for i := 0; i < sweepSteps; i++ {
			w := from + (to-from)*float64(i)/float64(sweepSteps-1)
			res, err := tug.Evaluate(tug.Scenario{
				WeightLb: w, Surface: sfc, InclineDeg: inclineDeg, Config: cfg,
			})
			if err != nil {
				return err
			}
			data = append(data, res.HandleForce)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: handle force (lbf) vs weight %.0f..%.0f lb on %s",
				cfg.ID, from, to, sfc.Name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIMULATOR\tTIME\tSURFACE\tBALANCED\tBEST")
	for _, run := range runs {
		balanced := "-"
		if run.Balanced != nil {
			balanced = fmt.Sprintf("%v", *run.Balanced)
		}
		sfc := run.Surface
		if sfc == "" {
			sfc = "-"
		}
		best := run.BestConfig
		if best == "" {
			best = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Simulator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			sfc,
			balanced,
			best,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return storage.ExportJSON(enc, meta, header, rows)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, rows, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func showRigs(cmd *cobra.Command, args []string) error {
	leverSet, err := rig.DefaultLeverSet()
	if err != nil {
		return err
	}
	tugSet, err := rig.DefaultTugSet()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "lever configurations:")
	fmt.Fprintln(w, "ID\tKIND\tLABEL\tC (ft)\tX1 (ft)")
	for _, cfg := range leverSet {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.3f\n",
			cfg.ID, cfg.Kind, cfg.Label, cfg.InputArm, cfg.X1())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "tug configurations:")
	fmt.Fprintln(w, "ID\tKIND\tLABEL\tHANDLE (ft)\tX1 (ft)")
	for _, cfg := range tugSet {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.3f\n",
			cfg.ID, cfg.Kind, cfg.Label, cfg.EffectiveHandleArm(), cfg.X1())
	}
	return w.Flush()
}
