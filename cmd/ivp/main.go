package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ivp/internal/analysis"
	"github.com/san-kum/ivp/internal/automation"
	"github.com/san-kum/ivp/internal/config"
	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/experiment"
	"github.com/san-kum/ivp/internal/metrics"
	"github.com/san-kum/ivp/internal/optim"
	"github.com/san-kum/ivp/internal/problems"
	"github.com/san-kum/ivp/internal/storage"
)

var (
	dataDir string
	verbose bool

	method string
	y0     float64
	t0     float64
	t1     float64
	steps  int
	times  []float64
	params map[string]string

	configFile string
	preset     string

	solverX0      float64
	solverH       float64
	solverEps     float64
	solverMaxIter int

	jobs   int
	levels []int

	paramMin  float64
	paramMax  float64
	numValues int

	trials  int
	perturb float64
	seed    int64

	metricName string
	tolerance  float64
	maxSteps   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ivp",
		Short:         "scalar initial value problem toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ivp", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := newRunCmd()

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [method1] [method2] ...",
		Short: "compare methods on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addGridFlags(compareCmd)
	compareCmd.Flags().IntVar(&jobs, "jobs", 0, "parallel solves (0 = unlimited)")

	convergeCmd := &cobra.Command{
		Use:   "converge [problem] [method]",
		Short: "observed order of convergence under grid refinement",
		Args:  cobra.ExactArgs(2),
		RunE:  convergeMethod,
	}
	addGridFlags(convergeCmd)
	convergeCmd.Flags().IntSliceVar(&levels, "levels", []int{10, 20, 40, 80}, "step counts")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Println(titleStyle.Render("presets for " + args[0]))
			for _, p := range presets {
				c := config.GetPreset(args[0], p)
				fmt.Printf("  %s %s\n", p, subtleStyle.Render(
					fmt.Sprintf("(%s, t=[%g, %g], steps=%d)", c.Method, c.T0, c.T1, c.Steps)))
			}
			return nil
		},
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list methods and problems",
		RunE:  listMethods,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem] [param]",
		Short: "sweep a problem parameter",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	addGridFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&method, "method", "euler", "method")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 0, "first parameter value")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 1, "last parameter value")
	sweepCmd.Flags().IntVar(&numValues, "values", 5, "number of parameter values")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo [problem]",
		Short: "perturb the initial value and check the spread of final values",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonteCarlo,
	}
	addGridFlags(monteCarloCmd)
	monteCarloCmd.Flags().StringVar(&method, "method", "euler", "method")
	monteCarloCmd.Flags().IntVar(&trials, "trials", 50, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturb, "perturb", 0.1, "maximum |y0 perturbation|")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	tuneCmd := &cobra.Command{
		Use:   "tune [problem] [method]",
		Short: "find the coarsest grid meeting an error tolerance",
		Args:  cobra.ExactArgs(2),
		RunE:  tuneSteps,
	}
	addGridFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&metricName, "metric", "max_abs_error", "metric to bound")
	tuneCmd.Flags().Float64Var(&tolerance, "tol", 1e-4, "tolerance")
	tuneCmd.Flags().IntVar(&maxSteps, "max-steps", 1<<20, "largest step count to try")

	rootCmd.AddCommand(runCmd, listCmd, exportCmd, exportCSVCmd, exportJSONCmd, compareCmd,
		convergeCmd, presetsCmd, methodsCmd, scenarioCmd, sweepCmd, monteCarloCmd, tuneCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "solve a problem and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	addGridFlags(runCmd)
	runCmd.Flags().StringVar(&method, "method", "euler", "method")
	runCmd.Flags().Float64SliceVar(&times, "times", nil, "explicit evaluation times (overrides t0/t1/steps)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&solverX0, "solver-x0", 1.0, "newton starting guess")
	runCmd.Flags().Float64Var(&solverH, "solver-h", 0, "newton finite-difference step")
	runCmd.Flags().Float64Var(&solverEps, "solver-eps", 0, "newton tolerance")
	runCmd.Flags().IntVar(&solverMaxIter, "solver-max-iter", 0, "newton iteration cap")
	return runCmd
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial value")
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "start time")
	cmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "end time")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().StringToStringVar(&params, "param", nil, "problem parameter (name=value)")
}

func parseParams() (map[string]float64, error) {
	if len(params) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(params))
	for name, raw := range params {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func applyParams(p problems.Problem, values map[string]float64) error {
	if len(values) == 0 {
		return nil
	}
	tunable, ok := p.(dynamo.Configurable)
	if !ok {
		return fmt.Errorf("problem %s is not tunable", p.Name())
	}
	for name, v := range values {
		if err := tunable.SetParam(name, v); err != nil {
			return err
		}
	}
	return nil
}

// resolveRunConfig layers preset, config file and flags, in increasing
// precedence.
func resolveRunConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Problem = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Problem))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Problem = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("y0") {
		cfg.Y0 = y0
	}
	if flags.Changed("t0") {
		cfg.T0 = t0
	}
	if flags.Changed("t1") {
		cfg.T1 = t1
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("times") {
		cfg.Times = times
	}
	if flags.Changed("param") {
		values, err := parseParams()
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(values))
		}
		for name, v := range values {
			cfg.Params[name] = v
		}
	}
	if flags.Changed("solver-x0") {
		x0 := solverX0
		cfg.Solver.X0 = &x0
	}
	if flags.Changed("solver-h") {
		cfg.Solver.H = solverH
	}
	if flags.Changed("solver-eps") {
		cfg.Solver.Eps = solverEps
	}
	if flags.Changed("solver-max-iter") {
		cfg.Solver.MaxIter = solverMaxIter
	}

	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	problem, err := registry.GetProblem(cfg.Problem)
	if err != nil {
		return err
	}

	m, err := registry.GetMethod(cfg.Method)
	if err != nil {
		return err
	}
	if !cfg.Solver.IsZero() && !experiment.ApplySolver(m, cfg.Solver.Newton()) {
		slog.Warn("solver settings ignored by explicit method", "method", cfg.Method)
	}

	exp := experiment.New(experiment.Config{
		Problem: cfg.Problem,
		Method:  cfg.Method,
		Y0:      cfg.Y0,
		T0:      cfg.T0,
		T1:      cfg.T1,
		Steps:   cfg.Steps,
		Times:   cfg.Times,
		Params:  cfg.Params,
	})
	if err := exp.Setup(problem, m, registry.DefaultMetrics()); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("solving %s with %s", cfg.Problem, cfg.Method)))
	start := time.Now()

	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(result, cfg.Params)
	if err != nil {
		return err
	}

	fmt.Printf("%s %v\n", labelStyle.Render("completed in"), elapsed)
	fmt.Printf("%s %s\n", labelStyle.Render("run id:"), runID)
	fmt.Printf("%s %d\n", labelStyle.Render("points:"), len(result.Times))
	fmt.Printf("%s %s\n", labelStyle.Render("y(t1):"), valueStyle.Render(num(result.Trajectory.Last())))
	fmt.Println(headerStyle.Render("\nmetrics:"))
	printMetrics(result.Metrics)

	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s %s\n", labelStyle.Render(name+":"), valueStyle.Render(sci(m[name])))
	}
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tTIME\tINTERVAL\tPOINTS\tMAX_ERR")

	for _, run := range runs {
		maxErr, ok := run.Metrics["max_abs_error"]
		if !ok {
			maxErr = math.NaN()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%g, %g]\t%d\t%s\n",
			run.ID,
			run.Problem,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.T0,
			run.T1,
			run.Points,
			sci(maxErr),
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

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	if len(result.Trajectory) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "y", "exact", "error"}); err != nil {
		return err
	}

	errs := result.Errors()
	for i := range result.Trajectory {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'g', -1, 64),
			strconv.FormatFloat(result.Trajectory[i], 'g', -1, 64),
			"",
			"",
		}
		if errs != nil {
			row[2] = strconv.FormatFloat(result.Exact[i], 'g', -1, 64)
			row[3] = strconv.FormatFloat(errs[i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	return storage.WriteJSON(os.Stdout, args[0], result)
}

func compareMethods(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	problem, err := registry.GetProblem(args[0])
	if err != nil {
		return err
	}
	values, err := parseParams()
	if err != nil {
		return err
	}
	if err := applyParams(problem, values); err != nil {
		return err
	}

	ens := dynamo.NewEnsemble(jobs)
	for _, name := range args[1:] {
		m, err := registry.GetMethod(name)
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("%-16s error: %v", name, err)))
			continue
		}
		ens.Add(name, m)
	}
	if ens.Len() == 0 {
		return fmt.Errorf("no valid methods to compare")
	}

	grid := dynamo.Grid(t0, t1, steps)
	exact := problems.ExactTrajectory(problem, grid, y0)

	fmt.Println(titleStyle.Render(fmt.Sprintf("comparing methods for %s (y0=%g, t=[%g, %g], steps=%d)",
		problem.Name(), y0, t0, t1, steps)))
	fmt.Println()

	start := time.Now()
	outcomes, err := ens.Run(cmd.Context(), problem.Field(), grid, y0)
	if err != nil {
		return err
	}
	slog.Debug("ensemble complete", "members", ens.Len(), "elapsed", time.Since(start))

	fmt.Println(cell(headerStyle, "method", 18) + cell(headerStyle, "y(t1)", 20) +
		cell(headerStyle, "final_error", 14) + cell(headerStyle, "max_abs_error", 14) + cell(headerStyle, "rms_error", 14))
	fmt.Println(subtleStyle.Render(strings.Repeat("-", 80)))

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Println(cell(labelStyle, o.Name, 18) + errorStyle.Render(o.Err.Error()))
			continue
		}
		maxAbs, rms := metrics.Norms(o.Trajectory, exact)
		final := o.Trajectory.Last()
		finalErr := math.Abs(final - exact[len(exact)-1])
		fmt.Println(cell(labelStyle, o.Name, 18) + cell(valueStyle, num(final), 20) +
			cell(valueStyle, sci(finalErr), 14) + cell(valueStyle, sci(maxAbs), 14) + cell(valueStyle, sci(rms), 14))
	}

	return nil
}

func convergeMethod(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	problem, err := registry.GetProblem(args[0])
	if err != nil {
		return err
	}
	values, err := parseParams()
	if err != nil {
		return err
	}
	if err := applyParams(problem, values); err != nil {
		return err
	}

	m, err := registry.GetMethod(args[1])
	if err != nil {
		return err
	}

	study, err := analysis.ConvergenceStudy(cmd.Context(), m, problem, y0, t0, t1, levels)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("convergence of %s on %s", args[1], study.Problem)))
	fmt.Println()
	fmt.Println(cell(headerStyle, "steps", 10) + cell(headerStyle, "h", 14) +
		cell(headerStyle, "error", 14) + cell(headerStyle, "order", 10))
	fmt.Println(subtleStyle.Render(strings.Repeat("-", 48)))

	for _, l := range study.Levels {
		order := "-"
		if !math.IsNaN(l.Order) {
			order = strconv.FormatFloat(l.Order, 'f', 3, 64)
		}
		fmt.Println(cell(labelStyle, strconv.Itoa(l.Steps), 10) + cell(valueStyle, sci(l.H), 14) +
			cell(valueStyle, sci(l.Error), 14) + cell(valueStyle, order, 10))
	}

	fmt.Printf("\n%s %s\n", labelStyle.Render("fitted order:"), valueStyle.Render(strconv.FormatFloat(study.Slope, 'f', 3, 64)))
	return nil
}

func listMethods(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	fmt.Println(titleStyle.Render("methods"))
	for _, name := range registry.ListMethods() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println(titleStyle.Render("\nproblems"))
	for _, name := range registry.ListProblems() {
		p, err := registry.GetProblem(name)
		if err != nil {
			return err
		}
		line := "  " + name
		if c, ok := p.(dynamo.Configurable); ok {
			ps := c.GetParams()
			keys := make([]string, 0, len(ps))
			for k := range ps {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%g", k, ps[k]))
			}
			if len(parts) > 0 {
				line += " " + subtleStyle.Render("("+strings.Join(parts, ", ")+")")
			}
		}
		fmt.Println(line)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("scenario " + scenario.Name))
	if scenario.Description != "" {
		fmt.Println(subtleStyle.Render(scenario.Description))
	}

	results, runErr := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry())

	for i := range results {
		result := &results[i]
		step := scenario.Steps[i]

		runID, err := st.Save(result, step.Params)
		if err != nil {
			return err
		}
		if step.SaveAs != "" {
			if err := storage.ExportJSON(step.SaveAs, runID, result); err != nil {
				return err
			}
		}

		fmt.Printf("%s %s/%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("[%d]", i+1)),
			result.Problem,
			result.Method,
			labelStyle.Render("run id:"),
			runID,
		)
		printMetrics(result.Metrics)
	}

	return runErr
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.ParameterSweep{
		Problem:   args[0],
		Method:    method,
		ParamName: args[1],
		ParamMin:  paramMin,
		ParamMax:  paramMax,
		NumSteps:  numValues,
		Y0:        y0,
		T0:        t0,
		T1:        t1,
		Steps:     steps,
	}

	results, err := automation.RunSweep(cmd.Context(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("sweep of %s.%s with %s", args[0], args[1], method)))
	fmt.Println()
	fmt.Println(cell(headerStyle, args[1], 14) + cell(headerStyle, "y(t1)", 20) +
		cell(headerStyle, "exact", 20) + cell(headerStyle, "max_abs_error", 14))
	fmt.Println(subtleStyle.Render(strings.Repeat("-", 68)))

	for _, r := range results {
		fmt.Println(cell(labelStyle, num(r.ParamValue), 14) + cell(valueStyle, num(r.Final), 20) +
			cell(valueStyle, num(r.Exact), 20) + cell(valueStyle, sci(r.MaxError), 14))
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg := &automation.MonteCarloConfig{
		Problem:      args[0],
		Method:       method,
		Y0:           y0,
		Perturbation: perturb,
		NumTrials:    trials,
		T0:           t0,
		T1:           t1,
		Steps:        steps,
		Seed:         seed,
	}

	results, err := automation.RunMonteCarlo(cmd.Context(), cfg, experiment.NewRegistry())
	if err != nil {
		return err
	}

	stable, unstable := automation.MonteCarloStats(results)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range results {
		if !r.Stable {
			continue
		}
		lo = math.Min(lo, r.Final)
		hi = math.Max(hi, r.Final)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("monte carlo of %s with %s (%d trials, y0=%g±%g)",
		args[0], method, len(results), y0, perturb)))
	fmt.Printf("%s %d\n", labelStyle.Render("stable:"), stable)
	fmt.Printf("%s %d\n", labelStyle.Render("unstable:"), unstable)
	if stable > 0 {
		fmt.Printf("%s [%s, %s]\n", labelStyle.Render("y(t1) range:"), valueStyle.Render(num(lo)), valueStyle.Render(num(hi)))
	}
	return nil
}

func tuneSteps(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	values, err := parseParams()
	if err != nil {
		return err
	}

	search := optim.NewStepSearch(metricName, tolerance)
	if cmd.Flags().Changed("steps") {
		search.Start = steps
	}
	search.Max = maxSteps

	build := func(n int) (*experiment.Experiment, error) {
		p, err := registry.GetProblem(args[0])
		if err != nil {
			return nil, err
		}
		m, err := registry.GetMethod(args[1])
		if err != nil {
			return nil, err
		}
		exp := experiment.New(experiment.Config{
			Problem: args[0],
			Method:  args[1],
			Y0:      y0,
			T0:      t0,
			T1:      t1,
			Steps:   n,
			Params:  values,
		})
		if err := exp.Setup(p, m, registry.DefaultMetrics()); err != nil {
			return nil, err
		}
		return exp, nil
	}

	probes, err := search.Search(cmd.Context(), build)

	fmt.Println(titleStyle.Render(fmt.Sprintf("tuning %s on %s for %s <= %g", args[1], args[0], metricName, tolerance)))
	for _, p := range probes {
		fmt.Println(cell(labelStyle, strconv.Itoa(p.Steps), 10) + valueStyle.Render(sci(p.Value)))
	}
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %d\n", labelStyle.Render("steps:"), probes[len(probes)-1].Steps)
	return nil
}
