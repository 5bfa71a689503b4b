package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/logisticnet/internal/config"
	"github.com/san-kum/logisticnet/internal/lattice"
	"github.com/san-kum/logisticnet/internal/storage"
	"github.com/san-kum/logisticnet/internal/viz"
)

var (
	dataDir    string
	length     int
	rParams    []float64
	sigma      float64
	coupling   string
	seed       int64
	verbose    bool
	configFile string
	preset     string
	plotNode   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logisticnet",
		Short: "coupled logistic map time-series generator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".logisticnet", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a time-series run",
		RunE:  runGenerate,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "generate with live progress view",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotNode, "node", 0, "node to plot (1-based, 0 = all)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list example network presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%-12s %d nodes, sigma %.2f\n", name, len(p.Adjacency), p.Sigma)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&length, "length", config.DefaultLength, "output length (points per node)")
	cmd.Flags().Float64SliceVar(&rParams, "r", []float64{config.DefaultR}, "logistic parameter (one value, or one per node)")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "coupling strength")
	cmd.Flags().StringVar(&coupling, "coupling", config.DefaultCoupling, "coupling type (diffusive or kaneko)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print progress")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named example network")
}

// resolveConfig merges preset, config file and flags into one run
// config: flags win over the file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("r") {
		cfg.R = config.Parameter(rParams)
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("coupling") {
		cfg.Coupling = coupling
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}

func latticeConfig(cfg *config.Config) (lattice.Config, error) {
	scheme, err := lattice.ParseCoupling(cfg.Coupling)
	if err != nil {
		return lattice.Config{}, err
	}
	return lattice.Config{
		Length:   cfg.Length,
		R:        cfg.R,
		Sigma:    cfg.Sigma,
		Coupling: scheme,
		Seed:     cfg.Seed,
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	lcfg, err := latticeConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Println("generating time-series")
		lcfg.Observer = viz.NewDotProgress(os.Stdout)
	}

	start := time.Now()
	res, err := lattice.Generate(cfg.Adjacency, lcfg)
	if res == nil && err != nil {
		return err
	}
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	return saveAndReport(cfg, res, time.Since(start))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	lcfg, err := latticeConfig(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := viz.RunLive(cfg.Adjacency, lcfg)
	if res == nil && err != nil {
		return err
	}
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	return saveAndReport(cfg, res, time.Since(start))
}

func saveAndReport(cfg *config.Config, res *lattice.Result, elapsed time.Duration) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		R:          cfg.R,
		Sigma:      cfg.Sigma,
		Coupling:   cfg.Coupling,
		Seed:       cfg.Seed,
		Attempts:   res.Attempts,
		Degenerate: res.Degenerate,
		Adjacency:  cfg.Adjacency,
	}, res.Series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("nodes: %d\n", res.Nodes)
	fmt.Printf("points: %d\n", len(res.Series))
	if res.Attempts > 1 {
		fmt.Printf("attempts: %d\n", res.Attempts)
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
	fmt.Fprintln(w, "ID\tTIME\tNODES\tLENGTH\tSIGMA\tCOUPLING\tATTEMPTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nodes,
			run.Length,
			run.Sigma,
			run.Coupling,
			run.Attempts,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("coupling: %s sigma: %.3f\n", meta.Coupling, meta.Sigma)
	fmt.Printf("samples: %d\n", len(series))

	var out string
	if plotNode > 0 {
		out, err = viz.RenderSeries(series, plotNode-1)
	} else {
		out, err = viz.RenderAll(series)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
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
