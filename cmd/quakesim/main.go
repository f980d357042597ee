// Command quakesim computes the seismic time-history response of
// single-degree-of-freedom oscillators using the GSSSS family of
// single-step integration schemes.
//
// Usage:
//
//	quakesim run elcentro.txt --k 1000 --ksi 0.05 --scheme u0v0opt
//	quakesim run --preset ricker --save
//	quakesim spectrum elcentro.txt --points 120 --plot spectrum.png
//	quakesim fourier elcentro.txt
//	quakesim compare elcentro.txt u0v0opt hht cdm wilson
//	quakesim live --preset dissipative
//	quakesim schemes
//	quakesim runs
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/quakesim/internal/analysis"
	"github.com/san-kum/quakesim/internal/config"
	"github.com/san-kum/quakesim/internal/excite"
	"github.com/san-kum/quakesim/internal/export"
	"github.com/san-kum/quakesim/internal/gssss"
	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/sdof"
	"github.com/san-kum/quakesim/internal/spectrum"
	"github.com/san-kum/quakesim/internal/storage"
	"github.com/san-kum/quakesim/internal/viz"
)

var (
	dataDir    string
	stiffness  float64
	mass       float64
	damping    float64
	step       float64
	recordDt   float64
	scale      float64
	schemeName string
	rho        float64
	u0         float64
	v0         float64
	forceInput bool
	synthName  string
	amplitude  float64
	frequency  float64
	samples    int
	configFile string
	preset     string
	saveRun    bool
	plotOut    string
	csvOut     string
	jsonOut    string

	// spectrum sweep
	tmin    float64
	tmax    float64
	points  int
	workers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quakesim",
		Short: "Seismic response of SDOF oscillators via GSSSS integration",
		Long: `quakesim computes the linear time-history response of a
single-degree-of-freedom oscillator to a ground motion record, using the
unified GSSSS (generalized single-step single-solve) integration family.
Thirteen named schemes cover the classical algorithms (Newmark, HHT-alpha,
WBZ-alpha, central difference, Wilson-theta, ...) plus the optimal
zero-order and first-order overshoot designs.`,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".quakesim", "data directory for stored runs")

	runCmd := &cobra.Command{
		Use:   "run [record-file]",
		Short: "Compute the response to a ground motion record",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runResponse,
	}
	runCmd.Flags().Float64Var(&stiffness, "k", config.DefaultStiffness, "stiffness (N/m)")
	runCmd.Flags().Float64Var(&mass, "m", config.DefaultMass, "mass (kg)")
	runCmd.Flags().Float64Var(&damping, "ksi", config.DefaultDamping, "critical damping ratio")
	runCmd.Flags().Float64Var(&step, "dt", config.DefaultStep, "analysis time step (s)")
	runCmd.Flags().Float64Var(&recordDt, "record-dt", config.DefaultStep, "sample step for single-column record files (s)")
	runCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scale factor applied to the record")
	runCmd.Flags().StringVar(&schemeName, "scheme", config.DefaultScheme, "integration scheme (see 'quakesim schemes')")
	runCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "high-frequency spectral radius")
	runCmd.Flags().Float64Var(&u0, "u0", 0, "initial displacement (m)")
	runCmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity (m/s)")
	runCmd.Flags().BoolVar(&forceInput, "force-input", false, "treat record samples as applied force, not ground acceleration")
	runCmd.Flags().StringVar(&synthName, "synth", "ricker", "synthetic record when no file is given (impulse|harmonic|decaying|pulse|ricker)")
	runCmd.Flags().Float64Var(&amplitude, "amp", 1.0, "synthetic record amplitude")
	runCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "synthetic record frequency (Hz)")
	runCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "synthetic record length")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (YAML)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "store the run under the data directory")
	runCmd.Flags().StringVar(&plotOut, "plot", "", "write PNG track plots into this directory")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write tracks as CSV to this path ('-' for stdout)")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write the full run as JSON to this path ('-' for stdout)")

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the available integration schemes",
		RunE:  listSchemes,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [record-file]",
		Short: "Compute the elastic response spectrum of a record",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&damping, "ksi", config.DefaultDamping, "critical damping ratio")
	spectrumCmd.Flags().Float64Var(&step, "dt", config.DefaultStep, "analysis time step (s)")
	spectrumCmd.Flags().Float64Var(&recordDt, "record-dt", config.DefaultStep, "sample step for single-column record files (s)")
	spectrumCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scale factor applied to the record")
	spectrumCmd.Flags().StringVar(&schemeName, "scheme", config.DefaultScheme, "integration scheme")
	spectrumCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "high-frequency spectral radius")
	spectrumCmd.Flags().StringVar(&synthName, "synth", "ricker", "synthetic record when no file is given")
	spectrumCmd.Flags().Float64Var(&amplitude, "amp", 1.0, "synthetic record amplitude")
	spectrumCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "synthetic record frequency (Hz)")
	spectrumCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "synthetic record length")
	spectrumCmd.Flags().Float64Var(&tmin, "tmin", 0.05, "shortest period (s)")
	spectrumCmd.Flags().Float64Var(&tmax, "tmax", 5.0, "longest period (s)")
	spectrumCmd.Flags().IntVar(&points, "points", 60, "number of log-spaced periods")
	spectrumCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	spectrumCmd.Flags().StringVar(&csvOut, "csv", "", "write spectrum as CSV to this path ('-' for stdout)")
	spectrumCmd.Flags().StringVar(&plotOut, "plot", "", "write spectrum PNG to this path")

	fourierCmd := &cobra.Command{
		Use:   "fourier [record-file]",
		Short: "Show the Fourier amplitude spectrum of a record",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFourier,
	}
	fourierCmd.Flags().Float64Var(&recordDt, "record-dt", config.DefaultStep, "sample step for single-column record files (s)")
	fourierCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scale factor applied to the record")
	fourierCmd.Flags().StringVar(&synthName, "synth", "ricker", "synthetic record when no file is given")
	fourierCmd.Flags().Float64Var(&amplitude, "amp", 1.0, "synthetic record amplitude")
	fourierCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "synthetic record frequency (Hz)")
	fourierCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "synthetic record length")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "Export stored run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run-id]",
		Short: "Export stored run tracks as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunCSV,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [record-file|-] [scheme ...]",
		Short: "Run several schemes on one record and compare peaks",
		Long: `Compare runs the same record through each named scheme and prints the
peak response and wall time per scheme. Pass '-' as the record to use the
synthetic record selected by --synth.`,
		Args: cobra.MinimumNArgs(2),
		RunE: compareSchemes,
	}
	compareCmd.Flags().Float64Var(&stiffness, "k", config.DefaultStiffness, "stiffness (N/m)")
	compareCmd.Flags().Float64Var(&mass, "m", config.DefaultMass, "mass (kg)")
	compareCmd.Flags().Float64Var(&damping, "ksi", config.DefaultDamping, "critical damping ratio")
	compareCmd.Flags().Float64Var(&step, "dt", config.DefaultStep, "analysis time step (s)")
	compareCmd.Flags().Float64Var(&recordDt, "record-dt", config.DefaultStep, "sample step for single-column record files (s)")
	compareCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scale factor applied to the record")
	compareCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "high-frequency spectral radius")
	compareCmd.Flags().BoolVar(&forceInput, "force-input", false, "treat record samples as applied force, not ground acceleration")
	compareCmd.Flags().StringVar(&synthName, "synth", "ricker", "synthetic record when the record is '-'")
	compareCmd.Flags().Float64Var(&amplitude, "amp", 1.0, "synthetic record amplitude")
	compareCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "synthetic record frequency (Hz)")
	compareCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "synthetic record length")

	liveCmd := &cobra.Command{
		Use:   "live [record-file]",
		Short: "Replay the computed response in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&stiffness, "k", config.DefaultStiffness, "stiffness (N/m)")
	liveCmd.Flags().Float64Var(&mass, "m", config.DefaultMass, "mass (kg)")
	liveCmd.Flags().Float64Var(&damping, "ksi", config.DefaultDamping, "critical damping ratio")
	liveCmd.Flags().Float64Var(&step, "dt", config.DefaultStep, "analysis time step (s)")
	liveCmd.Flags().Float64Var(&recordDt, "record-dt", config.DefaultStep, "sample step for single-column record files (s)")
	liveCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "scale factor applied to the record")
	liveCmd.Flags().StringVar(&schemeName, "scheme", config.DefaultScheme, "integration scheme")
	liveCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "high-frequency spectral radius")
	liveCmd.Flags().Float64Var(&u0, "u0", 0, "initial displacement (m)")
	liveCmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity (m/s)")
	liveCmd.Flags().BoolVar(&forceInput, "force-input", false, "treat record samples as applied force, not ground acceleration")
	liveCmd.Flags().StringVar(&synthName, "synth", "ricker", "synthetic record when no file is given")
	liveCmd.Flags().Float64Var(&amplitude, "amp", 1.0, "synthetic record amplitude")
	liveCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "synthetic record frequency (Hz)")
	liveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "synthetic record length")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (YAML)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List bundled run presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, schemesCmd, spectrumCmd, fourierCmd, runsCmd,
		showCmd, exportCmd, exportCSVCmd, compareCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolveConfig builds the effective configuration: defaults, then preset,
// then config file, then explicit flags, then the positional record path.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
		// Work on a copy so overrides never touch the preset table.
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyOverrides(cmd, cfg)

	if len(args) == 1 && args[0] != "-" {
		cfg.Record.Path = args[0]
	}
	return cfg, nil
}

// applyOverrides copies explicitly-set flags into cfg, so flags win over
// preset and config-file values without clobbering them with defaults.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("k") {
		cfg.System.Stiffness = stiffness
	}
	if f.Changed("m") {
		cfg.System.Mass = mass
	}
	if f.Changed("ksi") {
		cfg.System.Damping = damping
	}
	if f.Changed("dt") {
		cfg.System.Dt = step
	}
	if f.Changed("record-dt") {
		cfg.Record.Dt = recordDt
	}
	if f.Changed("scale") {
		cfg.Record.Scale = scale
	}
	if f.Changed("scheme") {
		cfg.Scheme = schemeName
	}
	if f.Changed("rho") {
		cfg.Rho = rho
	}
	if f.Changed("u0") {
		cfg.Initial.Disp = u0
	}
	if f.Changed("v0") {
		cfg.Initial.Vel = v0
	}
	if f.Changed("force-input") {
		cfg.Record.ForceInput = forceInput
	}
	if f.Changed("synth") {
		cfg.Record.Synth = synthName
	}
	if f.Changed("amp") {
		cfg.Record.Amplitude = amplitude
	}
	if f.Changed("freq") {
		cfg.Record.Frequency = frequency
	}
	if f.Changed("samples") {
		cfg.Record.Samples = samples
	}
}

// loadRecord produces the excitation record: from file when a path is set,
// otherwise synthesized per the config. A non-zero targetDt resamples the
// record onto the analysis step.
func loadRecord(cfg *config.Config, targetDt float64) (*excite.Record, error) {
	var rec *excite.Record
	var err error
	if cfg.Record.Path != "" {
		rec, err = excite.Load(cfg.Record.Path, cfg.Record.Dt)
		if err != nil {
			return nil, fmt.Errorf("failed to load record: %w", err)
		}
	} else {
		rec, err = synthRecord(cfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Record.Scale != 1 && cfg.Record.Scale != 0 {
		scaled := make([]float64, len(rec.Samples))
		for i, v := range rec.Samples {
			scaled[i] = v * cfg.Record.Scale
		}
		rec = &excite.Record{Name: rec.Name, Dt: rec.Dt, Samples: scaled}
	}

	if targetDt > 0 && rec.Dt != targetDt {
		rec, err = excite.Resample(rec, targetDt)
		if err != nil {
			return nil, fmt.Errorf("failed to resample record: %w", err)
		}
	}
	return rec, nil
}

func synthRecord(cfg *config.Config) (*excite.Record, error) {
	r := cfg.Record
	dt := cfg.System.Dt
	switch r.Synth {
	case "impulse":
		return excite.Impulse(r.Amplitude, dt, r.Samples), nil
	case "harmonic":
		return excite.Harmonic(r.Amplitude, r.Frequency, dt, r.Samples), nil
	case "decaying":
		decay := r.Decay
		if decay == 0 {
			decay = 0.5
		}
		return excite.DecayingHarmonic(r.Amplitude, r.Frequency, decay, dt, r.Samples), nil
	case "pulse":
		width := r.Width
		if width == 0 {
			width = 0.5
		}
		return excite.Pulse(r.Amplitude, width, dt, r.Samples), nil
	case "ricker":
		return excite.Ricker(r.Amplitude, r.Frequency, dt, r.Samples), nil
	default:
		return nil, fmt.Errorf("unknown synthetic record %q (impulse|harmonic|decaying|pulse|ricker)", r.Synth)
	}
}

func computeResponse(cfg *config.Config) (sdof.System, *excite.Record, *response.History, error) {
	sys := sdof.System{
		K:   cfg.System.Stiffness,
		M:   cfg.System.Mass,
		Ksi: cfg.System.Damping,
		Dt:  cfg.System.Dt,
	}
	rec, err := loadRecord(cfg, sys.Dt)
	if err != nil {
		return sys, nil, nil, err
	}
	opts := response.Options{
		Scheme:     cfg.Scheme,
		Rho:        cfg.Rho,
		U0:         cfg.Initial.Disp,
		V0:         cfg.Initial.Vel,
		ForceInput: cfg.Record.ForceInput,
	}
	hist, err := response.Compute(sys, rec.Samples, opts)
	if err != nil {
		return sys, nil, nil, err
	}
	return sys, rec, hist, nil
}

func runResponse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	sys, rec, hist, err := computeResponse(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, n := range hist.Notices {
		fmt.Printf("warning: %s\n", n.String())
	}

	fmt.Printf("record: %s (%d samples, dt=%.4gs, %.2fs)\n",
		rec.Name, len(rec.Samples), rec.Dt, rec.Duration())
	fmt.Printf("system: T=%.4gs  f=%.4g Hz  ksi=%.3g  omega*dt=%.4g\n",
		sys.Period(), 1/sys.Period(), sys.Ksi, sys.OmegaDt())
	fmt.Printf("scheme: %s (rho %g), computed in %s\n\n", hist.Scheme, hist.Rho, elapsed)

	graph := asciigraph.Plot(hist.Disp,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("relative displacement (m)"))
	fmt.Println(graph)
	fmt.Println()

	printPeaks(hist)

	if !cfg.Record.ForceInput {
		ia := metrics.AriasIntensity(rec.Samples, rec.Dt)
		_, _, dur := metrics.SignificantDuration(rec.Samples, rec.Dt)
		fmt.Printf("\narias intensity: %.4g m/s\n", ia)
		fmt.Printf("significant duration (5-95%%): %.2fs\n", dur)
	}

	drive := make([]float64, len(rec.Samples))
	if cfg.Record.ForceInput {
		copy(drive, rec.Samples)
	} else {
		for i, ag := range rec.Samples {
			drive[i] = -sys.M * ag
		}
	}
	input := metrics.InputEnergy(sys.Dt, drive, hist.Vel)
	damped := metrics.DampedEnergy(sys.Damping(), sys.Dt, hist.Vel)
	if n := len(input); n > 0 {
		fmt.Printf("input energy: %.4g J (dissipated %.4g J)\n", input[n-1], damped[n-1])
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(rec.Name, sys, hist)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	if csvOut != "" {
		if err := writeOut(csvOut, func(w io.Writer) error {
			return export.HistoryCSV(w, hist)
		}); err != nil {
			return err
		}
		if csvOut != "-" {
			fmt.Printf("csv: %s\n", csvOut)
		}
	}
	if jsonOut != "" {
		if err := writeOut(jsonOut, func(w io.Writer) error {
			return export.HistoryJSON(w, rec.Name, sys, hist)
		}); err != nil {
			return err
		}
		if jsonOut != "-" {
			fmt.Printf("json: %s\n", jsonOut)
		}
	}
	if plotOut != "" {
		paths, err := export.HistoryPNGs(plotOut, rec.Name, hist)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("plot: %s\n", p)
		}
	}
	return nil
}

func printPeaks(hist *response.History) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRACK\tPEAK\tAT")
	rows := []struct {
		name string
		data []float64
	}{
		{"disp (m)", hist.Disp},
		{"vel (m/s)", hist.Vel},
		{"accel (m/s^2)", hist.Accel},
		{"force (N)", hist.Force},
	}
	for _, r := range rows {
		idx, peak := metrics.PeakAt(r.data)
		fmt.Fprintf(w, "%s\t%+.6e\t%.3fs\n", r.name, peak, hist.Time(idx))
	}
	w.Flush()
}

func listSchemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tRHO RANGE\tALIASES\tSUMMARY")
	for _, s := range gssss.Schemes() {
		rhoRange := "fixed"
		if s.UsesRho {
			rhoRange = fmt.Sprintf("[%g, %g]", s.RhoMin, s.RhoMax)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Name, s.Family, rhoRange, strings.Join(s.Aliases, ","), s.Summary)
	}
	return w.Flush()
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	// The sweep integrates each oscillator at the record's own step unless
	// an analysis step was set explicitly.
	targetDt := 0.0
	if cmd.Flags().Changed("dt") {
		targetDt = cfg.System.Dt
	}
	rec, err := loadRecord(cfg, targetDt)
	if err != nil {
		return err
	}

	periods, err := spectrum.Periods(tmin, tmax, points)
	if err != nil {
		return err
	}
	req := spectrum.Request{
		Periods: periods,
		Ksi:     cfg.System.Damping,
		Scheme:  cfg.Scheme,
		Rho:     cfg.Rho,
		Workers: workers,
	}

	start := time.Now()
	pts, err := spectrum.Compute(context.Background(), rec, req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("response spectrum of %s (ksi=%.3g, scheme %s, %d periods in %s)\n\n",
		rec.Name, req.Ksi, cfg.Scheme, len(pts), elapsed)

	psa := make([]float64, len(pts))
	for i, p := range pts {
		psa[i] = p.PSa
	}
	graph := asciigraph.Plot(psa,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("PSa (m/s^2), periods %.3gs to %.3gs (log-spaced)", tmin, tmax)))
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tSD\tPSV\tPSA")
	for _, p := range pts {
		fmt.Fprintf(w, "%.4fs\t%.4e\t%.4e\t%.4e\n", p.Period, p.Sd, p.PSv, p.PSa)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if csvOut != "" {
		if err := writeOut(csvOut, func(w io.Writer) error {
			return export.SpectrumCSV(w, pts)
		}); err != nil {
			return err
		}
		if csvOut != "-" {
			fmt.Printf("\ncsv: %s\n", csvOut)
		}
	}
	if plotOut != "" {
		if err := export.SpectrumPNG(plotOut, pts); err != nil {
			return err
		}
		fmt.Printf("\nplot: %s\n", plotOut)
	}
	return nil
}

func runFourier(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rec, err := loadRecord(cfg, 0)
	if err != nil {
		return err
	}

	fas := analysis.FourierAmplitude(rec.Samples, rec.Dt)
	if len(fas.Amps) < 2 {
		return fmt.Errorf("record too short for a spectrum")
	}

	fmt.Printf("record: %s (%d samples, dt=%.4gs)\n", rec.Name, len(rec.Samples), rec.Dt)
	fmt.Printf("nyquist: %.3f Hz, bin width: %.4f Hz\n\n",
		fas.Freqs[len(fas.Freqs)-1], fas.Df)

	graph := asciigraph.Plot(fas.Amps[1:],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("fourier amplitude"))
	fmt.Println(graph)
	fmt.Println()

	f := analysis.DominantFrequency(rec.Samples, rec.Dt)
	fmt.Printf("dominant frequency: %.3f Hz\n", f)
	if f > 0 {
		fmt.Printf("dominant period: %.3f s\n", 1/f)
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
	fmt.Fprintln(w, "ID\tRECORD\tSCHEME\tRHO\tSAMPLES\tDT\tPEAK DISP\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%.4gs\t%.4e\t%s\n",
			run.ID, run.Record, run.Scheme, run.Rho, run.Samples, run.Dt,
			run.Peaks["disp"], run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tracks, err := st.LoadTracks(args[0])
	if err != nil {
		return err
	}
	if len(tracks.Times) == 0 {
		return fmt.Errorf("run %s has no samples", args[0])
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("record: %s\n", meta.Record)
	fmt.Printf("scheme: %s (rho %g)\n", meta.Scheme, meta.Rho)
	fmt.Printf("system: k=%g N/m  m=%g kg  ksi=%g  dt=%gs\n",
		meta.Stiffness, meta.Mass, meta.Damping, meta.Dt)
	fmt.Printf("samples: %d\n", meta.Samples)
	for _, n := range meta.Notices {
		fmt.Printf("warning: %s\n", n)
	}
	fmt.Println()

	plots := []struct {
		name string
		data []float64
	}{
		{"displacement (m)", tracks.Disp},
		{"velocity (m/s)", tracks.Vel},
		{"acceleration (m/s^2)", tracks.Accel},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(p.name))
		fmt.Println(graph)
		fmt.Println()
	}
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

func exportRunCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tracks, err := st.LoadTracks(args[0])
	if err != nil {
		return err
	}
	if len(tracks.Times) == 0 {
		return fmt.Errorf("run %s has no samples", args[0])
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"time", "disp", "vel", "accel", "force"}); err != nil {
		return err
	}
	for i := range tracks.Times {
		row := []string{
			strconv.FormatFloat(tracks.Times[i], 'g', 12, 64),
			strconv.FormatFloat(tracks.Disp[i], 'g', 12, 64),
			strconv.FormatFloat(tracks.Vel[i], 'g', 12, 64),
			strconv.FormatFloat(tracks.Accel[i], 'g', 12, 64),
			strconv.FormatFloat(tracks.Force[i], 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[:1])
	if err != nil {
		return err
	}
	schemes := args[1:]

	sys := sdof.System{
		K:   cfg.System.Stiffness,
		M:   cfg.System.Mass,
		Ksi: cfg.System.Damping,
		Dt:  cfg.System.Dt,
	}
	if err := sys.Validate(); err != nil {
		return err
	}
	rec, err := loadRecord(cfg, sys.Dt)
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d schemes on %s (dt=%.4gs, %d samples)\n\n",
		len(schemes), rec.Name, rec.Dt, len(rec.Samples))
	fmt.Printf("%-16s  %13s  %13s  %13s  %9s\n",
		"scheme", "peak disp", "peak accel", "rms disp", "time")
	fmt.Println(strings.Repeat("-", 72))

	for _, name := range schemes {
		opts := response.Options{
			Scheme:     name,
			Rho:        cfg.Rho,
			U0:         cfg.Initial.Disp,
			V0:         cfg.Initial.Vel,
			ForceInput: cfg.Record.ForceInput,
		}
		start := time.Now()
		hist, err := response.Compute(sys, rec.Samples, opts)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-16s  error: %v\n", name, err)
			continue
		}
		note := ""
		if metrics.Diverged(hist.Disp, 1e3) {
			note = "  UNSTABLE"
		}
		fmt.Printf("%-16s  %13.6e  %13.6e  %13.6e  %9s%s\n",
			hist.Scheme,
			metrics.Peak(hist.Disp),
			metrics.Peak(hist.Accel),
			metrics.RMS(hist.Disp),
			elapsed.Round(10*time.Microsecond),
			note)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, rec, hist, err := computeResponse(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(sys, rec, hist)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("visualization error: %w", err)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCHEME\tSYNTH\tSAMPLES\tDT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%gs\n",
			name, p.Scheme, p.Record.Synth, p.Record.Samples, p.System.Dt)
	}
	return w.Flush()
}

// writeOut writes through fn to path, or to stdout when path is "-".
func writeOut(path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
