package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/analysis"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/config"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/export"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/render"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/storage"
	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	freq1     float64
	freq2     float64
	damping   float64
	stiffness float64
	duration  float64

	pluckString int
	pluckPos    float64
	pluckAmp    float64

	seconds float64
	gain    float64
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "soundlab",
		Short: "coupled sympathetic-string simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.New()
			s.Pluck(0, 0.5, 1.0)
			return viz.Run(s)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".soundlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch simulation and save the result",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			s := sim.New()
			cfg.Apply(s)
			return viz.Run(s)
		},
	}
	addConfigFlags(liveCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "bounce the simulation to a WAV file",
		RunE:  renderWAV,
	}
	addConfigFlags(renderCmd)
	renderCmd.Flags().Float64Var(&seconds, "seconds", 3.0, "audio length")
	renderCmd.Flags().Float64Var(&gain, "gain", 4.0, "output gain")
	renderCmd.Flags().StringVar(&outFile, "out", "soundlab.wav", "output file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's energy and bridge histories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "frequency analysis of the bridge motion",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export energy histories as SVG on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, renderCmd, listCmd, plotCmd, spectrumCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&freq1, "freq1", sim.DefaultFrequency1, "string 1 frequency (Hz)")
	cmd.Flags().Float64Var(&freq2, "freq2", sim.DefaultFrequency2, "string 2 frequency (Hz)")
	cmd.Flags().Float64Var(&damping, "damping", 0.00001, "string damping")
	cmd.Flags().Float64Var(&stiffness, "stiffness", 1.0, "bridge stiffness")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated seconds")
	cmd.Flags().IntVar(&pluckString, "pluck-string", 0, "string to pluck (0 or 1)")
	cmd.Flags().Float64Var(&pluckPos, "pluck-pos", 0.5, "pluck position")
	cmd.Flags().Float64Var(&pluckAmp, "pluck-amp", 1.0, "pluck amplitude")
}

// resolveConfig layers preset, config file, and changed CLI flags, in
// that order of increasing precedence.
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

	if cmd.Flags().Changed("freq1") {
		cfg.String1Hz = freq1
	}
	if cmd.Flags().Changed("freq2") {
		cfg.String2Hz = freq2
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("stiffness") {
		cfg.BridgeStiffness = stiffness
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("pluck-string") || cmd.Flags().Changed("pluck-pos") || cmd.Flags().Changed("pluck-amp") {
		cfg.Plucks = []config.Pluck{{String: pluckString, Position: pluckPos, Amplitude: pluckAmp}}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := sim.New()
	cfg.Apply(s)
	initial := s.TotalEnergy()

	fmt.Printf("running %.2f Hz / %.2f Hz for %.2fs...\n", cfg.String1Hz, cfg.String2Hz, cfg.Duration)
	start := time.Now()

	result, err := s.Run(context.Background(), cfg.Steps(), cfg.SampleStride)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		String1Hz:       s.Frequency1(),
		String2Hz:       s.Frequency2(),
		Damping:         s.Damping(),
		BridgeStiffness: s.BridgeStiffness(),
		Dt:              sim.Dt,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	fmt.Printf("  energy1: %.6f\n", s.Energy1())
	fmt.Printf("  energy2: %.6f\n", s.Energy2())
	if initial > 0 {
		fmt.Printf("  transferred: %.2f%%\n", s.Energy2()/initial*100)
	}
	fmt.Printf("  bridge_y: %+.6f\n", s.BridgeY())

	return nil
}

func renderWAV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s := sim.New()
	cfg.Apply(s)

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("rendering %.1fs to %s...\n", seconds, outFile)
	if err := render.Bounce(f, s, seconds, gain); err != nil {
		return err
	}
	fmt.Println("done")
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
	fmt.Fprintln(w, "ID\tTIME\tSTRING1\tSTRING2\tSTIFFNESS\tSTEPS\tE1\tE2")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%d\t%.4f\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.String1Hz,
			run.String2Hz,
			run.BridgeStiffness,
			run.Steps,
			run.FinalEnergy1,
			run.FinalEnergy2,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	h, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(h.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("tuning: %.2f Hz / %.2f Hz\n\n", meta.String1Hz, meta.String2Hz)

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"string 1 energy", h.Energy1},
		{"string 2 energy", h.Energy2},
		{"bridge position", h.BridgeY},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	h, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(h.Times) < 2 {
		return fmt.Errorf("not enough samples for analysis")
	}

	sampleRate := 1.0 / (h.Times[1] - h.Times[0])
	ps := analysis.PowerSpectrum(h.BridgeY)

	fmt.Printf("bridge spectrum: %s\n", meta.ID)
	fmt.Printf("series rate: %.1f Hz\n\n", sampleRate)

	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (bridge y)"),
	)
	fmt.Println(graph)

	freq := analysis.DominantFrequency(ps, sampleRate)
	fmt.Printf("\ndominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	h, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "energy1", "energy2", "bridge_y"}); err != nil {
		return err
	}
	for i := range h.Times {
		row := []string{
			strconv.FormatFloat(h.Times[i], 'f', 9, 64),
			strconv.FormatFloat(h.Energy1[i], 'f', 9, 64),
			strconv.FormatFloat(h.Energy2[i], 'f', 9, 64),
			strconv.FormatFloat(h.BridgeY[i], 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	h, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, meta, h)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	h, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	svg := export.EnergySVG(h.Energy1, h.Energy2, 800, 300)
	if svg == "" {
		return fmt.Errorf("not enough samples to plot")
	}
	fmt.Println(svg)
	return nil
}
