package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

type sectionReport struct {
	B0 float64 `yaml:"b0"`
	B1 float64 `yaml:"b1"`
	B2 float64 `yaml:"b2"`
	A1 float64 `yaml:"a1"`
	A2 float64 `yaml:"a2"`
}

type responsePoint struct {
	FreqHz      float64 `yaml:"freq_hz"`
	MagnitudeDB float64 `yaml:"magnitude_db"`
}

type report struct {
	Type       string          `yaml:"type"`
	Order      int             `yaml:"order"`
	MaxOrder   int             `yaml:"max_order"`
	SampleRate float64         `yaml:"sample_rate"`
	Freq       float64         `yaml:"freq_hz"`
	Width      float64         `yaml:"width_hz,omitempty"`
	GainDb     float64         `yaml:"gain_db,omitempty"`
	StopBandDb float64         `yaml:"stop_band_db"`
	Topology   string          `yaml:"topology"`
	Kernel     string          `yaml:"kernel"`
	Gain       float64         `yaml:"gain"`
	Sections   []sectionReport `yaml:"sections"`
	Poles      []string        `yaml:"poles"`
	Response   []responsePoint `yaml:"response"`
}

func newDesignCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Print coefficients and response of a filter design",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()

			d, err := newDesign(s)
			if err != nil {
				return err
			}

			a.logger.Info("designed filter",
				"type", s.Type, "order", d.Order(), "sections", d.NumSections(), "topology", s.Topology)

			r := buildReport(s, d, a.v.GetInt("points"))

			switch format := a.v.GetString("format"); format {
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), r)
			case "table", "":
				return writeTable(cmd.OutOrStdout(), r)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().String("format", "table", "Output format: table, yaml")
	cmd.Flags().Int("points", 12, "Number of log-spaced response points")

	return cmd
}

func buildReport(s settings, d *designed, points int) report {
	r := report{
		Type:       s.Type,
		Order:      d.Order(),
		MaxOrder:   s.MaxOrder,
		SampleRate: s.SampleRate,
		Freq:       s.Freq,
		StopBandDb: s.StopBandDb,
		Topology:   s.Topology,
		Kernel:     biquad.KernelName(),
		Gain:       d.cascade.Gain(),
	}

	switch s.Type {
	case "bandpass", "bandstop", "bandshelf":
		r.Width = s.Width
	}

	switch s.Type {
	case "lowshelf", "highshelf", "bandshelf":
		r.GainDb = s.GainDb
	}

	for _, c := range d.cascade.Coefficients() {
		r.Sections = append(r.Sections, sectionReport{B0: c.B0, B1: c.B1, B2: c.B2, A1: c.A1, A2: c.A2})
	}

	for _, p := range d.cascade.Poles() {
		r.Poles = append(r.Poles, fmt.Sprintf("%.9f%+.9fi", real(p), imag(p)))
	}

	for _, f := range logFrequencies(20, 0.999*s.SampleRate/2, points) {
		r.Response = append(r.Response, responsePoint{FreqHz: f, MagnitudeDB: d.cascade.MagnitudeDB(f, s.SampleRate)})
	}

	return r
}

// logFrequencies returns n frequencies spaced logarithmically over [lo, hi].
func logFrequencies(lo, hi float64, n int) []float64 {
	if n <= 0 || hi <= lo {
		return nil
	}

	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)

	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

func writeTable(w io.Writer, r report) error {
	fmt.Fprintf(w, "Chebyshev II %s, order %d, %g Hz @ %g Hz, stopband %g dB\n",
		r.Type, r.Order, r.Freq, r.SampleRate, r.StopBandDb)
	fmt.Fprintf(w, "topology %s, kernel %s, gain %.9g\n\n", r.Topology, r.Kernel, r.Gain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Section\tb0\tb1\tb2\ta1\ta2\t")

	for i, s := range r.Sections {
		fmt.Fprintf(tw, "%d\t%.9f\t%.9f\t%.9f\t%.9f\t%.9f\t\n", i, s.B0, s.B1, s.B2, s.A1, s.A2)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Freq (Hz)\tMagnitude (dB)\t")

	for _, p := range r.Response {
		fmt.Fprintf(tw, "%.1f\t%.3f\t\n", p.FreqHz, p.MagnitudeDB)
	}

	return tw.Flush()
}
