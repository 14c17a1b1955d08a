package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the configuration and logger shared by all sub-commands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:          "cheby2",
		Short:        "Design and apply Chebyshev Type II IIR filters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	setupFlags(root)

	root.AddCommand(newDesignCommand(a), newFilterCommand(a))

	return root
}

// setupFlags defines the design parameters shared by every sub-command.
func setupFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringP("type", "t", "lowpass", "Response: "+strings.Join(filterTypes, ", "))
	pf.IntP("order", "n", 4, "Effective filter order")
	pf.Int("max-order", 0, "Reserved filter order (0 uses --order)")
	pf.Float64("sample-rate", 48000, "Sample rate in Hz (filter uses the WAV rate)")
	pf.Float64P("freq", "f", 1000, "Cutoff or center frequency in Hz")
	pf.Float64P("width", "w", 200, "Band width in Hz for band responses")
	pf.Float64P("gain-db", "g", 0, "Shelf gain in dB")
	pf.Float64P("stop-band-db", "s", 48, "Stopband rejection in dB")
	pf.String("topology", "tdf2", "Section topology: df1, df2, tdf2")
}

// initialize binds flags, environment and the optional config file, and sets
// up logging. Flags given on the command line take precedence.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	a.v.SetEnvPrefix("CHEBY2")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// settings returns the resolved design parameters.
func (a *app) settings() settings {
	s := settings{
		Type:       strings.ToLower(a.v.GetString("type")),
		Order:      a.v.GetInt("order"),
		MaxOrder:   a.v.GetInt("max-order"),
		SampleRate: a.v.GetFloat64("sample-rate"),
		Freq:       a.v.GetFloat64("freq"),
		Width:      a.v.GetFloat64("width"),
		GainDb:     a.v.GetFloat64("gain-db"),
		StopBandDb: a.v.GetFloat64("stop-band-db"),
		Topology:   strings.ToLower(a.v.GetString("topology")),
	}

	if s.MaxOrder == 0 {
		s.MaxOrder = s.Order
	}

	return s
}
