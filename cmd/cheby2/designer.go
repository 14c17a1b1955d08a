package main

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design/chebyshev2"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

var filterTypes = []string{"lowpass", "highpass", "bandpass", "bandstop", "lowshelf", "highshelf", "bandshelf"}

// settings are the resolved design parameters.
type settings struct {
	Type       string
	Order      int
	MaxOrder   int
	SampleRate float64
	Freq       float64
	Width      float64
	GainDb     float64
	StopBandDb float64
	Topology   string
}

// runner is the processing surface shared by every chebyshev2 filter type.
type runner interface {
	ProcessBlock(buf []float64)
	Reset()
	Order() int
	NumSections() int
	Layout() *iir.Layout
}

// cascadeView is the inspection surface of a biquad cascade.
type cascadeView interface {
	Coefficients() []biquad.Coefficients
	Gain() float64
	MagnitudeDB(freqHz, sampleRate float64) float64
	Poles() []complex128
}

type designed struct {
	runner
	cascade cascadeView
}

// newDesign builds and sets up the filter described by s.
func newDesign(s settings) (*designed, error) {
	switch s.Topology {
	case "df1":
		return designWith[biquad.DirectFormI](s)
	case "df2":
		return designWith[biquad.DirectFormII](s)
	case "tdf2", "":
		return designWith[biquad.TransposedDirectFormII](s)
	default:
		return nil, fmt.Errorf("unknown topology %q", s.Topology)
	}
}

func designWith[S any, PS biquad.StateType[S]](s settings) (*designed, error) {
	var (
		d   *designed
		err error
	)

	switch s.Type {
	case "lowpass":
		f := chebyshev2.NewLowPass[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "highpass":
		f := chebyshev2.NewHighPass[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "bandpass":
		f := chebyshev2.NewBandPass[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.Width, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "bandstop":
		f := chebyshev2.NewBandStop[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.Width, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "lowshelf":
		f := chebyshev2.NewLowShelf[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.GainDb, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "highshelf":
		f := chebyshev2.NewHighShelf[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.GainDb, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	case "bandshelf":
		f := chebyshev2.NewBandShelf[S, PS](s.MaxOrder)
		err = f.SetupOrder(s.Order, s.SampleRate, s.Freq, s.Width, s.GainDb, s.StopBandDb)
		d = &designed{runner: f, cascade: f.Cascade()}
	default:
		return nil, fmt.Errorf("unknown filter type %q", s.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("design %s order %d: %w", s.Type, s.Order, err)
	}

	return d, nil
}
