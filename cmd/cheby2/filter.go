package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
)

func newFilterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter input.wav output.wav",
		Short: "Filter a PCM WAV file",
		Long:  "Filter every channel of a PCM WAV file. The sample rate of the file replaces --sample-rate.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.filterFile(args[0], args[1])
		},
	}
}

func (a *app) filterFile(inPath, outPath string) error {
	buf, bitDepth, err := readWAV(inPath)
	if err != nil {
		return err
	}

	s := a.settings()
	s.SampleRate = float64(buf.Format.SampleRate)
	channels := buf.Format.NumChannels

	a.logger.Info("read input",
		"path", inPath, "sample_rate", buf.Format.SampleRate, "channels", channels, "bit_depth", bitDepth)

	scale := float64(int(1) << (bitDepth - 1))
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)

	for ch := range channels {
		d, err := newDesign(s)
		if err != nil {
			return err
		}

		for i := range samples {
			samples[i] = float64(buf.Data[i*channels+ch]) / scale
		}

		d.ProcessBlock(samples)

		clipped := 0
		for i, x := range samples {
			v := math.Round(x * scale)
			if v > scale-1 {
				v = scale - 1
				clipped++
			} else if v < -scale {
				v = -scale
				clipped++
			}

			buf.Data[i*channels+ch] = int(v)
		}

		if clipped > 0 {
			a.logger.Warn("output clipped", "channel", ch, "samples", clipped)
		}
	}

	if err := writeWAV(outPath, buf, bitDepth); err != nil {
		return err
	}

	a.logger.Info("wrote output", "path", outPath, "frames", frames)

	return nil
}

func readWAV(path string) (*audio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("input is not a valid WAV file")
	}

	if dec.WavAudioFormat != 1 {
		return nil, 0, fmt.Errorf("unsupported WAV format %d, want PCM", dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return nil, 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode input: %w", err)
	}

	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, errors.New("input has no channels")
	}

	return buf, bitDepth, nil
}

func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	enc := wav.NewEncoder(out, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("encode output: %w", err)
	}

	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize output: %w", err)
	}

	return out.Close()
}
