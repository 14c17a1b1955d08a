// Command cheby2 designs Chebyshev Type II IIR filters and applies them to
// WAV files.
//
// Usage:
//
//	cheby2 design [flags]
//	cheby2 filter [flags] input.wav output.wav
//
// Every flag can also be set through a CHEBY2_ environment variable
// (CHEBY2_STOP_BAND_DB=60) or a YAML file passed with --config.
//
// Examples:
//
//	cheby2 design -t lowpass -n 6 -f 1000 -s 60
//	cheby2 design -t bandshelf -n 3 -f 2000 -w 500 -g 6 --format yaml
//	cheby2 filter -t highpass -n 4 -f 80 -s 40 in.wav out.wav
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
