// Command sfxr renders jfxr sound-effect presets to WAV files and inspects
// their parameters.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sfxr/analysis"
	"github.com/cwbudde/algo-sfxr/sfxr/param"
	"github.com/cwbudde/algo-sfxr/sfxr/preset"
	"github.com/cwbudde/algo-sfxr/sfxr/synth"
)

func main() {
	root := &cobra.Command{
		Use:           "sfxr",
		Short:         "Procedural sound effect synthesizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(renderCmd(), analyzeCmd(), infoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var output string
	var blockSize int

	cmd := &cobra.Command{
		Use:   "render <preset.jfxr>",
		Short: "Render a preset to a 16-bit mono WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snd, err := preset.Load(args[0])
			if err != nil {
				return err
			}

			var opts []synth.Option
			if blockSize > 0 {
				opts = append(opts, synth.WithBlockSize(blockSize))
			}
			samples := synth.New(snd, opts...).Generate()

			if output == "" {
				output = strings.TrimSuffix(args[0], ".jfxr") + ".wav"
			}
			if err := writeWAV(output, samples, int(snd.SampleRate)); err != nil {
				return err
			}

			fmt.Printf("%s: %d samples (%.3f s) -> %s\n",
				snd.Name, len(samples), snd.Duration(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Output WAV path (default: preset name with .wav extension)")
	cmd.Flags().IntVarP(&blockSize, "block-size", "b", 0,
		"Samples per processing block (0 uses the default)")

	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <preset.jfxr>",
		Short: "Render a preset and report level and pitch measurements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snd, err := preset.Load(args[0])
			if err != nil {
				return err
			}

			samples := synth.Generate(snd)

			fmt.Printf("name:      %s\n", snd.Name)
			fmt.Printf("duration:  %.3f s (%d samples at %g Hz)\n",
				snd.Duration(), len(samples), snd.SampleRate)
			fmt.Printf("peak:      %.4f\n", analysis.Peak(samples))
			fmt.Printf("rms:       %.4f\n", analysis.RMS(samples))

			freq, err := analysis.PeakFrequency(samples, snd.SampleRate)
			if err != nil {
				return err
			}
			fmt.Printf("peak freq: %.1f Hz\n", freq)
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <preset.jfxr>",
		Short: "Print the preset's parameters with their display metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snd, err := preset.Load(args[0])
			if err != nil {
				return err
			}

			data, err := preset.Encode(snd)
			if err != nil {
				return err
			}
			values := map[string]any{}
			if err := json.Unmarshal(data, &values); err != nil {
				return err
			}

			fmt.Printf("%s (format v%d)\n", snd.Name, preset.Version)
			for _, key := range param.Keys() {
				d := param.Lookup(key)
				unit := ""
				if d.Unit != "" {
					unit = " " + d.Unit
				}
				fmt.Printf("  %-22s %v%s\n", d.Label+":", values[key], unit)
			}
			return nil
		},
	}
}

func writeWAV(path string, samples []float64, sampleRate int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := wav.NewEncoder(file, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(math.Round(s * 32767))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
