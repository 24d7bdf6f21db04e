// Package preset reads and writes the jfxr JSON preset format. Parsing is
// strict: every parameter must be present with the correct type, and files
// written by a newer format version are refused rather than guessed at.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// Version is the format version written to preset files. Files reporting a
// newer version are rejected with ErrUnsupportedVersion; older versions are
// accepted where possible.
const Version = 1

var (
	// ErrNotAnObject is returned when the top-level JSON value is not an object.
	ErrNotAnObject = errors.New("preset is not a JSON object")

	// ErrMissingField is returned, wrapped with the field key, when a
	// required parameter is absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned, wrapped with the field key, when a
	// parameter has the wrong type or an unsupported value.
	ErrInvalidField = errors.New("invalid field")

	// ErrUnsupportedVersion is returned for files written by a newer format version.
	ErrUnsupportedVersion = errors.New("unsupported preset version")
)

// Parse decodes a jfxr preset into a fully populated Sound.
func Parse(data []byte) (*sound.Sound, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnObject, err)
	}

	version, err := readInt(fields, "_version")
	if err != nil {
		return nil, err
	}
	if version > Version {
		return nil, fmt.Errorf("%w: %d > %d", ErrUnsupportedVersion, version, Version)
	}

	snd := &sound.Sound{}
	if snd.Name, err = readString(fields, "_name"); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"sampleRate", &snd.SampleRate},
		{"attack", &snd.Attack},
		{"sustain", &snd.Sustain},
		{"sustainPunch", &snd.SustainPunch},
		{"decay", &snd.Decay},
		{"tremoloDepth", &snd.TremoloDepth},
		{"tremoloFrequency", &snd.TremoloFrequency},
		{"frequency", &snd.Frequency},
		{"frequencySweep", &snd.FrequencySweep},
		{"frequencyDeltaSweep", &snd.FrequencyDeltaSweep},
		{"repeatFrequency", &snd.RepeatFrequency},
		{"frequencyJump1Onset", &snd.FrequencyJump1Onset},
		{"frequencyJump1Amount", &snd.FrequencyJump1Amount},
		{"frequencyJump2Onset", &snd.FrequencyJump2Onset},
		{"frequencyJump2Amount", &snd.FrequencyJump2Amount},
		{"harmonicsFalloff", &snd.HarmonicsFalloff},
		{"vibratoDepth", &snd.VibratoDepth},
		{"vibratoFrequency", &snd.VibratoFrequency},
		{"squareDuty", &snd.SquareDuty},
		{"squareDutySweep", &snd.SquareDutySweep},
		{"flangerOffset", &snd.FlangerOffset},
		{"flangerOffsetSweep", &snd.FlangerOffsetSweep},
		{"lowPassCutoff", &snd.LowPassCutoff},
		{"lowPassCutoffSweep", &snd.LowPassCutoffSweep},
		{"highPassCutoff", &snd.HighPassCutoff},
		{"highPassCutoffSweep", &snd.HighPassCutoffSweep},
		{"compression", &snd.Compression},
		{"amplification", &snd.Amplification},
	} {
		if *f.dst, err = readFloat(fields, f.key); err != nil {
			return nil, err
		}
	}

	if snd.Harmonics, err = readInt(fields, "harmonics"); err != nil {
		return nil, err
	}
	if snd.BitCrush, err = readInt(fields, "bitCrush"); err != nil {
		return nil, err
	}
	if snd.BitCrushSweep, err = readInt(fields, "bitCrushSweep"); err != nil {
		return nil, err
	}
	if snd.InterpolateNoise, err = readBool(fields, "interpolateNoise"); err != nil {
		return nil, err
	}
	if snd.Normalization, err = readBool(fields, "normalization"); err != nil {
		return nil, err
	}

	tag, err := readString(fields, "waveform")
	if err != nil {
		return nil, err
	}
	if snd.Waveform, err = sound.ParseWaveform(tag); err != nil {
		return nil, fmt.Errorf("%w: waveform: %v", ErrInvalidField, err)
	}

	return snd, nil
}

// Load reads and parses a preset file.
func Load(path string) (*sound.Sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// fileSound mirrors the on-disk key set and order.
type fileSound struct {
	FormatVersion int      `json:"_version"`
	Name          string   `json:"_name"`
	Locked        []string `json:"_locked"`

	SampleRate           float64 `json:"sampleRate"`
	Attack               float64 `json:"attack"`
	Sustain              float64 `json:"sustain"`
	SustainPunch         float64 `json:"sustainPunch"`
	Decay                float64 `json:"decay"`
	TremoloDepth         float64 `json:"tremoloDepth"`
	TremoloFrequency     float64 `json:"tremoloFrequency"`
	Frequency            float64 `json:"frequency"`
	FrequencySweep       float64 `json:"frequencySweep"`
	FrequencyDeltaSweep  float64 `json:"frequencyDeltaSweep"`
	RepeatFrequency      float64 `json:"repeatFrequency"`
	FrequencyJump1Onset  float64 `json:"frequencyJump1Onset"`
	FrequencyJump1Amount float64 `json:"frequencyJump1Amount"`
	FrequencyJump2Onset  float64 `json:"frequencyJump2Onset"`
	FrequencyJump2Amount float64 `json:"frequencyJump2Amount"`
	Harmonics            int     `json:"harmonics"`
	HarmonicsFalloff     float64 `json:"harmonicsFalloff"`
	Waveform             string  `json:"waveform"`
	InterpolateNoise     bool    `json:"interpolateNoise"`
	VibratoDepth         float64 `json:"vibratoDepth"`
	VibratoFrequency     float64 `json:"vibratoFrequency"`
	SquareDuty           float64 `json:"squareDuty"`
	SquareDutySweep      float64 `json:"squareDutySweep"`
	FlangerOffset        float64 `json:"flangerOffset"`
	FlangerOffsetSweep   float64 `json:"flangerOffsetSweep"`
	BitCrush             int     `json:"bitCrush"`
	BitCrushSweep        int     `json:"bitCrushSweep"`
	LowPassCutoff        float64 `json:"lowPassCutoff"`
	LowPassCutoffSweep   float64 `json:"lowPassCutoffSweep"`
	HighPassCutoff       float64 `json:"highPassCutoff"`
	HighPassCutoffSweep  float64 `json:"highPassCutoffSweep"`
	Compression          float64 `json:"compression"`
	Normalization        bool    `json:"normalization"`
	Amplification        float64 `json:"amplification"`
}

// Encode serializes a Sound to the jfxr format.
func Encode(snd *sound.Sound) ([]byte, error) {
	return json.Marshal(fileSound{
		FormatVersion:        Version,
		Name:                 snd.Name,
		Locked:               []string{},
		SampleRate:           snd.SampleRate,
		Attack:               snd.Attack,
		Sustain:              snd.Sustain,
		SustainPunch:         snd.SustainPunch,
		Decay:                snd.Decay,
		TremoloDepth:         snd.TremoloDepth,
		TremoloFrequency:     snd.TremoloFrequency,
		Frequency:            snd.Frequency,
		FrequencySweep:       snd.FrequencySweep,
		FrequencyDeltaSweep:  snd.FrequencyDeltaSweep,
		RepeatFrequency:      snd.RepeatFrequency,
		FrequencyJump1Onset:  snd.FrequencyJump1Onset,
		FrequencyJump1Amount: snd.FrequencyJump1Amount,
		FrequencyJump2Onset:  snd.FrequencyJump2Onset,
		FrequencyJump2Amount: snd.FrequencyJump2Amount,
		Harmonics:            snd.Harmonics,
		HarmonicsFalloff:     snd.HarmonicsFalloff,
		Waveform:             snd.Waveform.String(),
		InterpolateNoise:     snd.InterpolateNoise,
		VibratoDepth:         snd.VibratoDepth,
		VibratoFrequency:     snd.VibratoFrequency,
		SquareDuty:           snd.SquareDuty,
		SquareDutySweep:      snd.SquareDutySweep,
		FlangerOffset:        snd.FlangerOffset,
		FlangerOffsetSweep:   snd.FlangerOffsetSweep,
		BitCrush:             snd.BitCrush,
		BitCrushSweep:        snd.BitCrushSweep,
		LowPassCutoff:        snd.LowPassCutoff,
		LowPassCutoffSweep:   snd.LowPassCutoffSweep,
		HighPassCutoff:       snd.HighPassCutoff,
		HighPassCutoffSweep:  snd.HighPassCutoffSweep,
		Compression:          snd.Compression,
		Normalization:        snd.Normalization,
		Amplification:        snd.Amplification,
	})
}

// Save encodes a Sound and writes it to path.
func Save(path string, snd *sound.Sound) error {
	data, err := Encode(snd)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readFloat(fields map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidField, key)
	}
	return v, nil
}

func readInt(fields map[string]json.RawMessage, key string) (int, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidField, key)
	}
	return v, nil
}

func readBool(fields map[string]json.RawMessage, key string) (bool, error) {
	raw, ok := fields[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidField, key)
	}
	return v, nil
}

func readString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidField, key)
	}
	return v, nil
}
