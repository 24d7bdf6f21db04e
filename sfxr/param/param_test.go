package param_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sfxr/sfxr/param"
	"github.com/cwbudde/algo-sfxr/sfxr/preset"
	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

func TestLookupKnownKey(t *testing.T) {
	d := param.Lookup("frequency")
	if d == nil {
		t.Fatal("Lookup(\"frequency\") = nil")
	}
	if d.Label != "Frequency" || d.Unit != "Hz" || d.Kind != param.KindFloat {
		t.Fatalf("unexpected descriptor: %+v", d)
	}
}

func TestLookupUnknownKey(t *testing.T) {
	if d := param.Lookup("gain"); d != nil {
		t.Fatalf("Lookup(\"gain\") = %+v, want nil", d)
	}
}

func TestKeysMatchDescriptors(t *testing.T) {
	keys := param.Keys()
	all := param.All()
	if len(keys) != len(all) {
		t.Fatalf("Keys() has %d entries, All() has %d", len(keys), len(all))
	}
	for i, d := range all {
		if keys[i] != d.Key {
			t.Fatalf("Keys()[%d] = %q, want %q", i, keys[i], d.Key)
		}
		if param.Lookup(d.Key) == nil {
			t.Fatalf("Lookup(%q) = nil for a listed descriptor", d.Key)
		}
	}
}

func TestKindsAreConsistent(t *testing.T) {
	want := map[string]param.Kind{
		"harmonics":        param.KindInt,
		"bitCrush":         param.KindInt,
		"interpolateNoise": param.KindBool,
		"normalization":    param.KindBool,
		"waveform":         param.KindEnum,
		"attack":           param.KindFloat,
	}
	for key, kind := range want {
		d := param.Lookup(key)
		if d == nil {
			t.Fatalf("Lookup(%q) = nil", key)
		}
		if d.Kind != kind {
			t.Errorf("%s: Kind = %v, want %v", key, d.Kind, kind)
		}
	}
}

// Every descriptor key must appear in the preset file format, and every
// persisted parameter must have a descriptor.
func TestKeysMatchPresetFormat(t *testing.T) {
	data, err := preset.Encode(sound.New())
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}

	for _, key := range param.Keys() {
		if _, ok := fields[key]; !ok {
			t.Errorf("descriptor key %q not present in preset format", key)
		}
	}
	for key := range fields {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if param.Lookup(key) == nil {
			t.Errorf("preset field %q has no descriptor", key)
		}
	}
}
