package background

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestFog_Palette(t *testing.T) {
	o := Fog()
	if o.HighlightColor != 0xffffff || o.MidtoneColor != 0xdbeafe || o.LowlightColor != 0x2b00ff || o.BaseColor != 0xffffff {
		t.Fatalf("unexpected palette: %+v", o)
	}
	if o.GyroControls {
		t.Fatal("gyro controls should be off")
	}
}

func TestFogOptions_JSONUsesVantaNames(t *testing.T) {
	raw, err := Fog().JSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	checks := map[string]float64{
		"midtoneColor":    0xdbeafe,
		"lowlightColor":   0x2b00ff,
		"blurFactor":      0.4,
		"speed":           0.55,
		"minHeight":       200,
		"scaleMobile":     4,
		"backgroundAlpha": 1,
	}
	for key, want := range checks {
		got, ok := decoded[key].(float64)
		if !ok {
			t.Fatalf("%s missing from %s", key, raw)
		}
		if got != want {
			t.Fatalf("%s = %v, want %v", key, got, want)
		}
	}
	if decoded["mouseControls"] != true {
		t.Fatalf("mouseControls = %v, want true", decoded["mouseControls"])
	}
}
