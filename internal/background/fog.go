// Package background configures the animated fog layer drawn behind the
// project grid. The effect itself runs in the browser (static/js/aurora.js);
// this package only owns its fixed settings.
package background

import (
	"fmt"

	"github.com/goccy/go-json"
)

// FogOptions mirrors the option object accepted by VANTA.FOG.
// Colors are 0xRRGGBB integers.
type FogOptions struct {
	MouseControls   bool    `json:"mouseControls"`
	TouchControls   bool    `json:"touchControls"`
	GyroControls    bool    `json:"gyroControls"`
	MinHeight       float64 `json:"minHeight"`
	MinWidth        float64 `json:"minWidth"`
	HighlightColor  int     `json:"highlightColor"`
	MidtoneColor    int     `json:"midtoneColor"`
	LowlightColor   int     `json:"lowlightColor"`
	BaseColor       int     `json:"baseColor"`
	BlurFactor      float64 `json:"blurFactor"`
	Speed           float64 `json:"speed"`
	Zoom            float64 `json:"zoom"`
	Scale           float64 `json:"scale,omitempty"`
	ScaleMobile     float64 `json:"scaleMobile,omitempty"`
	BackgroundAlpha float64 `json:"backgroundAlpha,omitempty"`
}

// Fog returns the palette and motion settings used by the site.
func Fog() FogOptions {
	return FogOptions{
		MouseControls:   true,
		TouchControls:   true,
		GyroControls:    false,
		MinHeight:       200,
		MinWidth:        200,
		HighlightColor:  0xffffff,
		MidtoneColor:    0xdbeafe,
		LowlightColor:   0x2b00ff,
		BaseColor:       0xffffff,
		BlurFactor:      0.4,
		Speed:           0.55,
		Zoom:            1,
		Scale:           2,
		ScaleMobile:     4,
		BackgroundAlpha: 1,
	}
}

// JSON encodes the options for the data-fog attribute.
func (o FogOptions) JSON() (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode fog options: %w", err)
	}
	return string(data), nil
}
