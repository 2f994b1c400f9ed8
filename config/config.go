package config

import (
	"encoding/json"
	"os"
)

// Default values applied when no properties file is present or a loaded
// value fails validation.
const (
	// DefaultFloatBins is the histogram bin count used for floating-point
	// band data, which has no natural one-bin-per-value binning.
	DefaultFloatBins = 512

	// DefaultStretchPercent is the low-end percentile of the default
	// contrast stretch. The high end is its complement (100 - percent).
	DefaultStretchPercent = 2.0
)

// Properties holds runtime tuning values for the analysis layer.
// Fields may be loaded from a JSON file and adjusted by the host
// application before being passed to the tools that consume them.
type Properties struct {
	// FloatBins is the fixed bin count for histograms over
	// floating-point band data.
	FloatBins int `json:"float_bins"`

	// StretchPercent is the low percentile of the default linear
	// contrast stretch applied when a band carries no explicit stretch.
	StretchPercent float64 `json:"stretch_percent"`
}

// Default returns a Properties populated with standard defaults.
func Default() *Properties {
	return &Properties{
		FloatBins:      DefaultFloatBins,
		StretchPercent: DefaultStretchPercent,
	}
}

// Validate clamps values to safe ranges.
func (p *Properties) Validate() error {
	if p.FloatBins < 2 {
		p.FloatBins = DefaultFloatBins
	}
	if p.StretchPercent <= 0 || p.StretchPercent >= 50 {
		p.StretchPercent = DefaultStretchPercent
	}
	return nil
}

// Load attempts to read properties from the given JSON file path. If the
// file does not exist it returns Default(). On JSON error it returns
// defaults along with the error.
func Load(path string) (*Properties, error) {
	props := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return props, nil
		}
		return props, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(props); err != nil {
		return Default(), err
	}
	_ = props.Validate()
	return props, nil
}

// Save writes the properties to the given path in JSON format.
func (p *Properties) Save(path string) error {
	_ = p.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
