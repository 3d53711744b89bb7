package main

import (
	"github.com/BurntSushi/toml"
	"github.com/npillmayer/fuzzy"
	"github.com/npillmayer/fuzzy/tnorm"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// settings holds the options of a fuzzcalc run, as read from a TOML file
// and overridden by command line flags.
type settings struct {
	Resolution int       `toml:"resolution"`
	TNorm      string    `toml:"tnorm"`
	TNormParam []float64 `toml:"tnorm_params"`
	Pairing    string    `toml:"pairing"`
	MergeGap   float64   `toml:"merge_gap"`
	Tolerance  float64   `toml:"tolerance"`
	Color      *bool     `toml:"color"`
}

func defaultSettings() settings {
	return settings{
		Resolution: fuzzy.DefaultResolution,
		TNorm:      tnorm.Minimum.Name(),
		Pairing:    fuzzy.Diagonal.String(),
		MergeGap:   fuzzy.DefaultMergeGap,
		Tolerance:  fuzzy.DefaultTolerance,
	}
}

// loadSettings reads settings from a TOML file. Keys not present in the
// file keep their defaults; unknown keys are an error.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return s, nil
}

// override applies flags set explicitly on the command line.
func (s *settings) override(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("levels") {
		if s.Resolution, err = flags.GetInt("levels"); err != nil {
			return err
		}
	}
	if flags.Changed("tnorm") {
		if s.TNorm, err = flags.GetString("tnorm"); err != nil {
			return err
		}
	}
	if flags.Changed("param") {
		if s.TNormParam, err = flags.GetFloat64Slice("param"); err != nil {
			return err
		}
	}
	if flags.Changed("pairing") {
		if s.Pairing, err = flags.GetString("pairing"); err != nil {
			return err
		}
	}
	if flags.Changed("no-color") {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return err
		}
		color := !noColor
		s.Color = &color
	}
	return nil
}

// config turns settings into a configuration for fuzzy operations.
func (s settings) config() (fuzzy.Config, error) {
	norm, err := tnorm.Lookup(s.TNorm, s.TNormParam...)
	if err != nil {
		return fuzzy.Config{}, errors.Wrap(err, "t-norm")
	}
	pairing, err := fuzzy.ParsePairing(s.Pairing)
	if err != nil {
		return fuzzy.Config{}, err
	}
	cfg := fuzzy.Config{
		Resolution: s.Resolution,
		TNorm:      norm,
		Pairing:    pairing,
		MergeGap:   s.MergeGap,
		Tolerance:  s.Tolerance,
	}
	if err := cfg.Validate(); err != nil {
		return fuzzy.Config{}, errors.Wrap(err, "configuration")
	}
	return cfg, nil
}
