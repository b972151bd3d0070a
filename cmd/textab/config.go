package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig holds per-project default option values, loaded from a YAML
// file. A flag set explicitly on the command line always wins over the
// file.
type fileConfig struct {
	Sep      string   `yaml:"sep"`
	Align    string   `yaml:"align"`
	Caption  string   `yaml:"caption"`
	Label    string   `yaml:"label"`
	Units    []string `yaml:"units"`
	Skip     int      `yaml:"skip"`
	NoHeader bool     `yaml:"no_header"`
	NoIndent bool     `yaml:"no_indent"`
	NoEscape bool     `yaml:"no_escape"`
	Fragment bool     `yaml:"fragment"`
	Preamble bool     `yaml:"preamble"`
	Pad      bool     `yaml:"pad"`
	Outfile  string   `yaml:"outfile"`
	Replace  bool     `yaml:"replace"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies the file values into f wherever the corresponding flag was
// not set on the command line. Zero values in the file leave the built-in
// defaults alone.
func (cfg fileConfig) apply(fl *pflag.FlagSet, f *flags) {
	if !fl.Changed("sep") && cfg.Sep != "" {
		f.sep = cfg.Sep
	}
	if !fl.Changed("align") && cfg.Align != "" {
		f.align = cfg.Align
	}
	if !fl.Changed("caption") && cfg.Caption != "" {
		f.caption = cfg.Caption
	}
	if !fl.Changed("label") && cfg.Label != "" {
		f.label = cfg.Label
	}
	if !fl.Changed("units") && len(cfg.Units) > 0 {
		f.units = cfg.Units
	}
	if !fl.Changed("skip") && cfg.Skip != 0 {
		f.skip = cfg.Skip
	}
	if !fl.Changed("no-header") && cfg.NoHeader {
		f.noHeader = true
	}
	if !fl.Changed("no-indent") && cfg.NoIndent {
		f.noIndent = true
	}
	if !fl.Changed("no-escape") && cfg.NoEscape {
		f.noEscape = true
	}
	if !fl.Changed("fragment") && cfg.Fragment {
		f.fragment = true
	}
	if !fl.Changed("preamble") && cfg.Preamble {
		f.preamble = true
	}
	if !fl.Changed("pad") && cfg.Pad {
		f.pad = true
	}
	if !fl.Changed("outfile") && cfg.Outfile != "" {
		f.outfile = cfg.Outfile
	}
	if !fl.Changed("replace") && cfg.Replace {
		f.replace = true
	}
}
