package quill

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the optional [engine] table in a quill.toml project
// file. Absent fields keep Engine's built-in defaults.
type FileConfig struct {
	Engine struct {
		StepQuota      int `toml:"step_quota"`
		RecursionLimit int `toml:"recursion_limit"`
	} `toml:"engine"`
}

// LoadConfigFile reads path as TOML into a Config. A missing file is not an
// error — callers should fall back to Config{} (Engine defaults). A
// malformed file is reported so the caller can warn and still fall back.
func LoadConfigFile(path string) (Config, error) {
	var file FileConfig
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("quill: cannot read %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Config{}, fmt.Errorf("quill: %s: failed to parse TOML: %w", path, err)
	}
	return Config{
		StepQuota:      file.Engine.StepQuota,
		RecursionLimit: file.Engine.RecursionLimit,
	}, nil
}
