package adapter

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/touchall/internal/model"
)

// DefaultConfigFile is the config file looked up in the working directory when
// no explicit path is given.
const DefaultConfigFile = ".touchall.toml"

// DefaultBases is the default allow-list of base class names that mark a
// class as a model.
var DefaultBases = []string{"BaseModel"}

// Config holds the settings read from a touchall TOML config file.
type Config struct {
	Models ModelsConfig `toml:"models"`
	Check  CheckConfig  `toml:"check"`
}

// ModelsConfig configures model-class recognition.
type ModelsConfig struct {
	// Bases is the allow-list of base class names; classes inheriting from any
	// of them (directly or transitively within one file) are checked.
	Bases []string `toml:"bases"`
}

// CheckConfig configures the default check behavior; command-line flags take
// precedence over these values.
type CheckConfig struct {
	Strict   bool `toml:"strict"`
	Parallel int  `toml:"parallel"`
}

// LoadConfig parses a touchall config file. A missing file yields the default
// configuration without error; a malformed file is reported.
func LoadConfig(path m.Path) (Config, error) {
	cfg := Config{
		Models: ModelsConfig{Bases: DefaultBases},
		Check:  CheckConfig{Parallel: 1},
	}

	meta, err := toml.DecodeFile(string(path), &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if !meta.IsDefined("models", "bases") || len(cfg.Models.Bases) == 0 {
		cfg.Models.Bases = DefaultBases
	}

	if cfg.Check.Parallel <= 0 {
		cfg.Check.Parallel = 1
	}

	return cfg, nil
}
