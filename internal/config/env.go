package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// Env holds process toggles read straight from the environment. Unlike
// settings they have no file equivalent.
type Env struct {
	// Debug raises verbosity when no -v flag is given: "1" or "true" for
	// debug, "2" for trace.
	Debug string `env:"ROMSHELF_DEBUG"`

	// LogFile is the default for --log-file.
	LogFile string `env:"ROMSHELF_LOG_FILE"`
}

// ReadEnv parses Env from the process environment.
func ReadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, errors.Wrap(err, "parsing environment")
	}
	return e, nil
}

// Verbosity maps Debug to a -v count.
func (e Env) Verbosity() int {
	switch e.Debug {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}
