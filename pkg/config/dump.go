package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/schanno/pkg/errors"
)

// TOML renders the configuration in the same layout as the defaults file
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to encode configuration")
	}
	return string(data), nil
}
