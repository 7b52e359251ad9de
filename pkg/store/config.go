package store

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the store keeps its documents.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .lifedash config file and the LIFEDASH_*
// environment, falling back to ~/.lifedash.db for the store path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lifedash.db")
	viper.SetConfigName(".lifedash") // .yaml is implicit
	viper.SetEnvPrefix("LIFEDASH")
	viper.AutomaticEnv()

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
