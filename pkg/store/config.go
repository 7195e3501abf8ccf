package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk document base path.
type Config interface {
	BasePath() string
}

// LoadConfig resolves configuration from a .haru file, HARU_* environment
// variables, or defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.haru.db")
	viper.SetConfigName(".haru") // .yaml is implicit
	viper.SetEnvPrefix("HARU")
	viper.AutomaticEnv()

	if override := os.Getenv("HARU_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
