package config

import (
	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

// Configuration holds every process-wide setting. It is loaded once at
// startup and passed into the components that need it; nothing reads the
// environment after that.
type Configuration struct {
	App struct {
		Port string `default:"5000" env:"PORT"`
	}
	Gemini struct {
		// APIKey may be empty; generation endpoints then answer with a
		// configuration-error sentence instead of calling upstream.
		APIKey  string `default:"" env:"GEMINI_API_KEY"`
		BaseURL string `default:"https://generativestorybooks.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent" env:"GEMINI_API_URL"`
	}
}

func Load() (*Configuration, error) {
	conf := new(Configuration)
	if err := configor.New(&configor.Config{}).Load(conf); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return conf, nil
}
