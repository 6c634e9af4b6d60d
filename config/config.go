// Package config loads settings for the ghostline programs: the completion
// backend served by package server and the defaults of the terminal editor.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, GHOSTLINE_* environment variables and the legacy ARK_* and PORT
// variables of the reference backend. Command-line flags are applied by the
// caller on top of the loaded Config.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/iw2rmb/ghostline/completion"
)

// EnvPrefix prefixes every environment key, e.g. GHOSTLINE_BACKEND_MODEL.
const EnvPrefix = "GHOSTLINE"

const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
)

// ErrUnknownBackend is returned by Validate for an unsupported backend kind.
var ErrUnknownBackend = errors.New("config: unknown backend")

type Config struct {
	Server  Server  `mapstructure:"server"`
	Backend Backend `mapstructure:"backend"`
	Editor  Editor  `mapstructure:"editor"`
	Log     Log     `mapstructure:"log"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Backend selects the model API the server forwards completions to.
type Backend struct {
	Kind    string `mapstructure:"kind"`
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	// Model empty means the backend's default model.
	Model       string  `mapstructure:"model"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Editor holds the defaults of `ghostline edit`.
type Editor struct {
	APIURL      string        `mapstructure:"api_url"`
	Prompt      string        `mapstructure:"prompt"`
	Placeholder string        `mapstructure:"placeholder"`
	DisableAI   bool          `mapstructure:"disable_ai"`
	Debounce    time.Duration `mapstructure:"debounce"`
	// Style is a JSON style object, see editor.ParseStyleConfig.
	Style string `mapstructure:"style"`
}

type Log struct {
	Level       string `mapstructure:"level"`
	File        string `mapstructure:"file"`
	Development bool   `mapstructure:"development"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:            3000,
			AllowedOrigins:  []string{"*"},
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Backend: Backend{
			Kind:        BackendOpenAI,
			BaseURL:     "https://ark.cn-beijing.volces.com/api/v3",
			MaxTokens:   100,
			Temperature: 0.7,
		},
		Editor: Editor{
			APIURL:   completion.DefaultEndpoint,
			Debounce: 2 * time.Second,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the configuration. An empty path searches for ghostline.yaml in
// the working directory and $HOME/.config/ghostline; a missing file is not an
// error unless path names it explicitly.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ghostline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ghostline")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names used by the reference backend. The GHOSTLINE_ form wins.
	_ = v.BindEnv("backend.base_url", EnvPrefix+"_BACKEND_BASE_URL", "ARK_BASE_URL")
	_ = v.BindEnv("backend.api_key", EnvPrefix+"_BACKEND_API_KEY", "ARK_API_KEY")
	_ = v.BindEnv("backend.model", EnvPrefix+"_BACKEND_MODEL", "ARK_MODEL")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	return v
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("backend.kind", d.Backend.Kind)
	v.SetDefault("backend.base_url", d.Backend.BaseURL)
	v.SetDefault("backend.api_key", d.Backend.APIKey)
	v.SetDefault("backend.model", d.Backend.Model)
	v.SetDefault("backend.max_tokens", d.Backend.MaxTokens)
	v.SetDefault("backend.temperature", d.Backend.Temperature)

	v.SetDefault("editor.api_url", d.Editor.APIURL)
	v.SetDefault("editor.prompt", d.Editor.Prompt)
	v.SetDefault("editor.placeholder", d.Editor.Placeholder)
	v.SetDefault("editor.disable_ai", d.Editor.DisableAI)
	v.SetDefault("editor.debounce", d.Editor.Debounce)
	v.SetDefault("editor.style", d.Editor.Style)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.development", d.Log.Development)
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	switch strings.ToLower(c.Backend.Kind) {
	case BackendOpenAI, BackendAnthropic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend.Kind)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Backend.MaxTokens <= 0 {
		return fmt.Errorf("config: backend.max_tokens must be positive, got %d", c.Backend.MaxTokens)
	}
	if c.Editor.Debounce < 0 {
		return fmt.Errorf("config: editor.debounce must not be negative, got %s", c.Editor.Debounce)
	}
	return nil
}
