package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by Load when the configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Tagger     TaggerConfig     `mapstructure:"tagger"`
	Database   DatabaseConfig   `mapstructure:"database"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Server     ServerConfig     `mapstructure:"server"`
}

type DictionaryConfig struct {
	BaseURL            string        `mapstructure:"base_url" validate:"required,url"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	Timeout            time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// Throttle is the delay between two consecutive lookups.
	Throttle          time.Duration `mapstructure:"throttle" validate:"gte=0"`
	ThrottleCacheHits bool          `mapstructure:"throttle_cache_hits"`
}

type TaggerConfig struct {
	Endpoint         string        `mapstructure:"endpoint" validate:"required,url"`
	Token            string        `mapstructure:"token"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxRetryAttempts uint          `mapstructure:"max_retry_attempts"`
}

type DatabaseConfig struct {
	Driver   string            `mapstructure:"driver" validate:"oneof=sqlite3 mysql postgres"`
	Path     string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	DSN      string            `mapstructure:"dsn"`
	Host     string            `mapstructure:"host"`
	Port     int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database string            `mapstructure:"database"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	TLS      bool              `mapstructure:"tls"`
	Params   map[string]string `mapstructure:"params"`
}

type OpenAIConfig struct {
	APIKey           string        `mapstructure:"api_key"`
	Model            string        `mapstructure:"model" validate:"required"`
	MaxTokens        int           `mapstructure:"max_tokens" validate:"gt=0"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetryAttempts uint          `mapstructure:"max_retry_attempts"`
}

type PipelineConfig struct {
	NGramSize int  `mapstructure:"ngram_size" validate:"gte=2"`
	MultiWord bool `mapstructure:"multi_word"`
}

type TemplatesConfig struct {
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,file"`
}

type ServerConfig struct {
	Port        int `mapstructure:"port" validate:"gt=0,lte=65535"`
	MaxSessions int `mapstructure:"max_sessions" validate:"gt=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vurgu")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.base_url", "https://sozluk.adalet.gov.tr")
	v.SetDefault("dictionary.insecure_skip_verify", true)
	v.SetDefault("dictionary.timeout", 30*time.Second)
	v.SetDefault("dictionary.throttle", 500*time.Millisecond)
	v.SetDefault("dictionary.throttle_cache_hits", true)
	v.SetDefault("tagger.endpoint", "https://api-inference.huggingface.co/models/wietsedv/xlm-roberta-base-ft-udpos28-tr")
	v.SetDefault("tagger.timeout", 60*time.Second)
	v.SetDefault("tagger.max_retry_attempts", 2)
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", "term_cache.db")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 200)
	v.SetDefault("openai.timeout", 60*time.Second)
	v.SetDefault("openai.max_retry_attempts", 2)
	v.SetDefault("pipeline.ngram_size", 2)
	v.SetDefault("pipeline.multi_word", false)
	// Template is optional - if not specified, the embedded report template is used
	v.SetDefault("templates.report_template", "")
	v.SetDefault("server.port", 8501)
	v.SetDefault("server.max_sessions", 1000)

	// Secrets are bound to environment variables only
	envBindings := map[string]string{
		"openai.api_key": "OPENAI_API_KEY",
		"openai.model":   "OPENAI_MODEL",
		"tagger.token":   "VURGU_TAGGER_TOKEN",
		"database.dsn":   "VURGU_DATABASE_DSN",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		errorMsgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load is a shortcut for NewConfigLoader(configFile).Load().
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
