package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	ProviderFreeDictionary = "free_dictionary"
	ProviderWordsAPI       = "words_api"

	QuizKindPrimary          = "primary"
	QuizKindWordToDefinition = "word_to_definition"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Lexicon   LexiconConfig   `mapstructure:"lexicon"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite mysql postgres"`
	// DSN is used by sqlite and postgres
	DSN string `mapstructure:"dsn"`

	// mysql
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type LexiconConfig struct {
	Provider       string               `mapstructure:"provider" validate:"oneof=free_dictionary words_api"`
	FreeDictionary FreeDictionaryConfig `mapstructure:"free_dictionary"`
	RandomWord     RandomWordConfig     `mapstructure:"random_word"`
	RapidAPI       RapidAPIConfig       `mapstructure:"rapidapi"`
	CacheDirectory string               `mapstructure:"cache_directory" validate:"omitempty,dir_or_absent"`
	RetryAttempts  uint                 `mapstructure:"retry_attempts" validate:"lte=10"`
}

type FreeDictionaryConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type RandomWordConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type RapidAPIConfig struct {
	Host string `mapstructure:"host"`
	Key  string `mapstructure:"key"`
}

type QuizConfig struct {
	BatchSize          int     `mapstructure:"batch_size" validate:"min=1"`
	AnswerCount        int     `mapstructure:"answer_count" validate:"min=2"`
	AntonymProbability float64 `mapstructure:"antonym_probability" validate:"gte=0.5,lte=0.6"`
	Kind               string  `mapstructure:"kind" validate:"oneof=primary word_to_definition"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"omitempty,dir_or_absent"`
}

type TemplatesConfig struct {
	VocabularyTemplate string `mapstructure:"vocabulary_template" validate:"omitempty,file"`
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
		v.AddConfigPath("$HOME/.config/lexiquiz")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "file:lexiquiz.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "lexiquiz")
	v.SetDefault("database.username", "user")
	v.SetDefault("lexicon.provider", ProviderFreeDictionary)
	v.SetDefault("lexicon.free_dictionary.base_url", "")
	v.SetDefault("lexicon.random_word.base_url", "")
	// An empty cache directory disables the lookup cache
	v.SetDefault("lexicon.cache_directory", "")
	v.SetDefault("lexicon.retry_attempts", 3)
	v.SetDefault("quiz.batch_size", 4)
	v.SetDefault("quiz.answer_count", 4)
	v.SetDefault("quiz.antonym_probability", 0.5)
	v.SetDefault("quiz.kind", QuizKindPrimary)
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "vocabulary"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.vocabulary_template", "")

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("lexicon.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("lexicon.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
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
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	if err := ValidateLexicon(cfg.Lexicon); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateLexicon checks the provider settings that depend on each other.
func ValidateLexicon(cfg LexiconConfig) error {
	switch cfg.Provider {
	case ProviderFreeDictionary:
	case ProviderWordsAPI:
		if cfg.RapidAPI.Host == "" || cfg.RapidAPI.Key == "" {
			return fmt.Errorf("invalid configuration: RAPID_API_HOST and RAPID_API_KEY are required for the %s provider", ProviderWordsAPI)
		}
	default:
		return fmt.Errorf("invalid configuration: unknown lexicon provider %q", cfg.Provider)
	}
	return nil
}
