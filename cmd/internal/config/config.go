package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	envVarsPrefix = "/entitysearch/prod/"
	ssmRegion     = "ca-central-1"
)

type Config struct {
	LegalAPIURL       string        `validate:"required,url"`
	LegalAPIKey       string        `validate:"omitempty"`
	LegalAPIAccountID string        `validate:"omitempty,numeric"`
	LegalAPITimeout   time.Duration `validate:"gt=0"`

	DatabasePath       string        `validate:"required"`
	CacheTTL           time.Duration `validate:"gt=0"`
	CacheCleanInterval time.Duration `validate:"gt=0"`

	ListenAddr string `validate:"required"`
	LogLevel   log.Lvl
}

// LoadEnv exports the deployment settings into the process environment.
// Production reads them from SSM Parameter Store, anything else from an
// optional .env file.
func LoadEnv(ctx context.Context) error {
	if os.Getenv("GO_ENV") == "production" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(ssmRegion))
		if err != nil {
			return fmt.Errorf("unable to load SDK config: %w", err)
		}
		return loadParameters(ctx, ssm.NewFromConfig(cfg), envVarsPrefix)
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func loadParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(prefix)
	loaded := 0
	// Export vars
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := aws.ToString(param.Name)[prefixLength:]
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable: %w", err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}

// FromEnv builds the configuration from the environment and validates it.
func FromEnv(validate *validator.Validate) (*Config, error) {
	cfg := &Config{
		LegalAPIURL:        os.Getenv("LEGAL_API_URL"),
		LegalAPIKey:        os.Getenv("LEGAL_API_KEY"),
		LegalAPIAccountID:  os.Getenv("LEGAL_API_ACCOUNT_ID"),
		LegalAPITimeout:    30 * time.Second,
		DatabasePath:       "database.db",
		CacheTTL:           10 * time.Hour,
		CacheCleanInterval: time.Hour,
		ListenAddr:         ":7070",
		LogLevel:           log.INFO,
	}

	var errs []error
	durations := map[string]*time.Duration{
		"LEGAL_API_TIMEOUT":             &cfg.LegalAPITimeout,
		"BUSINESS_CACHE_TTL":            &cfg.CacheTTL,
		"BUSINESS_CACHE_CLEAN_INTERVAL": &cfg.CacheCleanInterval,
	}
	for key, dst := range durations {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		*dst = d
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		lvl, err := parseLevel(raw)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.LogLevel = lvl
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLevel(raw string) (log.Lvl, error) {
	switch raw {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return log.INFO, fmt.Errorf("LOG_LEVEL: unknown level %q", raw)
	}
}
