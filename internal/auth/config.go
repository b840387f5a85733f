package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the token settings of the application
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer" yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" yaml:"token_ttl" json:"token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration. Values
// missing from the file and the environment fall back to defaults.
func LoadAuthConfig(configPath string, defaults AuthConfig) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v, defaults)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Sensitive values always come from the environment when present
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}
	if ttl := os.Getenv("JWT_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TOKEN_TTL: %w", err)
		}
		config.TokenTTL = parsed
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	return nil
}

func setAuthDefaults(v *viper.Viper, defaults AuthConfig) {
	if defaults.JWTSecret != "" {
		v.SetDefault("jwt_secret", defaults.JWTSecret)
	}
	issuer := defaults.Issuer
	if issuer == "" {
		issuer = "tenant-calendar-backend"
	}
	v.SetDefault("issuer", issuer)

	ttl := defaults.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	v.SetDefault("token_ttl", ttl)
}
