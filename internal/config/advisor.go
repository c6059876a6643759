package config

import (
	"github.com/adeyemio/kobo/internal/advisor"
	"github.com/spf13/viper"
)

// LoadAdvisor assembles the advisor configuration from viper. The API key
// falls back to the KOBO_ADVISOR_API_KEY environment binding that viper
// provides; nothing inside the advisor package reads the environment.
func LoadAdvisor() advisor.Config {
	provider := viper.GetString("advisor.provider")
	if provider == "" {
		provider = "together"
	}

	return advisor.Config{
		Provider:    provider,
		APIKey:      viper.GetString("advisor.api_key"),
		BaseURL:     viper.GetString("advisor.base_url"),
		Model:       viper.GetString("advisor.model"),
		Temperature: viper.GetFloat64("advisor.temperature"),
		MaxTokens:   viper.GetInt("advisor.max_tokens"),
		MaxRetries:  viper.GetInt("advisor.max_retries"),
		RetryDelay:  viper.GetDuration("advisor.retry_delay"),
	}
}
