package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any
// are invalid. Call after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	apiURL := viper.GetString("api_url")
	if apiURL == "" {
		errors = append(errors, "api_url is required (set PODLY_API_URL or api_url in config.yaml)")
	} else {
		u, err := url.Parse(apiURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errors = append(errors, fmt.Sprintf("api_url must be an http(s) URL, got: %q", apiURL))
		}
	}

	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 0 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", port))
		}
	}

	if viper.IsSet("history_limit") {
		limit := viper.GetInt("history_limit")
		if limit <= 0 {
			errors = append(errors, fmt.Sprintf("history_limit must be positive, got: %d", limit))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}
