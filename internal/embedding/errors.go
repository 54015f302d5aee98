package embedding

import "fmt"

// ProviderError represents a failure from the upstream embedding provider.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ConfigError represents a missing or invalid embedding configuration,
// such as an absent API key or model name.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("embedding configuration error: %s", e.Message)
}
