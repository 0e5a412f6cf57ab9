package mail

// Config represents the configuration for the transactional mail client
type Config struct {
	// APIKey authenticates against the mail provider
	APIKey string

	// BaseURL is the mail provider API base URL
	BaseURL string

	// FromEmail is the sender address
	FromEmail string

	// ToEmail is the restaurant inbox that receives notifications
	ToEmail string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrInvalidConfig
	}
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.FromEmail == "" {
		return ErrInvalidConfig
	}
	if c.ToEmail == "" {
		return ErrInvalidConfig
	}
	return nil
}
