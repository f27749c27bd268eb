package types

import "time"

// HTTPConfig holds shared HTTP settings for registry listing requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "genome-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search command.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit caps the number of records returned (0 = unlimited).
	Limit int `json:"limit" yaml:"limit"`
}

// DatabaseConfig holds connection settings for the public core-database
// MySQL service.
type DatabaseConfig struct {
	// Host is the MySQL server hostname.
	Host string `json:"host" yaml:"host"`

	// Port is the primary MySQL port.
	Port int `json:"port" yaml:"port"`

	// FallbackPort is tried once when the primary port is unreachable.
	FallbackPort int `json:"fallback_port" yaml:"fallback_port"`

	// User is the MySQL account name. The public service accepts "anonymous".
	User string `json:"user" yaml:"user"`

	// Password is the MySQL account password (empty for the public service).
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// ConnectTimeout bounds each connection attempt, including the
	// fallback-port retry.
	ConnectTimeout time.Duration `json:"connect_timeout" yaml:"connect_timeout"`
}
