package config

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	ReusePort bool   `json:"reuse_port"`
}

// AuthConfig holds the single accepted credential pair for update requests.
//
// PasswordHash is a Werkzeug-format hash ("pbkdf2:sha256:<n>$<salt>$<hex>"),
// never the plaintext.
type AuthConfig struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// DNSConfig describes the managed record and the provider that owns it.
type DNSConfig struct {
	Provider        string `json:"provider"`
	Project         string `json:"project"`
	Zone            string `json:"zone"`
	Hostname        string `json:"hostname"`
	TTL             int64  `json:"ttl"`
	CredentialsFile string `json:"credentials_file,omitempty"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// APIKey is a secret and must not be returned by API endpoints.
type APIConfig struct {
	APIKey string `json:"-"`
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Auth    AuthConfig    `json:"auth"`
	DNS     DNSConfig     `json:"dns"`
	Logging LoggingConfig `json:"logging"`
	API     APIConfig     `json:"api"`
}
