package models

import "github.com/driftdns/driftdns/internal/config"

// AuthConfigResponse is a redacted view of the update credentials. The
// password hash never leaves the process.
type AuthConfigResponse struct {
	Username           string `json:"username"`
	PasswordConfigured bool   `json:"password_configured"`
}

// ConfigResponse is the API response for GET /config.
type ConfigResponse struct {
	Server  config.ServerConfig  `json:"server"`
	Auth    AuthConfigResponse   `json:"auth"`
	DNS     config.DNSConfig     `json:"dns"`
	Logging config.LoggingConfig `json:"logging"`
}
