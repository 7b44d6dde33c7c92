package config

import "time"

// Built-in fallback values applied when no other source sets a field.
const (
	// DefaultHTTPAddress mirrors the port the original deployment listened on.
	DefaultHTTPAddress = ":5000"

	// DefaultTokenIssuer is the "iss" claim value when none is configured.
	DefaultTokenIssuer = "timesheet-server"

	// DefaultTokenDuration is the session lifetime: one hour, matching the
	// cookie max-age.
	DefaultTokenDuration = time.Hour

	// DefaultRequestTimeout bounds a single inbound request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultDBEngine selects PostgreSQL unless configured otherwise.
	DefaultDBEngine = "postgres"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Engine: DefaultDBEngine,
			},
		},
	}
}
