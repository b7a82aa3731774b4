package otel

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string `envconfig:"GENEX_OTEL_ENDPOINT"`
	Enabled  bool   `envconfig:"GENEX_OTEL_ENABLED" default:"false"`
	Insecure bool   `envconfig:"GENEX_OTEL_INSECURE" default:"false"`
}
