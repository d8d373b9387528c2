// Package config provides configuration loading and validation for the
// workforce command. Configuration is loaded from YAML files with environment
// variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the command.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Roster    RosterConfig    `koanf:"roster"`
	Report    ReportConfig    `koanf:"report"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects where department rosters are kept.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// Persistent reports whether the driver needs a database connection.
func (s StoreConfig) Persistent() bool {
	return s.Driver == DriverSQLite || s.Driver == DriverPostgres
}

// RosterConfig points at the roster document applied on startup.
type RosterConfig struct {
	Path    string `koanf:"path"`
	Company string `koanf:"company"`
}

// ReportConfig holds payroll report output settings. An empty XLSXPath
// disables the workbook export.
type ReportConfig struct {
	XLSXPath string `koanf:"xlsx_path"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
