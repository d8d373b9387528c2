package config

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"store.driver": DriverMemory,
		"store.dsn":    "",

		"roster.path":    "",
		"roster.company": "Company",

		"report.xlsx_path": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "workforce",
	}
}
