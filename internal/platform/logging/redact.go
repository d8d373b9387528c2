package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute names whose values are always
// redacted. Store connection strings are logged under "dsn".
var SensitiveFields = []string{
	"dsn",
	"password",
	"secret",
	"token",
}

// urlCredentialPattern matches "scheme://user:password@" in connection URLs
// such as "postgres://payroll:hunter2@db:5432/workforce".
var urlCredentialPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:[^/\s@]+@`)

// dsnPasswordPattern matches key/value DSN passwords such as
// "host=db user=payroll password=hunter2".
var dsnPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)

// bearerPattern matches "Bearer <token>" strings that appear as raw values,
// e.g. in OTLP exporter errors.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+4)

	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(urlCredentialPattern),
		masq.WithRegex(dsnPasswordPattern),
		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
