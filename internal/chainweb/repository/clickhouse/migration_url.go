package clickhouse

import "strings"

// MigrationURL turns a connection DSN into the golang-migrate database URL.
// Schema files hold several statements, so multi-statement mode is enabled
// unless the DSN sets it already.
func MigrationURL(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}
