package postgres

import "strings"

// MigrationURL maps a postgres:// DSN onto the pgx5 driver of golang-migrate.
// Other schemes are returned unchanged.
func MigrationURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
