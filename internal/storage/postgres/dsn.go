package postgres

import (
	"fmt"

	"github.com/GoSim-25-26J-441/leadboard-backend/config"
)

// DSN returns the configured connection string, building a keyword/value
// string from the individual fields when no explicit DSN is set.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
