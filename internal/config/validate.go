package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Inventory.ImportMaxRows <= 0 {
		return fmt.Errorf("inventory.import_max_rows must be > 0 (got %d)", c.Inventory.ImportMaxRows)
	}
	if c.Inventory.ExportMaxRows <= 0 {
		return fmt.Errorf("inventory.export_max_rows must be > 0 (got %d)", c.Inventory.ExportMaxRows)
	}
	if c.Inventory.BatchMaxIDs <= 0 {
		return fmt.Errorf("inventory.batch_max_ids must be > 0 (got %d)", c.Inventory.BatchMaxIDs)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	return nil
}
