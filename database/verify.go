package database

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

// verifyTables are the seeded tables whose row counts get reported.
var verifyTables = []string{
	"roles",
	"permissions",
	"role_permissions",
	"admin_users",
	"categories",
	"tags",
	"banner_positions",
	"banner_campaigns",
	"banners",
}

// Verify enumerates the tables in the schema and reports row counts for the
// seeded tables. The counts are advisory and are not compared against
// expectations. A failing query is fatal because it means the schema phase
// left the database unusable.
func (d *Database) Verify() error {
	rows, err := d.db.Query("SHOW TABLES")
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating tables: %w", err)
	}

	log.Infof("%d tables in %s", len(tables), d.name)

	// The counts are read-only and independent of each other, so they run
	// concurrently. Output order follows completion order.
	var wg sync.WaitGroup
	errs := make(chan error, len(verifyTables))
	for _, table := range verifyTables {
		wg.Add(1)
		go func(table string) {
			defer wg.Done()
			var count int
			if err := d.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
				errs <- fmt.Errorf("failed to count %s: %w", table, err)
				return
			}
			log.Infof("%s: %d rows", table, count)
		}(table)
	}
	wg.Wait()
	close(errs)

	return <-errs
}
