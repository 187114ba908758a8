package database

import "github.com/apex/log"

// execStep runs a single schema or seed statement. A failure is logged with
// the step description and the driver message, then swallowed; the caller
// decides whether to keep going.
func (d *Database) execStep(stmt, desc string) bool {
	log.Infof("Running: %s", desc)
	if _, err := d.db.Exec(stmt); err != nil {
		log.Errorf("%s failed: %v", desc, err)
		return false
	}
	log.Infof("%s done", desc)
	return true
}
