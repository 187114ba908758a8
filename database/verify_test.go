package database

import (
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func allTablesRows() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Tables_in_shopee_affiliate"})
	for _, table := range expectedTableOrder {
		rows.AddRow(table)
	}
	return rows
}

func TestVerify(t *testing.T) {
	it(func() {
		// The nine counts run concurrently, so completion order is free.
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery("SHOW TABLES").WillReturnRows(allTablesRows())

		counts := map[string]int{
			"roles":            4,
			"permissions":      28,
			"role_permissions": 62,
			"admin_users":      3,
			"categories":       7,
			"tags":             2,
			"banner_positions": 4,
			"banner_campaigns": 1,
			"banners":          3,
		}
		for table, count := range counts {
			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM " + table).
				WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(count))
		}

		if err := testDatabase().Verify(); err != nil {
			t.Errorf("Verify: expected success, got error: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Verify: unmet expectations: %v", err)
		}
	})
}

func TestVerifyCountFailure(t *testing.T) {
	it(func() {
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery("SHOW TABLES").WillReturnRows(allTablesRows())

		for _, table := range verifyTables {
			if table == "banners" {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM banners").
					WillReturnError(fmt.Errorf("Error 1146: table doesn't exist"))
				continue
			}
			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM " + table).
				WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
		}

		if err := testDatabase().Verify(); err == nil {
			t.Errorf("Verify: expected an error when a count query fails")
		}
	})
}

func TestVerifyShowTablesFailure(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SHOW TABLES").
			WillReturnError(fmt.Errorf("Error 1049: unknown database"))

		if err := testDatabase().Verify(); err == nil {
			t.Errorf("Verify: expected an error when table enumeration fails")
		}
	})
}
