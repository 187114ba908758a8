package database

import (
	"fmt"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

// Creation order is the contract: every foreign key must point at a table
// created earlier in the sequence.
var expectedTableOrder = []string{
	"roles",
	"categories",
	"tags",
	"banner_positions",
	"banner_campaigns",
	"permissions",
	"social_media",
	"settings",
	"admin_users",
	"shopee_products",
	"product_tags",
	"category_keywords",
	"banners",
	"role_permissions",
	"admin_activity_logs",
}

func TestApplySchemaOrder(t *testing.T) {
	it(func() {
		for _, table := range expectedTableOrder {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table + " \\(").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}

		if failed := testDatabase().ApplySchema(); failed != 0 {
			t.Errorf("ApplySchema: expected 0 failed steps, got %d", failed)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("ApplySchema: tables not created in dependency order: %v", err)
		}
	})
}

func TestApplySchemaContinuesOnFailure(t *testing.T) {
	it(func() {
		for i, table := range expectedTableOrder {
			e := mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table + " \\(")
			if i == 1 {
				e.WillReturnError(fmt.Errorf("Error 1005: can't create table"))
			} else {
				e.WillReturnResult(sqlmock.NewResult(0, 0))
			}
		}

		if failed := testDatabase().ApplySchema(); failed != 1 {
			t.Errorf("ApplySchema: expected 1 failed step, got %d", failed)
		}

		// The remaining creates must still have been attempted.
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("ApplySchema: run stopped after a failed step: %v", err)
		}
	})
}

func TestSchemaStepCount(t *testing.T) {
	if len(schemaSteps) != 15 {
		t.Errorf("schemaSteps: expected 15 tables, got %d", len(schemaSteps))
	}
}

func TestSchemaContracts(t *testing.T) {
	testCases := []struct {
		name     string
		stmt     string
		contains string
	}{
		{
			name:     "admin_users keeps the legacy password column",
			stmt:     createAdminUsersTable,
			contains: "password VARCHAR(255)",
		},
		{
			name:     "admin_users role is cleared when the role goes away",
			stmt:     createAdminUsersTable,
			contains: "REFERENCES roles(id) ON DELETE SET NULL",
		},
		{
			name:     "product_tags joins on the external item id",
			stmt:     createProductTagsTable,
			contains: "REFERENCES shopee_products(item_id) ON DELETE CASCADE",
		},
		{
			name:     "category_keywords folds case across scripts",
			stmt:     createCategoryKeywordsTable,
			contains: "COLLATE=utf8mb4_unicode_ci",
		},
		{
			name:     "settings is a fixed singleton",
			stmt:     createSettingsTable,
			contains: "id INT NOT NULL DEFAULT 1",
		},
		{
			name:     "banner campaigns are ephemeral",
			stmt:     createBannersTable,
			contains: "REFERENCES banner_campaigns(id) ON DELETE SET NULL",
		},
		{
			name:     "banner positions are structural",
			stmt:     createBannersTable,
			contains: "REFERENCES banner_positions(id),",
		},
		{
			name:     "banners carry the position+active composite index",
			stmt:     createBannersTable,
			contains: "INDEX idx_position_active (position_id, is_active)",
		},
		{
			name:     "product_tags carry the tag+product composite index",
			stmt:     createProductTagsTable,
			contains: "INDEX idx_tag_product (tag_id, product_item_id)",
		},
	}

	for _, testCase := range testCases {
		if !strings.Contains(testCase.stmt, testCase.contains) {
			t.Errorf("%s: statement does not contain %q", testCase.name, testCase.contains)
		}
	}
}

func TestSchemaCharset(t *testing.T) {
	for _, s := range schemaSteps {
		if !strings.Contains(s.stmt, "DEFAULT CHARSET=utf8mb4") {
			t.Errorf("%s: table is not utf8mb4", s.desc)
		}
	}
}
