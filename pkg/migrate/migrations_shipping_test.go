package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/migrate"
)

func TestShippingMigrationContainsSchemas(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_shipping_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no shipping migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE stores",
		"CREATE TABLE product_variants",
		"CREATE TABLE shipping_zones",
		"CREATE TABLE shipping_methods",
		"CREATE TABLE shipping_rates",
		"CREATE TABLE locality_rates",
		"CREATE TABLE free_shipping_rules",
		"CREATE TABLE shipping_configs",
		"CREATE INDEX idx_shipping_rates_method",
		"CREATE INDEX idx_free_shipping_rules_store",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
