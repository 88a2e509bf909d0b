package migrate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDir_ShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}

func TestValidateDir_RejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "bad_name.sql", "-- +goose Up\n-- +goose Down\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename to fail validation")
	}
}

func TestValidateDir_RejectsMissingDownSection(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20250301120000_only_up.sql", "-- +goose Up\nSELECT 1;\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected migration without Down section to fail validation")
	}
}

func TestCreateSQLMigration_SanitizesName(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Delay Fee Column!")
	if err != nil {
		t.Fatalf("CreateSQLMigration returned error: %v", err)
	}
	base := filepath.Base(path)
	if m := sqlFileRe.FindStringSubmatch(base); m == nil {
		t.Fatalf("created migration %q does not match goose naming", base)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration failed validation: %v", err)
	}
}

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
