package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountsMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_discounts_table.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no discounts migration file found")

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	content := string(data)

	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS discounts",
		"price        NUMERIC(12,2) NOT NULL",
		"CONSTRAINT discounts_min_le_max CHECK (min_discount <= max_discount)",
		"DROP TABLE IF EXISTS discounts",
	} {
		assert.Contains(t, content, sub)
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}

func TestValidateDirRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, ValidateDir(dir), "empty dir must fail")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad-name.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644))
	err := ValidateDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid migration filename")
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Coupon Index!")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_add_coupon_index.sql"), path)

	require.NoError(t, ValidateDir(dir))

	_, err = CreateSQLMigration(dir, "!!!")
	require.Error(t, err)
}
