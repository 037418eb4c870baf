package container

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importapp "pricecatalog/internal/application/importing"
	"pricecatalog/internal/config"
	"pricecatalog/internal/domain/catalog"
	"pricecatalog/internal/domain/repositories"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.GetDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "catalog.db")
	cfg.Import.BatchSize = 2
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestContainer_InitializeAndShutdown(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)
	require.NoError(t, c.Initialize())

	assert.NotNil(t, c.ImportHandler)
	assert.NotNil(t, c.CatalogHandler)
	require.NoError(t, c.Ping(context.Background()))

	assert.Error(t, c.Initialize(), "second Initialize must fail")

	require.NoError(t, c.Shutdown(context.Background()))
	assert.Error(t, c.Ping(context.Background()))
	require.NoError(t, c.Shutdown(context.Background()))
}

func TestContainer_InvalidBatchSize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Import.BatchSize = 0

	c, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Error(t, c.Initialize())
	assert.Nil(t, c.DB)
}

// TestContainer_ImportThenQuery проверяет сквозной путь: файл -> SQLite -> снимок каталога
func TestContainer_ImportThenQuery(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)
	require.NoError(t, c.Initialize())
	t.Cleanup(func() { _ = c.Shutdown(context.Background()) })

	header := strings.Join([]string{catalog.ColumnCategory, catalog.ColumnVariation, catalog.ColumnPrice, catalog.ColumnToken}, ",")
	csv := header + "\n" +
		"iPhone > 13 > パネル,,\"¥9,800\",tok-1\n" +
		"iPhone > 12 > バッテリー,,7000,tok-2\n" +
		"Galaxy > S20 > Fカメラ,,12800,tok-3\n"

	ctx := context.Background()
	result, err := c.ImportUseCase.ImportFile(ctx, importapp.ImportFileRequest{
		Filename: "price.csv",
		Content:  strings.NewReader(csv),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.NormalizedCount)
	assert.False(t, result.Partial())

	rec, err := c.ImportUseCase.GetImport(ctx, result.ImportID)
	require.NoError(t, err)
	assert.Equal(t, repositories.ImportStatusCompleted, rec.Status)

	brands, err := c.CatalogUseCase.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone", "Galaxy"}, brands)

	models, err := c.CatalogUseCase.Models(ctx, "iPhone")
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "13"}, models)
}
