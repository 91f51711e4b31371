package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCatalogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"cities.json": `[
			{"name": "Paris", "country": "France"},
			{"name": "London", "country": "United Kingdom"}
		]`,
		"routes.json": `[
			{"from": "Paris", "to": "London", "options": [
				{"mode": "train", "durationHours": 2.5, "cost": 90}
			]}
		]`,
		"pois.json": `{
			"paris": [
				{"id": 1, "name": "Louvre", "category": "museums", "popularityScore": 10}
			]
		}`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadReadsAllThreeFiles(t *testing.T) {
	store, err := Load(writeCatalogDir(t))
	require.NoError(t, err)

	require.Len(t, store.Cities(), 2)
	require.Len(t, store.Pois("paris"), 1)
	require.Len(t, store.RoutesFrom("paris"), 1)
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.Error(t, err)
}

func TestStoreLookupsAreCaseInsensitive(t *testing.T) {
	store, err := Load(writeCatalogDir(t))
	require.NoError(t, err)

	require.Len(t, store.Pois("  PARIS "), 1)
	routes := store.RoutesFrom("Paris")
	require.Len(t, routes, 1)
	require.Equal(t, "london", routes[0].To, "route endpoints are normalized on load")
}

func TestStoreUnknownCityYieldsEmpty(t *testing.T) {
	store, err := Load(writeCatalogDir(t))
	require.NoError(t, err)

	require.Empty(t, store.Pois("atlantis"))
	require.Empty(t, store.RoutesFrom("atlantis"))
}

func TestTransportRoutesKeyedByPair(t *testing.T) {
	store, err := Load(writeCatalogDir(t))
	require.NoError(t, err)

	table := store.TransportRoutes()
	require.Contains(t, table, "paris-london")
	require.Len(t, table["paris-london"], 1)
}
