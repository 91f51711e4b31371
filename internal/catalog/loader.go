package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tripplanner/internal/domain/models"
)

const (
	citiesFile = "cities.json"
	routesFile = "routes.json"
	poisFile   = "pois.json"
)

// Load reads the static catalog from a data directory. All three files must
// parse; a missing or corrupt catalog is a startup error, not something to
// limp along with.
func Load(dataDir string) (*Store, error) {
	var cities []models.CityMeta
	if err := readJSON(filepath.Join(dataDir, citiesFile), &cities); err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}

	var routes []models.Route
	if err := readJSON(filepath.Join(dataDir, routesFile), &routes); err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	pois := map[string][]models.Poi{}
	if err := readJSON(filepath.Join(dataDir, poisFile), &pois); err != nil {
		return nil, fmt.Errorf("load pois: %w", err)
	}

	s := NewStore()
	s.LoadCities(cities)
	s.LoadRoutes(routes)
	s.LoadPois(pois)
	return s, nil
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
