package catalog

import (
	"sort"
	"strings"
	"sync"

	"tripplanner/internal/domain/models"
)

// Store keeps the static travel catalog in memory for fast read-only access.
// It is shared across requests; nothing mutates it after Load.
type Store struct {
	mu         sync.RWMutex
	cities     []models.CityMeta
	poisByCity map[string][]models.Poi
	routesFrom map[string][]models.Route
}

func NewStore() *Store {
	return &Store{
		poisByCity: make(map[string][]models.Poi),
		routesFrom: make(map[string][]models.Route),
	}
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// LoadCities replaces the city metadata list.
func (s *Store) LoadCities(cities []models.CityMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cities = append([]models.CityMeta{}, cities...)
	sort.Slice(s.cities, func(i, j int) bool {
		return s.cities[i].Name < s.cities[j].Name
	})
}

// LoadPois replaces the POI lists, indexed by lowercase city name.
func (s *Store) LoadPois(byCity map[string][]models.Poi) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.poisByCity = make(map[string][]models.Poi, len(byCity))
	for city, pois := range byCity {
		s.poisByCity[cityKey(city)] = append([]models.Poi{}, pois...)
	}
}

// LoadRoutes replaces the transport routes, indexed by lowercase origin.
func (s *Store) LoadRoutes(routes []models.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routesFrom = make(map[string][]models.Route)
	for _, r := range routes {
		r.From = cityKey(r.From)
		r.To = cityKey(r.To)
		if r.From == "" || r.To == "" {
			continue
		}
		s.routesFrom[r.From] = append(s.routesFrom[r.From], r)
	}
}

func (s *Store) Cities() []models.CityMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.CityMeta{}, s.cities...)
}

// Pois returns the POI list for a city. An unknown city yields an empty
// list, not an error.
func (s *Store) Pois(city string) []models.Poi {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pois, ok := s.poisByCity[cityKey(city)]
	if !ok {
		return []models.Poi{}
	}
	return append([]models.Poi{}, pois...)
}

// RoutesFrom returns every route whose origin is the given city.
func (s *Store) RoutesFrom(city string) []models.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routes, ok := s.routesFrom[cityKey(city)]
	if !ok {
		return []models.Route{}
	}
	return append([]models.Route{}, routes...)
}

// TransportRoutes renders the route table keyed "from-to", the shape the
// catalog endpoint exposes.
func (s *Store) TransportRoutes() map[string][]models.TransportOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]models.TransportOption)
	for _, routes := range s.routesFrom {
		for _, r := range routes {
			out[r.From+"-"+r.To] = append([]models.TransportOption{}, r.Options...)
		}
	}
	return out
}
