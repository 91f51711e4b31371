package handlers

import (
	"net/http"

	"tripplanner/internal/catalog"
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/services"
)

var (
	env          intconfig.Env
	catalogStore *catalog.Store
	jwtSecret    []byte
)

// Setup wires the handler package's shared read-only dependencies. Called
// once from the router before any route is mounted.
func Setup(e intconfig.Env, store *catalog.Store) {
	env = e
	catalogStore = store
	jwtSecret = []byte(e.JWTSecret)
}

// JWTSecret exposes the signing key to the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

func newTripService(requestID string) services.TripService {
	return services.TripService{
		Catalog:   catalogStore,
		RequestID: requestID,
		Recs: services.RecsService{
			BaseURL:   env.RecsBaseURL,
			APIKey:    env.RecsAPIKey,
			Model:     env.RecsModel,
			Client:    &http.Client{},
			RequestID: requestID,
		},
	}
}
