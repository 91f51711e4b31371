package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/google/uuid"
)

// TripRepository persists generated itineraries. The payload column holds
// the marshalled TripResponse so the schema never chases the wire format.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TripRepository) Save(trip models.SavedTrip) (models.SavedTrip, error) {
	db := r.db()
	if db == nil {
		return trip, domain.InternalError{Msg: "saved trips storage unavailable"}
	}
	if !intdb.HasTable(db, "saved_trips") {
		return trip, domain.InternalError{Msg: "saved_trips table missing, run migrations first"}
	}

	if strings.TrimSpace(trip.ID) == "" {
		trip.ID = uuid.NewString()
	}
	if trip.CreatedAt == "" {
		trip.CreatedAt = utils.FormatDateTime(utils.NowUTC())
	}

	payload, err := json.Marshal(savedTripPayload{Request: trip.Request, Response: trip.Response})
	if err != nil {
		return trip, fmt.Errorf("marshal trip payload: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO saved_trips (id, owner_id, origin, duration_days, max_budget, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.ID,
		ownerArg(trip.OwnerID),
		utils.NormalizeCity(trip.Origin),
		trip.DurationDays,
		trip.MaxBudget,
		payload,
		trip.CreatedAt,
	)
	if err != nil {
		return trip, fmt.Errorf("insert saved trip: %w", err)
	}
	return trip, nil
}

// List returns saved trips, newest first. ownerID 0 lists every trip.
func (r TripRepository) List(ownerID int64) ([]models.SavedTrip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "saved_trips") {
		return []models.SavedTrip{}, nil
	}

	query := `
		SELECT id, COALESCE(owner_id,0), origin, duration_days, max_budget, payload, created_at
		FROM saved_trips`
	args := []any{}
	if ownerID > 0 {
		query += ` WHERE owner_id = ?`
		args = append(args, ownerID)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list saved trips: %w", err)
	}
	defer rows.Close()

	out := []models.SavedTrip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, trip)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id string) (models.SavedTrip, error) {
	var trip models.SavedTrip

	db := r.db()
	if db == nil || !intdb.HasTable(db, "saved_trips") {
		return trip, domain.NotFoundError{Resource: "trip"}
	}

	row := db.QueryRow(`
		SELECT id, COALESCE(owner_id,0), origin, duration_days, max_budget, payload, created_at
		FROM saved_trips
		WHERE id = ?`, strings.TrimSpace(id))

	trip, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return trip, domain.NotFoundError{Resource: "trip"}
	}
	return trip, err
}

func (r TripRepository) Delete(id string) error {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "saved_trips") {
		return domain.NotFoundError{Resource: "trip"}
	}

	res, err := db.Exec(`DELETE FROM saved_trips WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("delete saved trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

type savedTripPayload struct {
	Request  models.TripRequest  `json:"request"`
	Response models.TripResponse `json:"response"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.SavedTrip, error) {
	var (
		trip    models.SavedTrip
		payload []byte
	)
	if err := row.Scan(
		&trip.ID,
		&trip.OwnerID,
		&trip.Origin,
		&trip.DurationDays,
		&trip.MaxBudget,
		&payload,
		&trip.CreatedAt,
	); err != nil {
		return trip, err
	}
	if len(payload) > 0 {
		var decoded savedTripPayload
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return trip, fmt.Errorf("decode trip payload %s: %w", trip.ID, err)
		}
		trip.Request = decoded.Request
		trip.Response = decoded.Response
	}
	return trip, nil
}

func ownerArg(ownerID int64) any {
	if ownerID <= 0 {
		return nil
	}
	return ownerID
}
