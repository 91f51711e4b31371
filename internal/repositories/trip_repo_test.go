package repositories

import (
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectSavedTripsTable(mock sqlmock.Sqlmock, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow("saved_trips")
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs("saved_trips").WillReturnRows(rows)
}

func TestTripRepositorySaveAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSavedTripsTable(mock, true)
	mock.ExpectExec("INSERT INTO saved_trips").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := TripRepository{DB: db}
	saved, err := repo.Save(models.SavedTrip{
		Origin:       "Paris",
		DurationDays: 3,
		MaxBudget:    1000,
		Response: models.TripResponse{
			TripDays: []models.TripDay{{Day: 1, City: "paris", Date: "2024-06-01"}},
		},
	})
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}
	if saved.CreatedAt == "" {
		t.Fatalf("expected created_at to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositorySaveWithoutTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSavedTripsTable(mock, false)

	repo := TripRepository{DB: db}
	if _, err := repo.Save(models.SavedTrip{Origin: "paris"}); err == nil {
		t.Fatalf("expected error when saved_trips table is missing")
	}
}

func TestTripRepositoryListWithoutTableIsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSavedTripsTable(mock, false)

	repo := TripRepository{DB: db}
	trips, err := repo.List(0)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected empty list, got %d", len(trips))
	}
}

func TestTripRepositoryGetByIDDecodesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	payload := `{"request":{"origin":"paris","interests":["museums"]},"response":{"tripDays":[{"day":1,"city":"paris","date":"2024-06-01","activities":[],"dailyCost":0}],"totalCost":0,"totalTravelTime":0,"remainingBudget":1000}}`

	expectSavedTripsTable(mock, true)
	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "origin", "duration_days", "max_budget", "payload", "created_at",
		}).AddRow("abc", 0, "paris", 3, 1000.0, payload, "2024-06-01 10:00:00"))

	repo := TripRepository{DB: db}
	trip, err := repo.GetByID("abc")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if len(trip.Response.TripDays) != 1 {
		t.Fatalf("payload not decoded: %+v", trip.Response)
	}
	if len(trip.Request.Interests) != 1 || trip.Request.Interests[0] != "museums" {
		t.Fatalf("request not decoded: %+v", trip.Request)
	}
}

func TestTripRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSavedTripsTable(mock, true)
	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "origin", "duration_days", "max_budget", "payload", "created_at",
		}))

	repo := TripRepository{DB: db}
	if _, err := repo.GetByID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTripRepositoryDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectSavedTripsTable(mock, true)
	mock.ExpectExec("DELETE FROM saved_trips").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	if err := repo.Delete("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
