package services

import (
	"errors"
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newDashboardService(t *testing.T) (DashboardService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return DashboardService{
		Trips:        repositories.TripRepository{DB: db},
		Users:        repositories.UserRepository{DB: db},
		Reservations: repositories.ReservationRepository{DB: db},
	}, mock
}

func TestDashboardStats(t *testing.T) {
	svc, mock := newDashboardService(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(40))
	mock.ExpectQuery("GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("pending", 3))
	mock.ExpectQuery("SUM\\(prix_calculer\\)").WithArgs(models.ReservationConfirmed, 12).
		WillReturnRows(sqlmock.NewRows([]string{"month", "amount"}).
			AddRow("2026-08", "43600.00").
			AddRow("2026-09", "19620.00"))

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Trips != 6 || stats.Users != 40 {
		t.Fatalf("unexpected counters %+v", stats)
	}
	want := map[string]int{
		models.ReservationPending:   3,
		models.ReservationConfirmed: 0,
		models.ReservationCancelled: 0,
	}
	if len(stats.Reservations) != len(want) {
		t.Fatalf("reservations = %v", stats.Reservations)
	}
	for k, v := range want {
		if got, ok := stats.Reservations[k]; !ok || got != v {
			t.Fatalf("reservations[%s] = %d (present %v), want %d", k, got, ok, v)
		}
	}
	if len(stats.Revenue) != 2 || stats.Revenue[1].Amount != 19620 {
		t.Fatalf("unexpected revenue %+v", stats.Revenue)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardStatsWrapsQueryError(t *testing.T) {
	svc, mock := newDashboardService(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trips").WillReturnError(errors.New("connection reset"))

	_, err := svc.Stats()
	if !domain.IsInternal(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}
