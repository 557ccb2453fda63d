package repositories

import (
	"testing"

	"travelagency/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReservationRepositoryCreateStoresNotes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservations \\(.*prix_calculer, status, notes\\)").
		WithArgs(int64(3), int64(9), 1, 0, 1, 2, 0, 1, 20000.0, 0.0, 1800.0, 21800.0, "pending", "lantai bawah").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := ReservationRepository{DB: db}.Create(models.Reservation{
		TripID: 3, UserID: 9, Room2: 1, Room4: 1, Adults: 2, Babies: 1,
		TotalAdults: 20000, TotalBabies: 1800, PrixCalculer: 21800,
		Status: models.ReservationPending, Notes: "lantai bawah",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 12 {
		t.Fatalf("id = %d, want 12", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepositoryCreateEmptyNotesIsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(int64(1), int64(1), 0, 0, 0, 1, 0, 0, 0.0, 0.0, 0.0, 0.0, "pending", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := (ReservationRepository{DB: db}).Create(models.Reservation{TripID: 1, UserID: 1, Adults: 1, Status: "pending", Notes: "  "}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepositoryCountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 4).
			AddRow("confirmed", 2))

	got, err := ReservationRepository{DB: db}.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus error: %v", err)
	}
	if got["pending"] != 4 || got["confirmed"] != 2 {
		t.Fatalf("unexpected counts %v", got)
	}
}

func TestReservationRepositoryRevenueByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SUM\\(prix_calculer\\).*WHERE status=\\? AND created_at >= DATE_SUB").
		WithArgs(models.ReservationConfirmed, 12).
		WillReturnRows(sqlmock.NewRows([]string{"month", "amount"}).
			AddRow("2026-07", "21800.00").
			AddRow("2026-08", "43600.50"))

	// a non-positive window falls back to one year
	got, err := ReservationRepository{DB: db}.RevenueByMonth(0)
	if err != nil {
		t.Fatalf("RevenueByMonth error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Month != "2026-07" || got[1].Amount != 43600.5 {
		t.Fatalf("unexpected revenue %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepositoryRevenueByMonthEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SUM\\(prix_calculer\\)").WithArgs(models.ReservationConfirmed, 3).
		WillReturnRows(sqlmock.NewRows([]string{"month", "amount"}))

	got, err := ReservationRepository{DB: db}.RevenueByMonth(3)
	if err != nil {
		t.Fatalf("RevenueByMonth error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
