package services

import (
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var hotelRowColumns = []string{"id", "name", "city", "stars", "distance_to_haram_m", "description"}

func newHotelService(t *testing.T) (HotelService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return HotelService{Repo: repositories.HotelRepository{DB: db}}, mock
}

func intPtr(v int) *int { return &v }

func TestHotelListFiltersByCity(t *testing.T) {
	svc, mock := newHotelService(t)
	mock.ExpectQuery("FROM hotels WHERE city=\\? ORDER BY stars DESC").WithArgs("Makkah").
		WillReturnRows(sqlmock.NewRows(hotelRowColumns).
			AddRow(1, "Hilton Suites", "Makkah", 5, 150, "").
			AddRow(2, "Al Safwah", "Makkah", 4, nil, "dekat Masjidil Haram"))

	out, err := svc.List("  Makkah ")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].DistanceToHaramM == nil || *out[0].DistanceToHaramM != 150 {
		t.Fatalf("distance not scanned: %+v", out[0])
	}
	if out[1].DistanceToHaramM != nil {
		t.Fatalf("distance should be nil: %+v", out[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelSaveCreatesWhenIDIsZero(t *testing.T) {
	svc, mock := newHotelService(t)
	mock.ExpectExec("INSERT INTO hotels").
		WithArgs("Hilton Suites", "Makkah", 5, 150, "").
		WillReturnResult(sqlmock.NewResult(7, 1))

	h, err := svc.Save(models.Hotel{Name: " Hilton  Suites ", City: "Makkah", Stars: 5, DistanceToHaramM: intPtr(150)})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if h.ID != 7 || h.Name != "Hilton Suites" {
		t.Fatalf("unexpected hotel %+v", h)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelSaveUpdatesExisting(t *testing.T) {
	svc, mock := newHotelService(t)
	mock.ExpectExec("UPDATE hotels SET").
		WithArgs("Al Safwah", "Makkah", 4, nil, "", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := svc.Save(models.Hotel{ID: 3, Name: "Al Safwah", City: "Makkah", Stars: 4}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelSaveUpdateUnknownHotel(t *testing.T) {
	svc, mock := newHotelService(t)
	mock.ExpectExec("UPDATE hotels SET").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Save(models.Hotel{ID: 99, Name: "Al Safwah", City: "Makkah", Stars: 4})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestHotelSaveValidation(t *testing.T) {
	svc, mock := newHotelService(t)

	cases := []models.Hotel{
		{Name: " ", City: "Makkah", Stars: 3},
		{Name: "Hotel", City: "", Stars: 3},
		{Name: "Hotel", City: "Madinah", Stars: 0},
		{Name: "Hotel", City: "Madinah", Stars: 6},
		{Name: "Hotel", City: "Madinah", Stars: 3, DistanceToHaramM: intPtr(-1)},
	}
	for _, h := range cases {
		if _, err := svc.Save(h); !domain.IsValidation(err) {
			t.Fatalf("%+v: expected ValidationError, got %v", h, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("nothing should reach the database: %v", err)
	}
}

func TestHotelGetAndDelete(t *testing.T) {
	svc, mock := newHotelService(t)

	if _, err := svc.Get(0); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for id 0, got %v", err)
	}

	mock.ExpectQuery("FROM hotels WHERE id=\\?").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(hotelRowColumns).AddRow(4, "Pullman Zamzam", "Makkah", 5, 50, ""))
	h, err := svc.Get(4)
	if err != nil || h.Name != "Pullman Zamzam" {
		t.Fatalf("Get = %+v, %v", h, err)
	}

	mock.ExpectExec("DELETE FROM hotels WHERE id=\\?").WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := svc.Delete(4); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on missing row, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
