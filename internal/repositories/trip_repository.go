package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

const tripColumns = `
	id, title, COALESCE(destination,''), COALESCE(description,''), kind,
	COALESCE(DATE_FORMAT(departure_date, '%Y-%m-%d'),''),
	COALESCE(DATE_FORMAT(return_date, '%Y-%m-%d'),''),
	COALESCE(base_price,0), price_2_room, price_3_room, price_4_room, promotion,
	COALESCE(seats,0), hotel_id,
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),''),
	COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'),'')`

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var (
		t                 models.Trip
		p2, p3, p4, promo sql.NullFloat64
		hotelID           sql.NullInt64
	)
	if err := s.Scan(
		&t.ID, &t.Title, &t.Destination, &t.Description, &t.Kind,
		&t.DepartureDate, &t.ReturnDate,
		&t.BasePrice, &p2, &p3, &p4, &promo,
		&t.Seats, &hotelID,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return models.Trip{}, err
	}
	t.Price2Room = intdb.FloatPtr(p2)
	t.Price3Room = intdb.FloatPtr(p3)
	t.Price4Room = intdb.FloatPtr(p4)
	t.Promotion = intdb.FloatPtr(promo)
	t.HotelID = intdb.Int64Ptr(hotelID)
	return t, nil
}

// List returns one page of trips, newest departures first, and the total count.
func (r TripRepository) List(filter models.TripFilter, page domain.Pagination) ([]models.Trip, int, error) {
	page = page.Normalize()
	where := []string{"1=1"}
	args := []any{}
	if k := strings.TrimSpace(filter.Kind); k != "" {
		where = append(where, "kind=?")
		args = append(args, k)
	}
	if d := strings.TrimSpace(filter.Destination); d != "" {
		where = append(where, "destination LIKE ?")
		args = append(args, "%"+d+"%")
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM trips WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM trips WHERE %s ORDER BY departure_date DESC, id DESC LIMIT ? OFFSET ?`, tripColumns, cond)
	rows, err := r.db().Query(query, append(args, page.PageSize, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, total, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (title, destination, description, kind, departure_date, return_date,
			base_price, price_2_room, price_3_room, price_4_room, promotion, seats, hotel_id)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.Title, t.Destination, t.Description, t.Kind,
		intdb.NullIfEmpty(t.DepartureDate), intdb.NullIfEmpty(t.ReturnDate),
		t.BasePrice, intdb.NullFloat(t.Price2Room), intdb.NullFloat(t.Price3Room), intdb.NullFloat(t.Price4Room),
		intdb.NullFloat(t.Promotion), t.Seats, intdb.NullInt64(t.HotelID),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips SET title=?, destination=?, description=?, kind=?, departure_date=?, return_date=?,
			base_price=?, price_2_room=?, price_3_room=?, price_4_room=?, promotion=?, seats=?, hotel_id=?
		WHERE id=?`,
		t.Title, t.Destination, t.Description, t.Kind,
		intdb.NullIfEmpty(t.DepartureDate), intdb.NullIfEmpty(t.ReturnDate),
		t.BasePrice, intdb.NullFloat(t.Price2Room), intdb.NullFloat(t.Price3Room), intdb.NullFloat(t.Price4Room),
		intdb.NullFloat(t.Promotion), t.Seats, intdb.NullInt64(t.HotelID),
		t.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "trip")
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "trip")
}

func (r TripRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM trips`).Scan(&n)
	return n, err
}

// expectAffected turns a zero-row write into a NotFoundError. The DSN sets
// clientFoundRows so unchanged UPDATEs still count their matched row.
func expectAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
