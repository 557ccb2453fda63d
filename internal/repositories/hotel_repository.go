package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const hotelColumns = `id, name, city, stars, distance_to_haram_m, COALESCE(description,'')`

func scanHotel(s rowScanner) (models.Hotel, error) {
	var (
		h    models.Hotel
		dist sql.NullInt64
	)
	if err := s.Scan(&h.ID, &h.Name, &h.City, &h.Stars, &dist, &h.Description); err != nil {
		return models.Hotel{}, err
	}
	h.DistanceToHaramM = intdb.IntPtr(dist)
	return h, nil
}

func (r HotelRepository) List(city string) ([]models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	args := []any{}
	if c := strings.TrimSpace(city); c != "" {
		query += ` WHERE city=?`
		args = append(args, c)
	}
	query += ` ORDER BY stars DESC, name ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return out, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	h, err := scanHotel(r.db().QueryRow(`SELECT `+hotelColumns+` FROM hotels WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel", Err: err}
	}
	return h, err
}

func (r HotelRepository) Create(h models.Hotel) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO hotels (name, city, stars, distance_to_haram_m, description) VALUES (?,?,?,?,?)`,
		h.Name, h.City, h.Stars, intdb.NullInt(h.DistanceToHaramM), h.Description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) Update(h models.Hotel) error {
	res, err := r.db().Exec(`UPDATE hotels SET name=?, city=?, stars=?, distance_to_haram_m=?, description=? WHERE id=?`,
		h.Name, h.City, h.Stars, intdb.NullInt(h.DistanceToHaramM), h.Description, h.ID)
	if err != nil {
		return err
	}
	return expectAffected(res, "hotel")
}

func (r HotelRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM hotels WHERE id=?`, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "hotel")
}
