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

const reservationColumns = `
	r.id, r.trip_id, COALESCE(t.title,''), r.user_id,
	r.room_2, r.room_3, r.room_4, r.adults, r.children, r.babies,
	r.total_adults, r.total_children, r.total_babies, r.prix_calculer,
	r.status, COALESCE(r.notes,''),
	COALESCE(DATE_FORMAT(r.created_at, '%Y-%m-%d %H:%i:%s'),''),
	COALESCE(DATE_FORMAT(r.updated_at, '%Y-%m-%d %H:%i:%s'),'')`

const reservationFrom = ` FROM reservations r LEFT JOIN trips t ON t.id = r.trip_id `

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanReservation(s rowScanner) (models.Reservation, error) {
	var res models.Reservation
	err := s.Scan(
		&res.ID, &res.TripID, &res.TripTitle, &res.UserID,
		&res.Room2, &res.Room3, &res.Room4, &res.Adults, &res.Children, &res.Babies,
		&res.TotalAdults, &res.TotalChildren, &res.TotalBabies, &res.PrixCalculer,
		&res.Status, &res.Notes,
		&res.CreatedAt, &res.UpdatedAt,
	)
	return res, err
}

func (r ReservationRepository) Create(res models.Reservation) (int64, error) {
	out, err := r.db().Exec(`
		INSERT INTO reservations (trip_id, user_id, room_2, room_3, room_4, adults, children, babies,
			total_adults, total_children, total_babies, prix_calculer, status, notes)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		res.TripID, res.UserID, res.Room2, res.Room3, res.Room4, res.Adults, res.Children, res.Babies,
		res.TotalAdults, res.TotalChildren, res.TotalBabies, res.PrixCalculer, res.Status,
		intdb.NullIfEmpty(res.Notes))
	if err != nil {
		return 0, err
	}
	return out.LastInsertId()
}

func (r ReservationRepository) GetByID(id int64) (models.Reservation, error) {
	res, err := scanReservation(r.db().QueryRow(`SELECT `+reservationColumns+reservationFrom+`WHERE r.id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation", Err: err}
	}
	return res, err
}

func (r ReservationRepository) ListByUser(userID int64) ([]models.Reservation, error) {
	return r.list(`WHERE r.user_id=? ORDER BY r.id DESC`, userID)
}

// ListAll is the back-office listing; an empty status returns every reservation.
func (r ReservationRepository) ListAll(status string) ([]models.Reservation, error) {
	if s := strings.TrimSpace(status); s != "" {
		return r.list(`WHERE r.status=? ORDER BY r.id DESC`, s)
	}
	return r.list(`ORDER BY r.id DESC`)
}

func (r ReservationRepository) list(tail string, args ...any) ([]models.Reservation, error) {
	rows, err := r.db().Query(`SELECT `+reservationColumns+reservationFrom+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r ReservationRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE reservations SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "reservation")
}

// CountByStatus feeds the dashboard.
func (r ReservationRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db().Query(`SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return out, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

// RevenueByMonth sums prix_calculer of confirmed reservations per creation month.
func (r ReservationRepository) RevenueByMonth(months int) ([]models.MonthRevenue, error) {
	if months <= 0 {
		months = 12
	}
	rows, err := r.db().Query(`
		SELECT DATE_FORMAT(created_at, '%Y-%m') AS month, COALESCE(SUM(prix_calculer),0)
		FROM reservations
		WHERE status=? AND created_at >= DATE_SUB(CURDATE(), INTERVAL ? MONTH)
		GROUP BY month
		ORDER BY month ASC`, models.ReservationConfirmed, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MonthRevenue{}
	for rows.Next() {
		var m models.MonthRevenue
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
