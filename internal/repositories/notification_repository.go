package repositories

import (
	"database/sql"

	intconfig "travelagency/internal/config"
	"travelagency/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r NotificationRepository) Create(n models.Notification) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO notifications (user_id, title, body) VALUES (?,?,?)`, n.UserID, n.Title, n.Body)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r NotificationRepository) ListByUser(userID int64) ([]models.Notification, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, title, COALESCE(body,''), is_read,
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),'')
		FROM notifications WHERE user_id=? ORDER BY id DESC LIMIT 100`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead only touches notifications owned by userID.
func (r NotificationRepository) MarkRead(id, userID int64) error {
	res, err := r.db().Exec(`UPDATE notifications SET is_read=1 WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	return expectAffected(res, "notification")
}

type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContactRepository) Create(m models.ContactMessage) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO contact_messages (name, email, phone, subject, body) VALUES (?,?,?,?,?)`,
		m.Name, m.Email, m.Phone, m.Subject, m.Body)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContactRepository) List() ([]models.ContactMessage, error) {
	rows, err := r.db().Query(`
		SELECT id, name, email, COALESCE(phone,''), COALESCE(subject,''), COALESCE(body,''),
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),'')
		FROM contact_messages ORDER BY id DESC LIMIT 200`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
