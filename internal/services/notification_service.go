package services

import (
	"fmt"
	"strings"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

type NotificationService struct {
	Repo      repositories.NotificationRepository
	Contacts  repositories.ContactRepository
	RequestID string
}

func (s NotificationService) Notify(userID int64, title, body string) error {
	if userID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "id tidak valid"}
	}
	_, err := s.Repo.Create(models.Notification{UserID: userID, Title: title, Body: body})
	return err
}

func (s NotificationService) ListMine(rc domain.RequestContext) ([]models.Notification, error) {
	out, err := s.Repo.ListByUser(int64(rc.UserID))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s NotificationService) MarkRead(rc domain.RequestContext, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := s.Repo.MarkRead(id, int64(rc.UserID)); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

// SubmitContact stores a message from the public contact form.
func (s NotificationService) SubmitContact(m models.ContactMessage) (models.ContactMessage, error) {
	m.Name = utils.NormalizeSpace(m.Name)
	m.Email = utils.NormalizeEmail(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Subject = utils.NormalizeSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)

	if m.Name == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if !utils.IsEmail(m.Email) {
		return models.ContactMessage{}, domain.ValidationError{Field: "email", Msg: "format email tidak valid"}
	}
	if m.Body == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "body", Msg: "wajib diisi"}
	}

	id, err := s.Contacts.Create(m)
	if err != nil {
		return models.ContactMessage{}, domain.InternalError{Err: err}
	}
	m.ID = id
	utils.LogEvent(s.RequestID, "contact", "submit", fmt.Sprintf("contact_id=%d", id))
	return m, nil
}

func (s NotificationService) ListContact() ([]models.ContactMessage, error) {
	out, err := s.Contacts.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
