package services

import (
	"fmt"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

type HotelService struct {
	Repo      repositories.HotelRepository
	RequestID string
}

func (s HotelService) List(city string) ([]models.Hotel, error) {
	out, err := s.Repo.List(utils.NormalizeSpace(city))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s HotelService) Get(id int64) (models.Hotel, error) {
	if id <= 0 {
		return models.Hotel{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	h, err := s.Repo.GetByID(id)
	if err != nil && !domain.IsNotFound(err) {
		return models.Hotel{}, domain.InternalError{Err: err}
	}
	return h, err
}

func (s HotelService) Save(h models.Hotel) (models.Hotel, error) {
	h.Name = utils.NormalizeSpace(h.Name)
	h.City = utils.NormalizeSpace(h.City)
	if h.Name == "" {
		return models.Hotel{}, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if h.City == "" {
		return models.Hotel{}, domain.ValidationError{Field: "city", Msg: "wajib diisi"}
	}
	if h.Stars < 1 || h.Stars > 5 {
		return models.Hotel{}, domain.ValidationError{Field: "stars", Msg: "harus 1 sampai 5"}
	}
	if h.DistanceToHaramM != nil && *h.DistanceToHaramM < 0 {
		return models.Hotel{}, domain.ValidationError{Field: "distance_to_haram_m", Msg: "tidak boleh negatif"}
	}

	if h.ID == 0 {
		id, err := s.Repo.Create(h)
		if err != nil {
			return models.Hotel{}, domain.InternalError{Err: err}
		}
		h.ID = id
		utils.LogEvent(s.RequestID, "hotel", "create", fmt.Sprintf("hotel_id=%d", id))
		return h, nil
	}
	if err := s.Repo.Update(h); err != nil {
		if domain.IsNotFound(err) {
			return models.Hotel{}, err
		}
		return models.Hotel{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "hotel", "update", fmt.Sprintf("hotel_id=%d", h.ID))
	return h, nil
}

func (s HotelService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := s.Repo.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	return nil
}
