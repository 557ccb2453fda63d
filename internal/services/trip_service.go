package services

import (
	"context"
	"fmt"
	"strings"

	"travelagency/internal/cache"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/pricing"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

type TripService struct {
	Repo      repositories.TripRepository
	Cache     *cache.TripCache
	RequestID string
}

func (s TripService) List(filter models.TripFilter, page domain.Pagination) ([]models.Trip, domain.Pagination, error) {
	page = page.Normalize()
	if k := strings.TrimSpace(filter.Kind); k != "" && k != models.TripKindOmra && k != models.TripKindStandard {
		return nil, page, domain.ValidationError{Field: "kind", Msg: "harus omra atau standard"}
	}
	trips, total, err := s.Repo.List(filter, page)
	if err != nil {
		return nil, page, domain.InternalError{Err: err}
	}
	page.Total = total
	return trips, page, nil
}

// Get reads through the cache; a cache failure falls back to MySQL.
func (s TripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if t, ok, err := s.Cache.Get(ctx, id); err != nil {
		utils.LogError(s.RequestID, "trip", "cache_get", err)
	} else if ok {
		return t, nil
	}

	t, err := s.Repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Trip{}, err
		}
		return models.Trip{}, domain.InternalError{Err: err}
	}
	if err := s.Cache.Set(ctx, t); err != nil {
		utils.LogError(s.RequestID, "trip", "cache_set", err)
	}
	return t, nil
}

func (s TripService) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	t = normalizeTrip(t)
	if err := validateTrip(t); err != nil {
		return models.Trip{}, err
	}
	id, err := s.Repo.Create(t)
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d kind=%s", id, t.Kind))
	return s.Get(ctx, id)
}

func (s TripService) Update(ctx context.Context, id int64, t models.Trip) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	t.ID = id
	t = normalizeTrip(t)
	if err := validateTrip(t); err != nil {
		return models.Trip{}, err
	}
	if err := s.Repo.Update(t); err != nil {
		if domain.IsNotFound(err) {
			return models.Trip{}, err
		}
		return models.Trip{}, domain.InternalError{Err: err}
	}
	if err := s.Cache.Invalidate(ctx, id); err != nil {
		utils.LogError(s.RequestID, "trip", "cache_invalidate", err)
	}
	utils.LogEvent(s.RequestID, "trip", "update", fmt.Sprintf("trip_id=%d", id))
	return s.Get(ctx, id)
}

func (s TripService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := s.Repo.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	if err := s.Cache.Invalidate(ctx, id); err != nil {
		utils.LogError(s.RequestID, "trip", "cache_invalidate", err)
	}
	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

func normalizeTrip(t models.Trip) models.Trip {
	t.Title = utils.NormalizeSpace(t.Title)
	t.Destination = utils.NormalizeSpace(t.Destination)
	t.Description = strings.TrimSpace(t.Description)
	t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))
	if t.Kind == "" {
		t.Kind = models.TripKindStandard
	}
	if t.Promotion != nil && *t.Promotion == 0 {
		t.Promotion = nil
	}
	return t
}

func validateTrip(t models.Trip) error {
	if t.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "wajib diisi"}
	}
	if t.Seats < 0 {
		return domain.ValidationError{Field: "seats", Msg: "tidak boleh negatif"}
	}
	if t.Promotion != nil && !pricing.ValidPromotion(*t.Promotion) {
		return domain.ValidationError{Field: "promotion", Msg: "harus di antara 0 dan 100"}
	}
	if t.BasePrice < 0 {
		return domain.ValidationError{Field: "base_price", Msg: "tidak boleh negatif"}
	}
	prices := t.RoomPrices()
	for i, p := range prices {
		if p != nil && *p < 0 {
			return domain.ValidationError{Field: fmt.Sprintf("price_%d_room", pricing.Capacities[i]), Msg: "tidak boleh negatif"}
		}
	}

	switch t.Kind {
	case models.TripKindStandard:
		if t.BasePrice <= 0 {
			return domain.ValidationError{Field: "base_price", Msg: "wajib diisi untuk perjalanan standard"}
		}
	case models.TripKindOmra:
		offered := false
		for _, p := range prices {
			if p != nil {
				offered = true
			}
		}
		if !offered {
			return domain.ValidationError{Field: "price_2_room", Msg: "perjalanan omra membutuhkan minimal satu harga kamar"}
		}
	default:
		return domain.ValidationError{Field: "kind", Msg: "harus omra atau standard"}
	}

	if t.DepartureDate != "" && t.ReturnDate != "" && t.ReturnDate < t.DepartureDate {
		return domain.ValidationError{Field: "return_date", Msg: "tidak boleh sebelum departure_date"}
	}
	return nil
}
