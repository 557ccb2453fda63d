package services

import (
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
)

type DashboardService struct {
	Trips        repositories.TripRepository
	Users        repositories.UserRepository
	Reservations repositories.ReservationRepository
}

// Stats aggregates the back-office counters and the monthly revenue of the
// last year.
func (s DashboardService) Stats() (models.DashboardStats, error) {
	var (
		out models.DashboardStats
		err error
	)
	if out.Trips, err = s.Trips.Count(); err != nil {
		return out, domain.InternalError{Err: err}
	}
	if out.Users, err = s.Users.Count(); err != nil {
		return out, domain.InternalError{Err: err}
	}
	if out.Reservations, err = s.Reservations.CountByStatus(); err != nil {
		return out, domain.InternalError{Err: err}
	}
	for _, st := range []string{models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled} {
		if _, ok := out.Reservations[st]; !ok {
			out.Reservations[st] = 0
		}
	}
	if out.Revenue, err = s.Reservations.RevenueByMonth(12); err != nil {
		return out, domain.InternalError{Err: err}
	}
	return out, nil
}
