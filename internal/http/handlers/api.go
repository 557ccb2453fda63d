package handlers

import (
	"database/sql"
	"time"

	"travelagency/internal/cache"
	"travelagency/internal/http/middleware"
	"travelagency/internal/queue"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds the dependencies shared by the handlers. Services are built per
// request so that they carry the request id into their logs.
type API struct {
	DB        *sql.DB
	Cache     *cache.TripCache
	Publisher queue.Publisher
	JWTSecret []byte
	JWTTTL    time.Duration
}

func (a API) tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Repo:      repositories.TripRepository{DB: a.DB},
		Cache:     a.Cache,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) notificationService(c *gin.Context) services.NotificationService {
	return services.NotificationService{
		Repo:      repositories.NotificationRepository{DB: a.DB},
		Contacts:  repositories.ContactRepository{DB: a.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		Repo:          repositories.ReservationRepository{DB: a.DB},
		Trips:         a.tripService(c),
		Notifications: a.notificationService(c),
		Publisher:     a.Publisher,
		RequestID:     middleware.GetRequestID(c),
	}
}

func (a API) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{DB: a.DB},
		Secret:    a.JWTSecret,
		TTL:       a.JWTTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) hotelService(c *gin.Context) services.HotelService {
	return services.HotelService{
		Repo:      repositories.HotelRepository{DB: a.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) dashboardService() services.DashboardService {
	return services.DashboardService{
		Trips:        repositories.TripRepository{DB: a.DB},
		Users:        repositories.UserRepository{DB: a.DB},
		Reservations: repositories.ReservationRepository{DB: a.DB},
	}
}
