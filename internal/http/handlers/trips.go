package handlers

import (
	"net/http"

	"travelagency/internal/domain/models"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

type tripRequest struct {
	Title         string   `json:"title" binding:"required,notblank"`
	Destination   string   `json:"destination"`
	Description   string   `json:"description"`
	Kind          string   `json:"kind" binding:"omitempty,oneof=omra standard"`
	DepartureDate string   `json:"departure_date" binding:"omitempty,datetime=2006-01-02"`
	ReturnDate    string   `json:"return_date" binding:"omitempty,datetime=2006-01-02"`
	BasePrice     Amount   `json:"base_price" binding:"gte=0"`
	Price2Room    *Amount  `json:"price_2_room" binding:"omitempty,gte=0"`
	Price3Room    *Amount  `json:"price_3_room" binding:"omitempty,gte=0"`
	Price4Room    *Amount  `json:"price_4_room" binding:"omitempty,gte=0"`
	Promotion     *float64 `json:"promotion" binding:"omitempty,gte=0,lt=100"`
	Seats         int      `json:"seats" binding:"gte=0"`
	HotelID       *int64   `json:"hotel_id" binding:"omitempty,gt=0"`
}

func (r tripRequest) model() models.Trip {
	return models.Trip{
		Title:         r.Title,
		Destination:   r.Destination,
		Description:   r.Description,
		Kind:          r.Kind,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		BasePrice:     float64(r.BasePrice),
		Price2Room:    r.Price2Room.ptr(),
		Price3Room:    r.Price3Room.ptr(),
		Price4Room:    r.Price4Room.ptr(),
		Promotion:     r.Promotion,
		Seats:         r.Seats,
		HotelID:       r.HotelID,
	}
}

// GET /api/trips?kind=&destination=&page=&page_size=
func (a API) ListTrips(c *gin.Context) {
	filter := models.TripFilter{Kind: c.Query("kind"), Destination: c.Query("destination")}
	trips, page, err := a.tripService(c).List(filter, queryPage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trips, "pagination": page})
}

// GET /api/trips/:id
func (a API) GetTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := a.tripService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/trips/:id/quote
// Called on every change of the booking form; the body is the form state.
func (a API) QuoteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.QuoteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	q, err := a.reservationService(c).Quote(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/admin/trips
func (a API) CreateTrip(c *gin.Context) {
	var req tripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	t, err := a.tripService(c).Create(c.Request.Context(), req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /api/admin/trips/:id
func (a API) UpdateTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req tripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	t, err := a.tripService(c).Update(c.Request.Context(), id, req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/admin/trips/:id
func (a API) DeleteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := a.tripService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip berhasil dihapus"})
}
