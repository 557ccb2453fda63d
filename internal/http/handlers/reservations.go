package handlers

import (
	"net/http"

	"travelagency/internal/http/middleware"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

type reservationRequest struct {
	TripID int64 `json:"trip_id" binding:"required,gt=0"`
	services.ReservationInput
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// POST /api/reservations
func (a API) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.reservationService(c).Create(c.Request.Context(), middleware.RequestContextFrom(c), req.TripID, req.ReservationInput)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/reservations/mine
func (a API) MyReservations(c *gin.Context) {
	out, err := a.reservationService(c).ListMine(middleware.RequestContextFrom(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/reservations/:id
func (a API) GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := a.reservationService(c).Get(middleware.RequestContextFrom(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/reservations/:id/invoice
func (a API) ReservationInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := a.reservationService(c).Get(middleware.RequestContextFrom(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip, err := a.tripService(c).Get(c.Request.Context(), res.TripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.GenerateInvoice(res, trip)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat invoice", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/admin/reservations?status=
func (a API) AdminReservations(c *gin.Context) {
	out, err := a.reservationService(c).ListAll(c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// PUT /api/admin/reservations/:id/status
func (a API) UpdateReservationStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.reservationService(c).UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
