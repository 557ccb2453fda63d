package handlers

import (
	"net/http"

	"travelagency/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type hotelRequest struct {
	Name             string `json:"name" binding:"required,notblank"`
	City             string `json:"city" binding:"required,notblank"`
	Stars            int    `json:"stars" binding:"min=1,max=5"`
	DistanceToHaramM *int   `json:"distance_to_haram_m" binding:"omitempty,gte=0"`
	Description      string `json:"description"`
}

func (r hotelRequest) model(id int64) models.Hotel {
	return models.Hotel{
		ID:               id,
		Name:             r.Name,
		City:             r.City,
		Stars:            r.Stars,
		DistanceToHaramM: r.DistanceToHaramM,
		Description:      r.Description,
	}
}

// GET /api/hotels?city=
func (a API) ListHotels(c *gin.Context) {
	out, err := a.hotelService(c).List(c.Query("city"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/hotels/:id
func (a API) GetHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	h, err := a.hotelService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

// POST /api/admin/hotels
func (a API) CreateHotel(c *gin.Context) {
	var req hotelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	h, err := a.hotelService(c).Save(req.model(0))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h)
}

// PUT /api/admin/hotels/:id
func (a API) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req hotelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	h, err := a.hotelService(c).Save(req.model(id))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

// DELETE /api/admin/hotels/:id
func (a API) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := a.hotelService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel berhasil dihapus"})
}
