package models

import "travelagency/internal/pricing"

const (
	TripKindOmra     = "omra"
	TripKindStandard = "standard"
)

// Trip is an offer of the catalog. Omra trips are priced per room category,
// standard trips from BasePrice.
type Trip struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Destination   string   `json:"destination"`
	Description   string   `json:"description"`
	Kind          string   `json:"kind"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date"`
	BasePrice     float64  `json:"base_price"`
	Price2Room    *float64 `json:"price_2_room"`
	Price3Room    *float64 `json:"price_3_room"`
	Price4Room    *float64 `json:"price_4_room"`
	Promotion     *float64 `json:"promotion"`
	Seats         int      `json:"seats"`
	HotelID       *int64   `json:"hotel_id"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

func (t Trip) IsOmra() bool {
	return t.Kind == TripKindOmra
}

// RoomPrices returns the per-person price table in pricing order.
func (t Trip) RoomPrices() pricing.RoomPrices {
	return pricing.RoomPrices{t.Price2Room, t.Price3Room, t.Price4Room}
}

// PromotionFactor is the multiplier applied to every price of the trip.
func (t Trip) PromotionFactor() float64 {
	if t.Promotion == nil {
		return 1
	}
	return pricing.PromotionFactor(*t.Promotion)
}

// TripFilter narrows List results.
type TripFilter struct {
	Kind        string
	Destination string
}
