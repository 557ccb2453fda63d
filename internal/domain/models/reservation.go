package models

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation is a submitted booking. PrixCalculer is the total computed by
// the pricing allocator at submission time.
type Reservation struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"trip_id"`
	TripTitle     string  `json:"trip_title,omitempty"`
	UserID        int64   `json:"user_id"`
	Room2         int     `json:"room_2"`
	Room3         int     `json:"room_3"`
	Room4         int     `json:"room_4"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Babies        int     `json:"babies"`
	TotalAdults   float64 `json:"total_adults"`
	TotalChildren float64 `json:"total_children"`
	TotalBabies   float64 `json:"total_babies"`
	PrixCalculer  float64 `json:"prix_calculer"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// ValidReservationStatus reports whether status is a known state.
func ValidReservationStatus(status string) bool {
	switch status {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}
