// Package queue defines reservation events and publishes them to RabbitMQ.
package queue

const (
	QueueReservationCreated       = "reservation.created"
	QueueReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent carries enough of the reservation for downstream
// consumers (mailers, accounting) to act without querying MySQL.
type ReservationEvent struct {
	ReservationID int64   `json:"reservation_id"`
	TripID        int64   `json:"trip_id"`
	TripTitle     string  `json:"trip_title"`
	UserID        int64   `json:"user_id"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Babies        int     `json:"babies"`
	Room2         int     `json:"room_2"`
	Room3         int     `json:"room_3"`
	Room4         int     `json:"room_4"`
	PrixCalculer  float64 `json:"prix_calculer"`
	Status        string  `json:"status"`
	OccurredAt    string  `json:"occurred_at"`
}
