package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/pricing"
	"travelagency/internal/queue"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

// Upper bounds of the booking form. The binding tags on QuoteInput carry the
// same values.
const (
	MaxRoomsPerCategory = 50
	MaxPassengers       = 200
)

// QuoteInput is the state of the booking form: rooms per category and
// passengers per age bracket.
type QuoteInput struct {
	Room2    int `json:"room_2" binding:"lte=50"`
	Room3    int `json:"room_3" binding:"lte=50"`
	Room4    int `json:"room_4" binding:"lte=50"`
	Adults   int `json:"adults" binding:"lte=200"`
	Children int `json:"children" binding:"lte=200"`
	Babies   int `json:"babies" binding:"lte=200"`
}

func (in QuoteInput) units() pricing.RoomUnits {
	return pricing.RoomUnits{max(in.Room2, 0), max(in.Room3, 0), max(in.Room4, 0)}
}

func (in QuoteInput) checkBounds() error {
	rooms := []struct {
		field string
		n     int
	}{{"room_2", in.Room2}, {"room_3", in.Room3}, {"room_4", in.Room4}}
	for _, r := range rooms {
		if r.n > MaxRoomsPerCategory {
			return domain.ValidationError{Field: r.field, Msg: fmt.Sprintf("maksimal %d kamar", MaxRoomsPerCategory)}
		}
	}
	if in.Adults > MaxPassengers || in.Children > MaxPassengers || in.Babies > MaxPassengers {
		return domain.ValidationError{Msg: fmt.Sprintf("maksimal %d penumpang per kategori", MaxPassengers)}
	}
	return nil
}

func (in QuoteInput) manifest() pricing.Manifest {
	return pricing.Manifest{Adults: in.Adults, Children: in.Children, Babies: in.Babies}
}

// Quote is a price computation. Capacity and Shortfall are only meaningful
// for omra trips.
type Quote struct {
	pricing.Breakdown
	Kind      string         `json:"kind"`
	Capacity  int            `json:"capacity"`
	Shortfall int            `json:"shortfall"`
	Tiers     []pricing.Tier `json:"tiers,omitempty"`
}

// ComputeQuote prices a trip for the given form state. It never fails:
// unmet demand is priced at 0 and reported through Shortfall.
func ComputeQuote(trip models.Trip, in QuoteInput, m pricing.Manifest) Quote {
	factor := trip.PromotionFactor()
	if !trip.IsOmra() {
		return Quote{Breakdown: pricing.Flat(trip.BasePrice, factor, m), Kind: trip.Kind}
	}
	tiers := pricing.TiersFor(trip.RoomPrices(), in.units())
	return Quote{
		Breakdown: pricing.Allocate(tiers, factor, m),
		Kind:      trip.Kind,
		Capacity:  pricing.Capacity(tiers),
		Shortfall: pricing.Shortfall(tiers, m),
		Tiers:     tiers,
	}
}

type ReservationService struct {
	Repo          repositories.ReservationRepository
	Trips         TripService
	Notifications NotificationService
	Publisher     queue.Publisher
	RequestID     string
}

func (s ReservationService) publisher() queue.Publisher {
	if s.Publisher != nil {
		return s.Publisher
	}
	return queue.LogPublisher{}
}

// Quote is recomputed on every change of the booking form, so counts are
// clamped rather than rejected.
func (s ReservationService) Quote(ctx context.Context, tripID int64, in QuoteInput) (Quote, error) {
	if err := in.checkBounds(); err != nil {
		return Quote{}, err
	}
	trip, err := s.Trips.Get(ctx, tripID)
	if err != nil {
		return Quote{}, err
	}
	return ComputeQuote(trip, in, in.manifest().Normalize()), nil
}

// ReservationInput is the submitted booking form.
type ReservationInput struct {
	QuoteInput
	Notes string `json:"notes"`
}

// Create prices the reservation server-side and stores it as pending.
// Submission is refused when the reserved rooms cannot seat every adult and child.
func (s ReservationService) Create(ctx context.Context, rc domain.RequestContext, tripID int64, in ReservationInput) (models.Reservation, error) {
	if rc.UserID <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "user_id", Msg: "login diperlukan"}
	}
	if in.Adults < 1 {
		return models.Reservation{}, domain.ValidationError{Field: "adults", Msg: "minimal 1 dewasa"}
	}
	if in.Children < 0 || in.Babies < 0 || in.Room2 < 0 || in.Room3 < 0 || in.Room4 < 0 {
		return models.Reservation{}, domain.ValidationError{Msg: "jumlah tidak boleh negatif"}
	}
	if err := in.checkBounds(); err != nil {
		return models.Reservation{}, err
	}

	trip, err := s.Trips.Get(ctx, tripID)
	if err != nil {
		return models.Reservation{}, err
	}

	q := ComputeQuote(trip, in.QuoteInput, in.manifest())
	if trip.IsOmra() && q.Shortfall > 0 {
		utils.LogEvent(s.RequestID, "reservation", "capacity_shortfall",
			fmt.Sprintf("trip_id=%d capacity=%d deficit=%d", trip.ID, q.Capacity, q.Shortfall))
		return models.Reservation{}, domain.CapacityError{Deficit: q.Shortfall}
	}

	res := models.Reservation{
		TripID:        trip.ID,
		TripTitle:     trip.Title,
		UserID:        int64(rc.UserID),
		Adults:        in.Adults,
		Children:      in.Children,
		Babies:        in.Babies,
		TotalAdults:   utils.RoundMoney(q.TotalAdults),
		TotalChildren: utils.RoundMoney(q.TotalChildren),
		TotalBabies:   utils.RoundMoney(q.TotalBabies),
		Status:        models.ReservationPending,
		Notes:         strings.TrimSpace(in.Notes),
	}
	res.PrixCalculer = res.TotalAdults + res.TotalChildren + res.TotalBabies
	if trip.IsOmra() {
		res.Room2, res.Room3, res.Room4 = in.Room2, in.Room3, in.Room4
	}

	id, err := s.Repo.Create(res)
	if err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	res.ID = id
	utils.LogEvent(s.RequestID, "reservation", "create",
		fmt.Sprintf("reservation_id=%d trip_id=%d prix_calculer=%s", id, trip.ID, utils.FormatMoney(res.PrixCalculer)))

	s.announce(ctx, queue.QueueReservationCreated, res)
	s.notify(res.UserID, "Reservasi diterima",
		fmt.Sprintf("Reservasi #%d untuk %s sedang diproses. Total: %s", id, trip.Title, utils.FormatAmount(res.PrixCalculer)))
	return res, nil
}

func (s ReservationService) Get(rc domain.RequestContext, id int64) (models.Reservation, error) {
	if id <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := s.Repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Reservation{}, err
		}
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	if !rc.IsAdmin() && res.UserID != int64(rc.UserID) {
		return models.Reservation{}, domain.ForbiddenError{Resource: "reservation"}
	}
	return res, nil
}

func (s ReservationService) ListMine(rc domain.RequestContext) ([]models.Reservation, error) {
	out, err := s.Repo.ListByUser(int64(rc.UserID))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s ReservationService) ListAll(status string) ([]models.Reservation, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !models.ValidReservationStatus(status) {
		return nil, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
	}
	out, err := s.Repo.ListAll(status)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// allowedTransitions lists the back-office moves; cancelled is final.
var allowedTransitions = map[string][]string{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationCancelled},
}

func canTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s ReservationService) UpdateStatus(ctx context.Context, id int64, status string) (models.Reservation, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidReservationStatus(status) {
		return models.Reservation{}, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
	}
	res, err := s.Get(domain.RequestContext{Role: domain.RoleAdmin}, id)
	if err != nil {
		return models.Reservation{}, err
	}
	if res.Status == status {
		return res, nil
	}
	if !canTransition(res.Status, status) {
		return models.Reservation{}, domain.ConflictError{
			Resource: "reservation",
			Msg:      fmt.Sprintf("tidak bisa mengubah status %s menjadi %s", res.Status, status),
		}
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	res.Status = status
	utils.LogEvent(s.RequestID, "reservation", "update_status", fmt.Sprintf("reservation_id=%d status=%s", id, status))

	s.announce(ctx, queue.QueueReservationStatusChanged, res)
	title := "Reservasi dikonfirmasi"
	if status == models.ReservationCancelled {
		title = "Reservasi dibatalkan"
	}
	s.notify(res.UserID, title, fmt.Sprintf("Status reservasi #%d untuk %s: %s", res.ID, res.TripTitle, status))
	return res, nil
}

// announce publishes once; a broker failure does not fail the request.
func (s ReservationService) announce(ctx context.Context, queueName string, res models.Reservation) {
	event := queue.ReservationEvent{
		ReservationID: res.ID,
		TripID:        res.TripID,
		TripTitle:     res.TripTitle,
		UserID:        res.UserID,
		Adults:        res.Adults,
		Children:      res.Children,
		Babies:        res.Babies,
		Room2:         res.Room2,
		Room3:         res.Room3,
		Room4:         res.Room4,
		PrixCalculer:  res.PrixCalculer,
		Status:        res.Status,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher().Publish(ctx, queueName, event); err != nil {
		utils.LogError(s.RequestID, "reservation", "publish", err)
	}
}

func (s ReservationService) notify(userID int64, title, body string) {
	if err := s.Notifications.Notify(userID, title, body); err != nil {
		utils.LogError(s.RequestID, "reservation", "notify", err)
	}
}
