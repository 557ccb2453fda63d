// Package pricing computes reservation prices for trips.
//
// Omra trips are priced per room category: every reserved room contributes one
// slot per occupant, adults take the most expensive slots first, children take
// what remains at a discount and babies are charged a share of the cheapest
// reserved category. Standard trips use a single base price with the same
// child and baby discounts.
package pricing

import (
	"math"
	"sort"
)

const (
	ChildRate = 0.8
	BabyRate  = 0.3
)

// Capacities lists the room categories in display order.
var Capacities = [3]int{2, 3, 4}

// Tier is one room category of a trip. A nil PricePerPerson means the trip
// does not offer the category; such a tier never contributes slots.
type Tier struct {
	Capacity       int      `json:"capacity"`
	PricePerPerson *float64 `json:"price_per_person"`
	Units          int      `json:"units"`
}

func (t Tier) reserved() bool {
	return t.PricePerPerson != nil && t.Units > 0 && t.Capacity > 0
}

// RoomPrices holds the per-person price of each category, indexed like Capacities.
type RoomPrices [3]*float64

// RoomUnits holds the number of rooms reserved per category, indexed like Capacities.
type RoomUnits [3]int

// TiersFor pairs a trip's price table with the purchaser's room selection.
func TiersFor(prices RoomPrices, units RoomUnits) []Tier {
	out := make([]Tier, 0, len(Capacities))
	for i, c := range Capacities {
		out = append(out, Tier{Capacity: c, PricePerPerson: prices[i], Units: units[i]})
	}
	return out
}

// Manifest counts the passengers of one reservation by age bracket.
type Manifest struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Babies   int `json:"babies"`
}

// Normalize clamps counts the way the booking form does: at least one adult,
// never a negative child or baby count.
func (m Manifest) Normalize() Manifest {
	if m.Adults < 1 {
		m.Adults = 1
	}
	if m.Children < 0 {
		m.Children = 0
	}
	if m.Babies < 0 {
		m.Babies = 0
	}
	return m
}

// Breakdown is the result of a price computation.
type Breakdown struct {
	TotalPrice    float64 `json:"total_price"`
	TotalAdults   float64 `json:"total_adults"`
	TotalChildren float64 `json:"total_children"`
	TotalBabies   float64 `json:"total_babies"`
}

func newBreakdown(adults, children, babies float64) Breakdown {
	return Breakdown{
		TotalPrice:    adults + children + babies,
		TotalAdults:   adults,
		TotalChildren: children,
		TotalBabies:   babies,
	}
}

// PromotionFactor converts a promotion percentage into a price multiplier.
// Percentages outside [0,100) are ignored.
func PromotionFactor(percent float64) float64 {
	if percent < 0 || percent >= 100 {
		return 1
	}
	return 1 - percent/100
}

// ValidPromotion reports whether percent can be stored on a trip.
func ValidPromotion(percent float64) bool {
	return percent >= 0 && percent < 100
}

// slots is the number of occupant positions a tier offers, saturating at
// math.MaxInt.
func (t Tier) slots() int {
	if !t.reserved() {
		return 0
	}
	if t.Units > math.MaxInt/t.Capacity {
		return math.MaxInt
	}
	return t.Units * t.Capacity
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// ByPrice returns the reserved tiers, most expensive per person first.
// Ties keep the category order.
func ByPrice(tiers []Tier) []Tier {
	out := make([]Tier, 0, len(tiers))
	for _, t := range tiers {
		if t.reserved() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].PricePerPerson > *out[j].PricePerPerson
	})
	return out
}

// Capacity is the number of occupant positions across the reserved rooms.
func Capacity(tiers []Tier) int {
	n := 0
	for _, t := range tiers {
		n = addSat(n, t.slots())
	}
	return n
}

// Shortfall is the number of adults and children left without a slot.
// Babies share a bed and are never counted.
func Shortfall(tiers []Tier, m Manifest) int {
	demand := addSat(max(m.Adults, 0), max(m.Children, 0))
	if d := demand - Capacity(tiers); d > 0 {
		return d
	}
	return 0
}

// Allocate prices an Omra reservation. Slots are handed out from the most
// expensive tier down, adults first. Adults and children that find no slot
// are priced at 0; callers block submission through Shortfall.
func Allocate(tiers []Tier, factor float64, m Manifest) Breakdown {
	adultsLeft, childrenLeft := max(m.Adults, 0), max(m.Children, 0)

	var adults, children float64
	for _, t := range ByPrice(tiers) {
		price := *t.PricePerPerson * factor
		free := t.slots()

		n := min(adultsLeft, free)
		adults += float64(n) * price
		adultsLeft -= n
		free -= n

		n = min(childrenLeft, free)
		children += float64(n) * price * ChildRate
		childrenLeft -= n
	}

	var babies float64
	if m.Babies > 0 {
		babies = float64(m.Babies) * cheapestReserved(tiers, factor) * BabyRate
	}

	return newBreakdown(adults, children, babies)
}

// cheapestReserved is taken over the categories the purchaser booked, not
// over the slots actually handed out.
func cheapestReserved(tiers []Tier, factor float64) float64 {
	found := false
	var low float64
	for _, t := range tiers {
		if !t.reserved() {
			continue
		}
		p := *t.PricePerPerson * factor
		if !found || p < low {
			low = p
			found = true
		}
	}
	return low
}

// Flat prices a standard trip from its base price.
func Flat(basePrice, factor float64, m Manifest) Breakdown {
	adult := basePrice * factor
	child := adult * ChildRate
	baby := adult * BabyRate
	return newBreakdown(
		float64(max(m.Adults, 0))*adult,
		float64(max(m.Children, 0))*child,
		float64(max(m.Babies, 0))*baby,
	)
}
