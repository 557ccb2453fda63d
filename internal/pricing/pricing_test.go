package pricing

import (
	"math"
	"testing"
)

func price(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertBreakdown(t *testing.T, got Breakdown, want Breakdown) {
	t.Helper()
	if !almostEqual(got.TotalAdults, want.TotalAdults) ||
		!almostEqual(got.TotalChildren, want.TotalChildren) ||
		!almostEqual(got.TotalBabies, want.TotalBabies) ||
		!almostEqual(got.TotalPrice, want.TotalPrice) {
		t.Fatalf("breakdown mismatch: got %+v want %+v", got, want)
	}
}

func TestAllocateAdultThenChildOnSingleRoom(t *testing.T) {
	tiers := []Tier{{Capacity: 2, PricePerPerson: price(10000), Units: 1}}

	got := Allocate(tiers, PromotionFactor(0), Manifest{Adults: 1, Children: 1})

	assertBreakdown(t, got, Breakdown{TotalPrice: 18000, TotalAdults: 10000, TotalChildren: 8000})
}

func TestAllocateUnassignedAdultsArePricedAtZero(t *testing.T) {
	tiers := []Tier{{Capacity: 2, PricePerPerson: price(10000), Units: 1}}
	m := Manifest{Adults: 3}

	got := Allocate(tiers, 1, m)

	assertBreakdown(t, got, Breakdown{TotalPrice: 20000, TotalAdults: 20000})
	if s := Shortfall(tiers, m); s != 1 {
		t.Fatalf("shortfall = %d, want 1", s)
	}
}

func TestAllocateBabiesUseCheapestReservedTier(t *testing.T) {
	tiers := []Tier{
		{Capacity: 2, PricePerPerson: price(10000), Units: 1},
		{Capacity: 4, PricePerPerson: price(6000), Units: 1},
	}

	got := Allocate(tiers, 1, Manifest{Adults: 2, Babies: 1})

	assertBreakdown(t, got, Breakdown{TotalPrice: 21800, TotalAdults: 20000, TotalBabies: 1800})
}

func TestAllocateBabiesIgnoreUnreservedCheaperTier(t *testing.T) {
	tiers := []Tier{
		{Capacity: 2, PricePerPerson: price(10000), Units: 1},
		{Capacity: 4, PricePerPerson: price(1000), Units: 0},
	}

	got := Allocate(tiers, 1, Manifest{Adults: 1, Babies: 2})

	if !almostEqual(got.TotalBabies, 2*10000*BabyRate) {
		t.Fatalf("babies = %v, want %v", got.TotalBabies, 2*10000*BabyRate)
	}
}

func TestAllocateBabiesWithoutReservedRooms(t *testing.T) {
	tiers := TiersFor(RoomPrices{price(10000), price(8000), nil}, RoomUnits{})

	got := Allocate(tiers, 1, Manifest{Adults: 1, Babies: 3})

	assertBreakdown(t, got, Breakdown{})
}

func TestAllocateChildrenTakeSlotsLeftByAdults(t *testing.T) {
	tiers := TiersFor(
		RoomPrices{price(12000), price(9000), price(7000)},
		RoomUnits{1, 1, 0},
	)

	// pool: 12000 x2, 9000 x3
	got := Allocate(tiers, 1, Manifest{Adults: 3, Children: 3})

	wantAdults := 12000 + 12000 + 9000.0
	wantChildren := (9000 + 9000) * ChildRate
	assertBreakdown(t, got, Breakdown{
		TotalPrice:    wantAdults + wantChildren,
		TotalAdults:   wantAdults,
		TotalChildren: wantChildren,
	})
	if s := Shortfall(tiers, Manifest{Adults: 3, Children: 3}); s != 1 {
		t.Fatalf("shortfall = %d, want 1", s)
	}
}

func TestAllocateAppliesPromotionToEverySlot(t *testing.T) {
	tiers := TiersFor(RoomPrices{price(10000), nil, price(6000)}, RoomUnits{1, 0, 1})
	factor := PromotionFactor(10)

	got := Allocate(tiers, factor, Manifest{Adults: 2, Children: 1, Babies: 1})

	assertBreakdown(t, got, Breakdown{
		TotalPrice:    18000 + 5400*ChildRate + 5400*BabyRate,
		TotalAdults:   18000,
		TotalChildren: 5400 * ChildRate,
		TotalBabies:   5400 * BabyRate,
	})
}

func TestAllocateIgnoresUnofferedTier(t *testing.T) {
	tiers := TiersFor(RoomPrices{nil, price(5000), nil}, RoomUnits{3, 1, 0})

	if c := Capacity(tiers); c != 3 {
		t.Fatalf("capacity = %d, want 3", c)
	}
	got := Allocate(tiers, 1, Manifest{Adults: 4})
	if !almostEqual(got.TotalAdults, 15000) {
		t.Fatalf("adults = %v, want 15000", got.TotalAdults)
	}
}

func TestFlatPricing(t *testing.T) {
	got := Flat(5000, PromotionFactor(10), Manifest{Adults: 2, Children: 1, Babies: 1})

	assertBreakdown(t, got, Breakdown{
		TotalPrice:    13950,
		TotalAdults:   9000,
		TotalChildren: 3600,
		TotalBabies:   1350,
	})
}

func TestTotalIsSumOfBrackets(t *testing.T) {
	prices := RoomPrices{price(11000), price(8500.5), price(6100.25)}
	for u2 := 0; u2 < 3; u2++ {
		for u4 := 0; u4 < 3; u4++ {
			for adults := 1; adults < 6; adults++ {
				for children := 0; children < 4; children++ {
					tiers := TiersFor(prices, RoomUnits{u2, 1, u4})
					b := Allocate(tiers, PromotionFactor(15), Manifest{Adults: adults, Children: children, Babies: children})
					if b.TotalPrice != b.TotalAdults+b.TotalChildren+b.TotalBabies {
						t.Fatalf("sum law broken for %+v: %+v", tiers, b)
					}
				}
			}
		}
	}
}

func TestAllocateIsMonotonicInUnits(t *testing.T) {
	prices := RoomPrices{price(10000), price(8000), price(6000)}
	m := Manifest{Adults: 4, Children: 4}

	prev := Allocate(TiersFor(prices, RoomUnits{0, 0, 0}), 1, m)
	for units := 1; units <= 4; units++ {
		cur := Allocate(TiersFor(prices, RoomUnits{0, 0, units}), 1, m)
		if cur.TotalAdults < prev.TotalAdults || cur.TotalChildren < prev.TotalChildren {
			t.Fatalf("units=%d decreased totals: prev %+v cur %+v", units, prev, cur)
		}
		prev = cur
	}

	// demand (8) is met by 2 quad rooms; more rooms change nothing
	met := Allocate(TiersFor(prices, RoomUnits{0, 0, 2}), 1, m)
	more := Allocate(TiersFor(prices, RoomUnits{0, 0, 5}), 1, m)
	if met != more {
		t.Fatalf("extra capacity changed price: %+v vs %+v", met, more)
	}
}

func TestAllocateIsDeterministic(t *testing.T) {
	tiers := TiersFor(RoomPrices{price(9999.99), price(7777.77), price(5555.55)}, RoomUnits{2, 1, 3})
	m := Manifest{Adults: 5, Children: 6, Babies: 2}

	first := Allocate(tiers, PromotionFactor(12.5), m)
	for i := 0; i < 10; i++ {
		if again := Allocate(tiers, PromotionFactor(12.5), m); again != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestDiscountLawOnSingleTier(t *testing.T) {
	slot := 7200.0
	tiers := []Tier{{Capacity: 4, PricePerPerson: price(slot), Units: 10}}
	m := Manifest{Adults: 3, Children: 5, Babies: 4}

	got := Allocate(tiers, 1, m)

	if !almostEqual(got.TotalChildren, ChildRate*5*slot) {
		t.Fatalf("children = %v, want %v", got.TotalChildren, ChildRate*5*slot)
	}
	if !almostEqual(got.TotalBabies, BabyRate*4*slot) {
		t.Fatalf("babies = %v, want %v", got.TotalBabies, BabyRate*4*slot)
	}
}

func TestByPriceOrdersReservedTiersDescending(t *testing.T) {
	tiers := TiersFor(RoomPrices{price(6000), price(9000), price(7000)}, RoomUnits{1, 1, 1})
	tiers = append(tiers, Tier{Capacity: 5, PricePerPerson: price(99999), Units: 0})

	got := ByPrice(tiers)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (unreserved tier must be skipped)", len(got))
	}
	want := []float64{9000, 7000, 6000}
	for i, w := range want {
		if *got[i].PricePerPerson != w {
			t.Fatalf("position %d = %v, want %v", i, *got[i].PricePerPerson, w)
		}
	}
}

func TestAllocateHugeRoomCountsDoNotOverflow(t *testing.T) {
	m := Manifest{Adults: 1, Children: 1, Babies: 1}
	for _, units := range []int{25_000_000, math.MaxInt / 4, math.MaxInt / 2, math.MaxInt} {
		tiers := TiersFor(RoomPrices{nil, nil, price(6000)}, RoomUnits{0, 0, units})

		if c := Capacity(tiers); c <= 0 {
			t.Fatalf("units=%d: capacity = %d, want positive", units, c)
		}
		if s := Shortfall(tiers, m); s != 0 {
			t.Fatalf("units=%d: shortfall = %d, want 0", units, s)
		}
		assertBreakdown(t, Allocate(tiers, 1, m), Breakdown{
			TotalPrice:    6000 + 6000*ChildRate + 6000*BabyRate,
			TotalAdults:   6000,
			TotalChildren: 6000 * ChildRate,
			TotalBabies:   6000 * BabyRate,
		})
	}
}

func TestCapacitySaturatesAcrossTiers(t *testing.T) {
	tiers := TiersFor(RoomPrices{price(1), price(1), price(1)}, RoomUnits{math.MaxInt, math.MaxInt, 1})

	if c := Capacity(tiers); c != math.MaxInt {
		t.Fatalf("capacity = %d, want MaxInt", c)
	}
	if s := Shortfall(tiers, Manifest{Adults: math.MaxInt, Children: math.MaxInt}); s != 0 {
		t.Fatalf("shortfall = %d, want 0", s)
	}
}

func TestPromotionFactor(t *testing.T) {
	cases := []struct {
		percent float64
		want    float64
	}{
		{0, 1},
		{10, 0.9},
		{99.5, 0.005},
		{100, 1},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := PromotionFactor(tc.percent); !almostEqual(got, tc.want) {
			t.Fatalf("PromotionFactor(%v) = %v, want %v", tc.percent, got, tc.want)
		}
	}
}

func TestManifestNormalize(t *testing.T) {
	got := Manifest{Adults: 0, Children: -2, Babies: -1}.Normalize()
	if got != (Manifest{Adults: 1}) {
		t.Fatalf("Normalize = %+v", got)
	}
}

func TestShortfallExcludesBabies(t *testing.T) {
	tiers := []Tier{{Capacity: 2, PricePerPerson: price(1), Units: 1}}
	if s := Shortfall(tiers, Manifest{Adults: 2, Babies: 5}); s != 0 {
		t.Fatalf("shortfall = %d, want 0", s)
	}
}
