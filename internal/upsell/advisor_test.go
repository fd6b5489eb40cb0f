package upsell

import (
	"testing"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTvs(primary, secondary bool) selection.Selection {
	sel := selection.New(catalog.Default())
	if !primary {
		return sel.SetTv(catalog.TvNone)
	}
	if secondary {
		return sel.SetSecondaryTv(catalog.TvLite)
	}
	return sel
}

func TestAdviseUpsellPossible(t *testing.T) {
	q := pricing.Quotation{FinalPrice: 55000}
	advice := Advise(q, withTvs(true, false), 48000)

	require.Equal(t, enums.AdviceStatusUpsellPossible, advice.Status)
	require.NotNil(t, advice.Allocation)
	assert.Equal(t, Allocation{Internet: 7700, Tv1: 0, Tv2: 0}, *advice.Allocation)
	assert.Equal(t, 7000, advice.Delta)
	assert.Equal(t, 2, advice.SlotCount)
	assert.Equal(t, 15400, advice.TotalCap)
	assert.Equal(t, "안내요금 48,000원 대비 7,000원 높음", advice.DeltaText)
}

func TestAdviseClassification(t *testing.T) {
	cases := []struct {
		name      string
		final     int
		quoted    int
		primary   bool
		secondary bool
		status    enums.AdviceStatus
		alloc     *Allocation
	}{
		{name: "below quote", final: 40000, quoted: 45000, primary: true, status: enums.AdviceStatusOK},
		{name: "equal quote", final: 45000, quoted: 45000, primary: true, status: enums.AdviceStatusOK},
		{name: "internet only at cap", final: 57700, quoted: 50000, status: enums.AdviceStatusUpsellPossible, alloc: &Allocation{Internet: 7700}},
		{name: "internet only over cap", final: 57701, quoted: 50000, status: enums.AdviceStatusImpossible},
		{name: "spills into tv1", final: 60000, quoted: 50000, primary: true, status: enums.AdviceStatusUpsellPossible, alloc: &Allocation{Internet: 7700, Tv1: 3300}},
		{name: "spills into tv2", final: 70000, quoted: 50000, primary: true, secondary: true, status: enums.AdviceStatusUpsellPossible, alloc: &Allocation{Internet: 7700, Tv1: 7700, Tv2: 5500}},
		{name: "three slots full", final: 73100, quoted: 50000, primary: true, secondary: true, status: enums.AdviceStatusUpsellPossible, alloc: &Allocation{Internet: 7700, Tv1: 7700, Tv2: 7700}},
		{name: "three slots over", final: 73101, quoted: 50000, primary: true, secondary: true, status: enums.AdviceStatusImpossible},
		{name: "tiny delta rounds up", final: 50001, quoted: 50000, primary: true, status: enums.AdviceStatusUpsellPossible, alloc: &Allocation{Internet: 1100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			advice := Advise(pricing.Quotation{FinalPrice: tc.final}, withTvs(tc.primary, tc.secondary), tc.quoted)
			assert.Equal(t, tc.status, advice.Status)
			assert.Equal(t, tc.alloc, advice.Allocation)
			assert.True(t, advice.HasQuote)
		})
	}
}

func TestAdviseWithoutQuote(t *testing.T) {
	for _, quoted := range []int{0, -100} {
		advice := Advise(pricing.Quotation{FinalPrice: 90000}, withTvs(true, true), quoted)
		assert.Equal(t, enums.AdviceStatusOK, advice.Status)
		assert.False(t, advice.HasQuote)
		assert.Empty(t, advice.DeltaText)
		assert.Nil(t, advice.Allocation)
		assert.Equal(t, 3, advice.SlotCount)
	}
}

func TestAllocationSoundness(t *testing.T) {
	for _, tvs := range [][2]bool{{false, false}, {true, false}, {true, true}} {
		sel := withTvs(tvs[0], tvs[1])
		for delta := 1; delta <= 23100; delta += 37 {
			advice := Advise(pricing.Quotation{FinalPrice: 100000 + delta}, sel, 100000)
			if advice.Status != enums.AdviceStatusUpsellPossible {
				if delta <= advice.TotalCap {
					t.Fatalf("delta %d within cap %d not upsell", delta, advice.TotalCap)
				}
				continue
			}
			alloc := advice.Allocation
			if alloc.Total() < delta || alloc.Total() >= delta+1100 {
				t.Fatalf("delta %d allocated %d", delta, alloc.Total())
			}
			for _, v := range []int{alloc.Internet, alloc.Tv1, alloc.Tv2} {
				if v > SlotCap || v%1100 != 0 {
					t.Fatalf("slot value %d out of grid for delta %d", v, delta)
				}
			}
			if !tvs[0] && alloc.Tv1 != 0 {
				t.Fatalf("tv1 allocated without a main tv")
			}
			if !tvs[1] && alloc.Tv2 != 0 {
				t.Fatalf("tv2 allocated without a second tv")
			}
		}
	}
}

func TestDeltaText(t *testing.T) {
	assert.Equal(t, "안내요금 50,000원 대비 3,000원 낮음", DeltaText(50000, -3000))
	assert.Equal(t, "안내요금 50,000원 동일", DeltaText(50000, 0))
}

func TestAdviseEndToEnd(t *testing.T) {
	engine := pricing.NewEngine(nil)
	sel := selection.New(catalog.Default()).SetTv(catalog.TvAll)
	q := engine.Price(sel)
	require.Equal(t, 49500, q.FinalPrice)

	advice := Advise(q, sel, 45000)
	require.Equal(t, enums.AdviceStatusUpsellPossible, advice.Status)
	assert.Equal(t, Allocation{Internet: 5500}, *advice.Allocation)

	applied := sel.SetPrepaidInternet(advice.Allocation.Internet)
	assert.LessOrEqual(t, engine.Price(applied).FinalPrice, 45000)
}
