package query

import (
	"math/rand/v2"
	"net/url"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/tour-catalog-service/internal/catalog"
	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

func fixture(t *testing.T) []model.Tour {
	t.Helper()
	tours, err := catalog.LoadFile("../catalog/testdata/tours.yaml")
	require.NoError(t, err)
	return tours
}

func skus(ts []model.Tour) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.SKU
	}
	return out
}

func active(v bool) model.Status { return model.Status{IsActive: &v} }

func TestWorkedExamples(t *testing.T) {
	tours := []model.Tour{
		{SKU: "A_1", Price: 100, Rating: 4.5, NumReviews: 10, Ranking: 2, Status: active(true)},
		{SKU: "B_1", Price: 80, Rating: 4.5, NumReviews: 20, Ranking: 1, Status: active(true)},
	}
	for _, mode := range []SortMode{SortPriceAsc, SortFeatured} {
		got := skus(Run(tours, Spec{Sort: mode}))
		if diff := cmp.Diff([]string{"B_1", "A_1"}, got); diff != "" {
			t.Fatalf("%s order mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestRunFilters(t *testing.T) {
	tours := fixture(t)
	cases := []struct {
		name string
		spec Spec
		want []string
	}{
		{"all", Spec{}, []string{"FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "SelfGuided_01", "Custom", "CapeAnn_01"}},
		{"type private", Spec{TourType: model.TypePrivate}, []string{"MITHarvGrp_01", "Custom", "CapeAnn_01"}},
		{"type all", Spec{TourType: All, TopN: 1}, []string{"FreedomTrl_01"}},
		{"special event", Spec{SpecialEvent: "250th"}, []string{"FreedomTrl_01"}},
		{"short", Spec{Length: LengthShort}, []string{"FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "SelfGuided_01"}},
		{"half includes both edges", Spec{Length: LengthHalf}, []string{"MITHarvGrp_01", "Custom"}},
		{"full", Spec{Length: LengthFull}, []string{"Custom", "CapeAnn_01"}},
		{"min guests", Spec{MinGuests: 13}, []string{"FreedomTrl_01", "Custom"}},
		{"max guests", Spec{MaxGuests: 1}, []string{"FreedomTrl_01", "MITHarvGrp_01", "SelfGuided_01", "Custom", "CapeAnn_01"}},
		{"destination", Spec{Destinations: []string{"Cambridge"}}, []string{"MITHarvGrp_01", "Custom"}},
		{"transport", Spec{Transport: []string{"car"}}, []string{"MITHarvGrp_01", "Custom", "CapeAnn_01"}},
		{"skus", Spec{SKUs: []string{"Custom", "NorthEnd_01"}}, []string{"NorthEnd_01", "Custom"}},
		{"active true skips unset", Spec{Active: ActiveTrue}, []string{"FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "SelfGuided_01"}},
		{"active false", Spec{Active: ActiveFalse}, []string{"CapeAnn_01"}},
		{"no match", Spec{TourType: model.TypeCustom}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := skus(Run(tours, tc.spec))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuestFiltersWithFractionalCapacity(t *testing.T) {
	duo := model.Tour{SKU: "Duo", GuestMin: 1.5, GuestMax: 2.5}
	require.True(t, Matches(duo, Spec{MinGuests: 2}))
	require.False(t, Matches(duo, Spec{MinGuests: 3}))
	require.True(t, Matches(duo, Spec{MaxGuests: 2}))
	require.False(t, Matches(duo, Spec{MaxGuests: 1}))
}

func TestRunSortModes(t *testing.T) {
	tours := fixture(t)
	cases := map[SortMode][]string{
		SortFeatured:    {"FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "SelfGuided_01", "Custom", "CapeAnn_01"},
		SortPriceAsc:    {"SelfGuided_01", "FreedomTrl_01", "NorthEnd_01", "Custom", "MITHarvGrp_01", "CapeAnn_01"},
		SortPriceDesc:   {"MITHarvGrp_01", "Custom", "NorthEnd_01", "FreedomTrl_01", "SelfGuided_01", "CapeAnn_01"},
		SortRatingDesc:  {"MITHarvGrp_01", "FreedomTrl_01", "NorthEnd_01", "Custom", "SelfGuided_01", "CapeAnn_01"},
		SortRatingAsc:   {"SelfGuided_01", "Custom", "NorthEnd_01", "FreedomTrl_01", "MITHarvGrp_01", "CapeAnn_01"},
		SortReviewsDesc: {"FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "SelfGuided_01", "Custom", "CapeAnn_01"},
		SortReviewsAsc:  {"Custom", "SelfGuided_01", "MITHarvGrp_01", "NorthEnd_01", "FreedomTrl_01", "CapeAnn_01"},
		SortDurAsc:      {"SelfGuided_01", "FreedomTrl_01", "NorthEnd_01", "MITHarvGrp_01", "Custom", "CapeAnn_01"},
		SortDurDesc:     {"Custom", "MITHarvGrp_01", "NorthEnd_01", "FreedomTrl_01", "SelfGuided_01", "CapeAnn_01"},
	}
	require.Len(t, cases, len(SortModes))
	for mode, want := range cases {
		got := skus(Run(tours, Spec{Sort: mode}))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestTieBreaks(t *testing.T) {
	tours := []model.Tour{
		{SKU: "low-rating", Price: 50, Rating: 4.0, NumReviews: 90},
		{SKU: "few-reviews", Price: 50, Rating: 4.8, NumReviews: 3},
		{SKU: "many-reviews", Price: 50, Rating: 4.8, NumReviews: 30},
	}
	got := skus(Run(tours, Spec{Sort: SortPriceAsc}))
	require.Equal(t, []string{"many-reviews", "few-reviews", "low-rating"}, got)

	got = skus(Run(tours, Spec{Sort: SortRatingAsc}))
	require.Equal(t, []string{"low-rating", "few-reviews", "many-reviews"}, got)
}

func TestSortIsStable(t *testing.T) {
	var tours []model.Tour
	for _, s := range []string{"e", "d", "c", "b", "a"} {
		tours = append(tours, model.Tour{SKU: s, Price: 10, Rating: 4, NumReviews: 1, Ranking: 1})
	}
	for _, mode := range SortModes {
		require.Equal(t, []string{"e", "d", "c", "b", "a"}, skus(Run(tours, Spec{Sort: mode})), mode)
	}
}

func TestTopN(t *testing.T) {
	tours := fixture(t)
	full := Run(tours, Spec{Sort: SortPriceAsc})
	for n := 1; n <= len(full)+2; n++ {
		got := Run(tours, Spec{Sort: SortPriceAsc, TopN: n})
		want := full[:min(n, len(full))]
		if diff := cmp.Diff(skus(want), skus(got)); diff != "" {
			t.Fatalf("top %d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestRunDoesNotAliasInput(t *testing.T) {
	tours := fixture(t)
	before := skus(tours)
	got := Run(tours, Spec{Sort: SortPriceDesc})
	got[0].SpecialEvents = map[string]bool{"x": true}
	got[0].Destinations[0] = "changed"
	require.Equal(t, before, skus(tours))
	for _, tr := range tours {
		require.NotContains(t, tr.Destinations, "changed")
	}
}

func TestUnknownSortFallsBackToFeatured(t *testing.T) {
	require.Equal(t, SortFeatured, ParseSortMode("bogus"))
	require.Equal(t, SortFeatured, ParseSortMode(""))
	require.Equal(t, SortDurDesc, ParseSortMode(" DUR-DESC "))
	tours := fixture(t)
	require.Equal(t, skus(Run(tours, Spec{Sort: SortFeatured})), skus(Run(tours, Spec{Sort: "bogus"})))
}

func randomTours(r *rand.Rand, n int) []model.Tour {
	types := []model.TourType{model.TypePrivate, model.TypeShared, model.TypeSelfGuided, model.TypeCustom}
	places := []string{"North End", "Cambridge", "Salem", "Charlestown"}
	out := make([]model.Tour, n)
	for i := range out {
		t := model.Tour{
			SKU:          string(rune('a'+i%26)) + "_" + string(rune('0'+i/26)),
			Type:         types[r.IntN(len(types))],
			Destinations: []string{places[r.IntN(len(places))]},
			Transport:    []string{[]string{"car", "walking"}[r.IntN(2)]},
			Price:        float64(r.IntN(5) * 25),
			DurationVal:  float64(r.IntN(20)) / 2,
			GuestMin:     float64(1 + r.IntN(3)),
			GuestMax:     float64(4+r.IntN(12)) + float64(r.IntN(2))/2,
			Rating:       float64(r.IntN(6)) / 1.25,
			NumReviews:   r.IntN(4),
			Ranking:      r.IntN(5),
		}
		switch r.IntN(3) {
		case 0:
			t.Status = active(true)
		case 1:
			t.Status = active(false)
		}
		if r.IntN(4) == 0 {
			t.SpecialEvents = map[string]bool{"250th": true}
		}
		out[i] = t
	}
	return out
}

func TestRunProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	lengths := []Length{LengthAll, LengthShort, LengthHalf, LengthFull}
	actives := []ActiveFilter{ActiveAll, ActiveTrue, ActiveFalse}
	for iter := 0; iter < 200; iter++ {
		tours := randomTours(r, 1+r.IntN(40))
		spec := Spec{
			Length:    lengths[r.IntN(len(lengths))],
			Active:    actives[r.IntN(len(actives))],
			MinGuests: r.IntN(10),
			Sort:      SortModes[r.IntN(len(SortModes))],
		}
		if r.IntN(2) == 0 {
			spec.Destinations = []string{"Cambridge", "Salem"}
		}
		got := Run(tours, spec)

		// soundness and completeness
		var want []string
		for _, tr := range tours {
			if Matches(tr, spec) {
				want = append(want, tr.SKU)
			}
		}
		gotSKUs := skus(got)
		slices.Sort(want)
		sorted := slices.Clone(gotSKUs)
		slices.Sort(sorted)
		require.Equal(t, len(want), len(sorted))
		if len(want) > 0 {
			require.Equal(t, want, sorted)
		}

		// active first
		seenInactive := false
		for _, tr := range got {
			if !tr.Status.ActiveOrUnset() {
				seenInactive = true
			} else {
				require.False(t, seenInactive, "active tour after inactive in %s", spec.Sort)
			}
		}

		// ordered by the mode comparator
		c := comparatorFor(spec.Sort)
		for i := 1; i < len(got); i++ {
			require.LessOrEqual(t, c(got[i-1], got[i]), 0)
		}
	}
}

func TestParseValues(t *testing.T) {
	v := url.Values{
		"type":        {"private"},
		"event":       {"250th"},
		"length":      {"Half"},
		"minGuests":   {"2"},
		"maxGuests":   {"8"},
		"destination": {"North End,Cambridge", "Salem"},
		"transport":   {"car"},
		"sku":         {"A_1"},
		"active":      {"true"},
		"sort":        {"price-desc"},
		"top":         {"3"},
	}
	got, err := ParseValues(v)
	require.NoError(t, err)
	want := Spec{
		TourType:     model.TypePrivate,
		SpecialEvent: "250th",
		Length:       LengthHalf,
		MinGuests:    2,
		MaxGuests:    8,
		Destinations: []string{"North End", "Cambridge", "Salem"},
		Transport:    []string{"car"},
		SKUs:         []string{"A_1"},
		Active:       ActiveTrue,
		Sort:         SortPriceDesc,
		TopN:         3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spec mismatch (-want +got):\n%s", diff)
	}

	empty, err := ParseValues(url.Values{})
	require.NoError(t, err)
	require.Equal(t, LengthAll, empty.Length)
	require.Equal(t, SortFeatured, empty.Sort)
	require.Equal(t, ActiveAll, empty.Active)
}

func TestParseValuesRejects(t *testing.T) {
	for _, v := range []url.Values{
		{"length": {"weekend"}},
		{"minGuests": {"-1"}},
		{"maxGuests": {"many"}},
		{"top": {"1.5"}},
		{"active": {"maybe"}},
	} {
		_, err := ParseValues(v)
		require.ErrorIs(t, err, ErrInvalidSpec, v.Encode())
	}
}
