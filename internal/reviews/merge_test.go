package reviews

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
)

func entry(sku, base, rating, num string) model.ReviewEntry {
	return model.ReviewEntry{SKU: sku, BaseSKU: base, Rating: rating, NumReviews: num, HasRating: true, HasNumReviews: true}
}

func TestBaseSKU(t *testing.T) {
	cases := map[string]string{
		"A_1":            "A",
		"MITHarvGrp_01":  "MITHarvGrp",
		"NoSuffix":       "NoSuffix",
		"Multi_2_10":     "Multi_2",
		"Trailing_":      "Trailing_",
		"Letters_ab":     "Letters_ab",
		"":               "",
		"FreedomTrl_123": "FreedomTrl",
	}
	for in, want := range cases {
		require.Equal(t, want, BaseSKU(in), "sku %q", in)
	}
}

func TestMergeBaseSKUMatch(t *testing.T) {
	tours := []model.Tour{{SKU: "A_1", Rating: 4.0, NumReviews: 5}}
	out := Merge(tours, []model.ReviewEntry{entry("A", "", "4.8", "55")})

	require.Len(t, out, 1)
	got := out[0]
	require.Equal(t, 4.8, got.Rating)
	require.Equal(t, 55, got.NumReviews)
	require.NotNil(t, got.OriginalRating)
	require.Equal(t, 4.0, *got.OriginalRating)
	require.Equal(t, 5, *got.OriginalNumReviews)

	// input untouched
	require.Equal(t, 4.0, tours[0].Rating)
	require.Nil(t, tours[0].OriginalRating)
}

func TestMatchOrder(t *testing.T) {
	entries := []model.ReviewEntry{
		entry("Other", "", "1", "1"),
		entry("", "Tour", "3", "3"),
		entry("Tour_2", "", "5", "5"),
	}
	// the baseSku entry comes first in the list, so it wins over the exact sku
	e, ok := Match("Tour_2", entries)
	require.True(t, ok)
	require.Equal(t, "3", e.Rating)

	_, ok = Match("Nope_1", entries)
	require.False(t, ok)
}

func TestMatchIgnoresEmptyFields(t *testing.T) {
	// an entry with no sku and no baseSku must not match a tour whose base is empty
	_, ok := Match("_12", []model.ReviewEntry{entry("", "", "5", "9")})
	require.False(t, ok)
}

func TestMergeRequiresBothFields(t *testing.T) {
	e := model.ReviewEntry{SKU: "X", Rating: "5", HasRating: true}
	out := Merge([]model.Tour{{SKU: "X", Rating: 3, NumReviews: 2}}, []model.ReviewEntry{e})
	require.Equal(t, 3.0, out[0].Rating)
	require.Nil(t, out[0].OriginalRating)
}

func TestMergeParseFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		rating     string
		num        string
		wantRating float64
		wantNum    int
	}{
		{"numbers", "4.7", "120", 4.7, 120},
		{"prefix", "4.9 stars", "88 reviews", 4.9, 88},
		{"fractional count", "4.5", "31.9", 4.5, 31},
		{"unparseable", "n/a", "", 3.5, 7},
		{"zero falls back", "0", "0", 3.5, 7},
		{"null", "", "", 3.5, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Merge([]model.Tour{{SKU: "S", Rating: 3.5, NumReviews: 7}}, []model.ReviewEntry{entry("S", "", tc.rating, tc.num)})
			require.Equal(t, tc.wantRating, out[0].Rating)
			require.Equal(t, tc.wantNum, out[0].NumReviews)
			require.NotNil(t, out[0].OriginalRating)
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	tours := []model.Tour{
		{SKU: "A_1", Rating: 4.0, NumReviews: 5},
		{SKU: "B", Rating: 3.0, NumReviews: 1},
	}
	entries := []model.ReviewEntry{entry("A", "", "4.8", "55")}

	once := Merge(tours, entries)
	twice := Merge(once, entries)
	require.Equal(t, once, twice)
	require.Equal(t, 4.0, *twice[0].OriginalRating)
	require.Nil(t, twice[1].OriginalRating)
}

func TestMergeOriginalCapturedOnce(t *testing.T) {
	tours := []model.Tour{{SKU: "A", Rating: 4.0, NumReviews: 5}}
	first := Merge(tours, []model.ReviewEntry{entry("A", "", "4.5", "10")})
	second := Merge(first, []model.ReviewEntry{entry("A", "", "4.9", "20")})
	require.Equal(t, 4.9, second[0].Rating)
	require.Equal(t, 20, second[0].NumReviews)
	require.Equal(t, 4.0, *second[0].OriginalRating)
	require.Equal(t, 5, *second[0].OriginalNumReviews)
}

func TestMergeNilEntries(t *testing.T) {
	tours := []model.Tour{{SKU: "A", Rating: 4.0}}
	out := Merge(tours, nil)
	require.Equal(t, tours, out)
}

func TestMergeKeepsIdentity(t *testing.T) {
	tours := []model.Tour{{SKU: "A_3", Link: "/tours/a", Title: "A"}}
	out := Merge(tours, []model.ReviewEntry{entry("A", "", "5", "1")})
	require.Equal(t, "A_3", out[0].SKU)
	require.Equal(t, "/tours/a", out[0].Link)
	require.Equal(t, "A", out[0].Title)
}
