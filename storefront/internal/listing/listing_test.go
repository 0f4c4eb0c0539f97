package listing_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/listing"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/stretchr/testify/require"
)

func car(id, brand, name string, total, daily float64) model.AvailableCar {
	return model.AvailableCar{
		Car:               model.Car{ID: id, Brand: brand, Model: name, Stock: 3},
		TotalPrice:        total,
		AverageDailyPrice: daily,
	}
}

func fixture() []model.AvailableCar {
	return []model.AvailableCar{
		car("1", "Toyota", "Yaris", 160, 40),
		car("2", "Seat", "Ibiza", 180, 45),
		car("3", "Nissan", "Qashqai", 340, 85),
		car("4", "Jaguar", "e-pace", 1000, 250),
		car("5", "Mercedes", "Vito", 480, 120),
	}
}

func ids(cars []model.AvailableCar) []string {
	out := make([]string, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestApply_Identity(t *testing.T) {
	t.Parallel()
	cars := fixture()
	got := listing.Apply(cars, listing.Filter{MinPrice: 0, MaxPrice: 1000})
	require.Equal(t, cars, got)
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()
	f := listing.Filter{Term: "a", MinPrice: 40, MaxPrice: 120, Sort: listing.SortPriceDesc}
	once := listing.Apply(fixture(), f)
	twice := listing.Apply(once, f)
	require.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	cars := fixture()
	_ = listing.Apply(cars, listing.Filter{MaxPrice: 1000, Sort: listing.SortNameAsc})
	require.Equal(t, fixture(), cars)
}

func TestApply_Filter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		filter listing.Filter
		want   []string
	}{
		{
			name:   "default range drops expensive car",
			filter: listing.DefaultFilter(),
			want:   []string{"1", "2", "3", "5"},
		},
		{
			name:   "term is case-insensitive",
			filter: listing.Filter{Term: "QASH", MinPrice: 0, MaxPrice: 200},
			want:   []string{"3"},
		},
		{
			name:   "term matches model only",
			filter: listing.Filter{Term: "toyota", MinPrice: 0, MaxPrice: 200},
			want:   []string{},
		},
		{
			name:   "range bounds are inclusive",
			filter: listing.Filter{MinPrice: 45, MaxPrice: 85},
			want:   []string{"2", "3"},
		},
		{
			name:   "term and range both apply",
			filter: listing.Filter{Term: "i", MinPrice: 0, MaxPrice: 50},
			want:   []string{"1", "2"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ids(listing.Apply(fixture(), tt.filter)))
		})
	}
}

func TestApply_Sort(t *testing.T) {
	t.Parallel()
	all := listing.Filter{MinPrice: 0, MaxPrice: 1000}
	tests := []struct {
		name string
		sort listing.SortKey
		want []string
	}{
		{name: "none", sort: listing.SortNone, want: []string{"1", "2", "3", "4", "5"}},
		{name: "price asc", sort: listing.SortPriceAsc, want: []string{"1", "2", "3", "5", "4"}},
		{name: "price desc", sort: listing.SortPriceDesc, want: []string{"4", "5", "3", "2", "1"}},
		{name: "name asc ignores case", sort: listing.SortNameAsc, want: []string{"4", "2", "3", "5", "1"}},
		{name: "name desc", sort: listing.SortNameDesc, want: []string{"1", "5", "3", "2", "4"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := all
			f.Sort = tt.sort
			require.Equal(t, tt.want, ids(listing.Apply(fixture(), f)))
		})
	}
}

func TestApply_PriceAscReversedIsPriceDesc(t *testing.T) {
	t.Parallel()
	f := listing.Filter{MinPrice: 0, MaxPrice: 1000, Sort: listing.SortPriceAsc}
	asc := listing.Apply(fixture(), f)
	slices.Reverse(asc)

	f.Sort = listing.SortPriceDesc
	require.Equal(t, listing.Apply(fixture(), f), asc)
}

func TestApply_SortIsStable(t *testing.T) {
	t.Parallel()
	cars := []model.AvailableCar{
		car("a", "Fiat", "Panda", 100, 25),
		car("b", "Fiat", "Punto", 100, 25),
		car("c", "Fiat", "Tipo", 50, 25),
	}
	got := listing.Apply(cars, listing.Filter{MaxPrice: 100, Sort: listing.SortPriceAsc})
	require.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestParseSort(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "price-asc", "price-desc", "name-asc", "name-desc"} {
		key, err := listing.ParseSort(s)
		require.NoError(t, err)
		require.Equal(t, listing.SortKey(s), key)
	}
	_, err := listing.ParseSort("rating")
	require.Error(t, err)
}

func TestDecorate(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		c := listing.Decorate(car("1", "Toyota", "Yaris", 160, 40), rnd)
		require.Equal(t, "Yaris", c.Model)
		require.GreaterOrEqual(t, c.Rating, 3.5)
		require.LessOrEqual(t, c.Rating, 5.0)
		require.GreaterOrEqual(t, c.Reviews, 200)
		require.Less(t, c.Reviews, 1200)
		require.Contains(t, []string{"Automatic", "Manual"}, c.Transmission)
		require.Contains(t, []string{"Petrol", "Diesel", "Electric"}, c.FuelType)
		require.GreaterOrEqual(t, c.Seats, 2)
		require.LessOrEqual(t, c.Seats, 9)
	}
	require.Len(t, listing.DecorateAll(fixture(), rnd), 5)
}
