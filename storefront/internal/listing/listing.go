package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 200
)

func ParseSort(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return key, nil
	default:
		return SortNone, fmt.Errorf("unknown sort option %q", s)
	}
}

type Filter struct {
	Term     string
	MinPrice float64
	MaxPrice float64
	Sort     SortKey
}

func DefaultFilter() Filter {
	return Filter{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Apply filters cars by model name and average daily price, then sorts the
// result. The input slice is left untouched.
func Apply(cars []model.AvailableCar, f Filter) []model.AvailableCar {
	term := strings.ToLower(f.Term)
	out := make([]model.AvailableCar, 0, len(cars))
	for _, car := range cars {
		if !strings.Contains(strings.ToLower(car.Model), term) {
			continue
		}
		if car.AverageDailyPrice < f.MinPrice || car.AverageDailyPrice > f.MaxPrice {
			continue
		}
		out = append(out, car)
	}
	sortCars(out, f.Sort)
	return out
}

func sortCars(cars []model.AvailableCar, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(cars, func(a, b model.AvailableCar) int {
			return cmp.Compare(a.TotalPrice, b.TotalPrice)
		})
	case SortPriceDesc:
		slices.SortStableFunc(cars, func(a, b model.AvailableCar) int {
			return cmp.Compare(b.TotalPrice, a.TotalPrice)
		})
	case SortNameAsc:
		col := collate.New(language.English)
		slices.SortStableFunc(cars, func(a, b model.AvailableCar) int {
			return col.CompareString(a.Model, b.Model)
		})
	case SortNameDesc:
		col := collate.New(language.English)
		slices.SortStableFunc(cars, func(a, b model.AvailableCar) int {
			return col.CompareString(b.Model, a.Model)
		})
	}
}
