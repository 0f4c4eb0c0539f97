package listing

import (
	"math"
	"math/rand"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
)

// Card is an AvailableCar with placeholder display values. The backend does
// not track ratings or specs yet.
type Card struct {
	model.AvailableCar
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuelType"`
	Seats        int     `json:"seats"`
}

type Randomizer interface {
	Float64() float64
	Intn(n int) int
}

var (
	transmissionTypes = []string{"Automatic", "Manual"}
	fuelTypes         = []string{"Petrol", "Diesel", "Electric"}
)

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// GlobalRand uses the goroutine-safe top-level math/rand source.
func GlobalRand() Randomizer {
	return globalRand{}
}

func Decorate(car model.AvailableCar, rnd Randomizer) Card {
	return Card{
		AvailableCar: car,
		Rating:       math.Round((3.5+rnd.Float64()*1.49)*10) / 10,
		Reviews:      200 + rnd.Intn(1000),
		Transmission: transmissionTypes[rnd.Intn(len(transmissionTypes))],
		FuelType:     fuelTypes[rnd.Intn(len(fuelTypes))],
		Seats:        rnd.Intn(8) + 2,
	}
}

func DecorateAll(cars []model.AvailableCar, rnd Randomizer) []Card {
	cards := make([]Card, 0, len(cars))
	for _, car := range cars {
		cards = append(cards, Decorate(car, rnd))
	}
	return cards
}
