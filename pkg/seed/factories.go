// Package seed creates demo listings for development databases. The
// datasets mirror the storefront's six categories.
package seed

import (
	"fmt"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/models"

	"github.com/brianvoe/gofakeit/v6"
)

var cars = [][3]string{
	{"Ford", "Fiesta", "Hatchback"},
	{"Volkswagen", "Golf", "Hatchback"},
	{"BMW", "3 Series", "Saloon"},
	{"Audi", "A3", "Hatchback"},
	{"Mercedes-Benz", "C-Class", "Saloon"},
	{"Nissan", "Qashqai", "SUV"},
	{"Toyota", "Yaris", "Hatchback"},
	{"Kia", "Sportage", "SUV"},
}

var vans = [][3]string{
	{"Ford", "Transit Custom", "Van"},
	{"Mercedes-Benz", "Sprinter", "Van"},
	{"Volkswagen", "Transporter T6", "Van"},
	{"Vauxhall", "Vivaro", "Van"},
}

var bikes = [][3]string{
	{"Yamaha", "R1", "Bike"},
	{"Honda", "CBR600RR", "Bike"},
	{"Kawasaki", "Ninja 650", "Bike"},
	{"Ducati", "Monster 821", "Bike"},
	{"BMW", "R1250GS", "Bike"},
}

var caravans = [][3]string{
	{"Swift", "Challenger 580", "Caravan"},
	{"Bailey", "Unicorn Cadiz", "Caravan"},
	{"Elddis", "Avante 550", "Caravan"},
}

var trucks = [][3]string{
	{"Scania", "R450", "Truck"},
	{"Volvo", "FH16", "Truck"},
	{"DAF", "XF 530", "Truck"},
}

var farmPlant = [][3]string{
	{"John Deere", "6155R", "Tractor"},
	{"Massey Ferguson", "7718S", "Tractor"},
	{"JCB", "3CX", "Digger"},
	{"Caterpillar", "320", "Excavator"},
}

var (
	fuels   = []string{"Petrol", "Diesel", "Hybrid", "Electric"}
	gears   = []string{"Manual", "Automatic"}
	colours = []string{"Black", "White", "Grey", "Blue", "Red", "Silver"}

	// Towns and postcodes pair up by index.
	towns     = []string{"London", "Manchester", "Leeds", "Birmingham", "Glasgow", "Bristol"}
	postcodes = []string{"SW1A1AA", "M11AE", "LS12AB", "B11AA", "G21AA", "BS11AA"}
)

func pick(list []string, i int) string {
	return list[i%len(list)]
}

func pickTriple(list [][3]string, i int) (string, string, string) {
	t := list[i%len(list)]
	return t[0], t[1], t[2]
}

func photoURL(seedKey string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/900/900", seedKey)
}

// imagesFor returns three stable dev photo URLs per listing.
func imagesFor(category, make, model string, year, index int) models.StringList {
	base := fmt.Sprintf("%s-%s-%s-%d-%d", category, make, model, year, index)
	return models.StringList{
		photoURL(base + "-1"),
		photoURL(base + "-2"),
		photoURL(base + "-3"),
	}
}

// Factory builds listings for one category at a time. The index drives the
// deterministic picks (make, colour, town); prices and mileages vary.
type Factory struct{}

func NewFactory() *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{}
}

func (f *Factory) baseListing(category models.ListingCategory, make, model, body string, year int, i int) *models.Listing {
	colour := pick(colours, i)
	town := pick(towns, i)
	return &models.Listing{
		Category: category,
		Make:     make,
		Model:    model,
		Year:     &year,
		Body:     &body,
		Colour:   &colour,
		PostTown: &town,
		Status:   models.StatusLive,
	}
}

func (f *Factory) Car(i int) *models.Listing {
	make, model, body := pickTriple(cars, i)
	year := gofakeit.Number(2008, 2023)
	mileage := gofakeit.Number(20000, 120000)
	fuel := pick(fuels, i)
	trans := pick(gears, i)

	l := f.baseListing(models.CategoryCars, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s %s", year, make, model, body)
	l.Mileage = &mileage
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(1500, 18000))
	desc := fmt.Sprintf("%s in %s. %d miles, %s, %s.", l.Title, *l.Colour, mileage, fuel, trans)
	l.Description = &desc
	l.Images = imagesFor("Cars", make, model, year, i)

	// Give the quick filters something to find.
	seats := 5
	if gofakeit.Bool() && gofakeit.Bool() {
		seats = 7
	}
	l.Seats = &seats
	l.HasTowBar = gofakeit.Number(0, 4) == 0
	l.HasWarranty = gofakeit.Number(0, 2) == 0
	return l
}

func (f *Factory) Van(i int) *models.Listing {
	make, model, body := pickTriple(vans, i)
	year := gofakeit.Number(2010, 2023)
	mileage := gofakeit.Number(50000, 200000)
	fuel := "Diesel"
	trans := pick(gears, i)

	l := f.baseListing(models.CategoryVans, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s", year, make, model)
	l.Mileage = &mileage
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(2500, 25000))
	desc := fmt.Sprintf("%s in %s. %d miles, ready for work.", l.Title, *l.Colour, mileage)
	l.Description = &desc
	l.Images = imagesFor("Vans", make, model, year, i)
	l.HasTowBar = gofakeit.Number(0, 2) == 0
	return l
}

func (f *Factory) Bike(i int) *models.Listing {
	make, model, body := pickTriple(bikes, i)
	year := gofakeit.Number(2012, 2023)
	mileage := gofakeit.Number(1000, 30000)
	fuel := "Petrol"
	trans := "Manual"

	l := f.baseListing(models.CategoryBikes, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s", year, make, model)
	l.Mileage = &mileage
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(1200, 9000))
	desc := fmt.Sprintf("%s in %s. %d miles.", l.Title, *l.Colour, mileage)
	l.Description = &desc
	l.Images = imagesFor("Bikes", make, model, year, i)
	return l
}

func (f *Factory) Caravan(i int) *models.Listing {
	make, model, body := pickTriple(caravans, i)
	year := gofakeit.Number(2008, 2023)
	mileage := 0
	fuel := "N/A"
	trans := "N/A"

	l := f.baseListing(models.CategoryCaravans, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s", year, make, model)
	l.Mileage = &mileage
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(2500, 20000))
	desc := fmt.Sprintf("%s %s finish, spacious and well maintained.", l.Title, *l.Colour)
	l.Description = &desc
	l.Images = imagesFor("Caravans", make, model, year, i)
	return l
}

func (f *Factory) Truck(i int) *models.Listing {
	make, model, body := pickTriple(trucks, i)
	year := gofakeit.Number(2012, 2023)
	mileage := gofakeit.Number(200000, 800000) // km
	fuel := "Diesel"
	trans := "Automatic"

	l := f.baseListing(models.CategoryTrucks, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s", year, make, model)
	l.Mileage = &mileage
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(12000, 60000))
	desc := fmt.Sprintf("%s %d km, fleet maintained.", l.Title, mileage)
	l.Description = &desc
	l.Images = imagesFor("Trucks", make, model, year, i)
	return l
}

func (f *Factory) FarmPlant(i int) *models.Listing {
	make, model, body := pickTriple(farmPlant, i)
	year := gofakeit.Number(2005, 2023)
	hours := gofakeit.Number(500, 5000)
	fuel := "Diesel"
	trans := "Manual"

	l := f.baseListing(models.CategoryFarmPlant, make, model, body, year, i)
	l.Title = fmt.Sprintf("%d %s %s", year, make, model)
	l.Mileage = &hours
	l.Fuel = &fuel
	l.Transmission = &trans
	l.Price = float64(gofakeit.Number(4000, 55000))
	desc := fmt.Sprintf("%s, %d hours, ready for work.", l.Title, hours)
	l.Description = &desc
	l.Images = imagesFor("Farm & Plant", make, model, year, i)
	return l
}

// Build returns a listing for the category, or nil for an unknown one.
func (f *Factory) Build(category models.ListingCategory, i int) *models.Listing {
	switch category {
	case models.CategoryCars:
		return f.Car(i)
	case models.CategoryVans:
		return f.Van(i)
	case models.CategoryBikes:
		return f.Bike(i)
	case models.CategoryCaravans:
		return f.Caravan(i)
	case models.CategoryTrucks:
		return f.Truck(i)
	case models.CategoryFarmPlant:
		return f.FarmPlant(i)
	}
	return nil
}

// Postcode returns the postcode paired with the index's town.
func Postcode(i int) string {
	return pick(postcodes, i)
}
