package domain

import "strconv"

// Option is one entry of a static dropdown list
type Option struct {
	Title string
	Value string
}

// Fuels lists the fuel filter options; the empty value means any fuel
var Fuels = []Option{
	{Title: "Fuel", Value: ""},
	{Title: "Gas", Value: "gas"},
	{Title: "Electricity", Value: "electricity"},
}

// YearsOfProduction lists the year filter options; the empty value means any year
var YearsOfProduction = yearOptions(2015, 2023)

// Manufacturers feeds the search bar suggestions
var Manufacturers = []string{
	"Acura", "Alfa Romeo", "Aston Martin", "Audi", "Bentley", "BMW", "Buick",
	"Cadillac", "Chevrolet", "Chrysler", "Citroen", "Dodge", "Ferrari", "Fiat",
	"Ford", "GMC", "Honda", "Hyundai", "Infiniti", "Jaguar", "Jeep", "Kia",
	"Lamborghini", "Land Rover", "Lexus", "Lincoln", "Maserati", "Mazda",
	"McLaren", "Mercedes-Benz", "MINI", "Mitsubishi", "Nissan", "Porsche", "Ram",
	"Rolls-Royce", "Subaru", "Tesla", "Toyota", "Volkswagen", "Volvo",
}

func yearOptions(from, to int) []Option {
	opts := []Option{{Title: "Year", Value: ""}}
	for y := to; y >= from; y-- {
		s := strconv.Itoa(y)
		opts = append(opts, Option{Title: s, Value: s})
	}
	return opts
}

// IndexOf returns the position of value in opts, or 0 when absent
func IndexOf(opts []Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return 0
}
