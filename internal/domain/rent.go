package domain

import "math"

const (
	basePricePerDay = 50
	mileageFactor   = 0.1
	ageFactor       = 0.05
)

// RentPerDay estimates a daily rental price from fuel economy and age
func RentPerDay(c Car, currentYear int) int {
	mileageRate := float64(c.CityMPG) * mileageFactor
	ageRate := float64(currentYear-c.Year) * ageFactor
	return int(math.Round(basePricePerDay + mileageRate + ageRate))
}
