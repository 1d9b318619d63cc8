package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Defaults applied when a filter is left empty
const (
	DefaultManufacturer = "Toyota"
	DefaultYear         = 2022
	PageSize            = 10
)

// Car is a vehicle record as returned by the listing service
type Car struct {
	CityMPG        int     `json:"city_mpg"`
	Class          string  `json:"class"`
	CombinationMPG int     `json:"combination_mpg"`
	Cylinders      int     `json:"cylinders"`
	Displacement   float64 `json:"displacement"`
	Drive          string  `json:"drive"`
	FuelType       string  `json:"fuel_type"`
	HighwayMPG     int     `json:"highway_mpg"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Transmission   string  `json:"transmission"`
	Year           int     `json:"year"`
}

// UnmarshalJSON decodes a record field by field. A field whose JSON type
// does not match (premium-only fields arrive as placeholder strings) is
// left zero instead of failing the record.
func (c *Car) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Car{
		CityMPG:        int(numberField(raw["city_mpg"])),
		Class:          stringField(raw["class"]),
		CombinationMPG: int(numberField(raw["combination_mpg"])),
		Cylinders:      int(numberField(raw["cylinders"])),
		Displacement:   numberField(raw["displacement"]),
		Drive:          stringField(raw["drive"]),
		FuelType:       stringField(raw["fuel_type"]),
		HighwayMPG:     int(numberField(raw["highway_mpg"])),
		Make:           stringField(raw["make"]),
		Model:          stringField(raw["model"]),
		Transmission:   stringField(raw["transmission"]),
		Year:           int(numberField(raw["year"])),
	}
	return nil
}

// numberField reads a JSON number or a numeric string
func numberField(v json.RawMessage) float64 {
	var n float64
	if err := json.Unmarshal(v, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n
		}
	}
	return 0
}

// stringField reads a JSON string, or the literal text of a number
func stringField(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}

// Title returns "Make Model" with the make capitalised
func (c Car) Title() string {
	mk := c.Make
	if r, size := utf8.DecodeRuneInString(mk); r != utf8.RuneError {
		mk = string(unicode.ToUpper(r)) + mk[size:]
	}
	return strings.TrimSpace(mk + " " + c.Model)
}

// TransmissionName returns a readable transmission label
func (c Car) TransmissionName() string {
	if c.Transmission == "a" {
		return "Automatic"
	}
	return "Manual"
}

// Filters holds the user-driven browsing inputs
type Filters struct {
	Manufacturer string
	Model        string
	Fuel         string
	Year         int
	Limit        int
}

// NewFilters returns the filters a page starts with
func NewFilters() Filters {
	return Filters{
		Year:  DefaultYear,
		Limit: PageSize,
	}
}

// FetchRequest is the descriptor handed to the listing service
type FetchRequest struct {
	Manufacturer string
	Model        string
	Year         int
	Fuel         string
	Limit        int
}

// Listing is one response from the listing service.
// Message is set when the service answered with an error object instead of records.
type Listing struct {
	Cars    []Car
	Message string
}

// ResultSet is the current set of records shown on the page
type ResultSet struct {
	Cars    []Car
	Message string
}

// Len returns the number of records
func (r ResultSet) Len() int {
	return len(r.Cars)
}
