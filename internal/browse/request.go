package browse

import "carhub/internal/domain"

// BuildRequest applies the fallbacks to empty filter fields
func BuildRequest(f domain.Filters, d Defaults) domain.FetchRequest {
	req := domain.FetchRequest{
		Manufacturer: f.Manufacturer,
		Model:        f.Model,
		Year:         f.Year,
		Fuel:         f.Fuel,
		Limit:        f.Limit,
	}
	if req.Manufacturer == "" {
		req.Manufacturer = d.Manufacturer
	}
	if req.Year == 0 {
		req.Year = d.Year
	}
	if req.Limit == 0 {
		req.Limit = d.PageSize
	}
	return req
}
