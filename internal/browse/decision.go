package browse

import "carhub/internal/domain"

// Decision is the render outcome derived from page state
type Decision struct {
	Cars         []domain.Car
	ShowResults  bool
	ShowLoading  bool
	ShowEmpty    bool
	EmptyMessage string

	// PageNumber is limit / page size and may be fractional
	PageNumber float64
	// IsNext is true once the requested limit exceeds what was returned
	IsNext bool
}

func decide(results domain.ResultSet, loading bool, limit, pageSize int) Decision {
	d := Decision{
		PageNumber: float64(limit) / float64(pageSize),
		IsNext:     limit > results.Len(),
	}
	if results.Len() > 0 {
		d.Cars = results.Cars
		d.ShowResults = true
		d.ShowLoading = loading
		return d
	}
	d.ShowEmpty = true
	d.EmptyMessage = results.Message
	return d
}
