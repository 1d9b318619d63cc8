package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carhub/internal/domain"
	"carhub/internal/logging"
)

func TestDecidePagination(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		returned int
		wantPage float64
		wantNext bool
	}{
		{"full first page", 10, 10, 1, false},
		{"second page short", 20, 10, 2, true},
		{"fractional page", 15, 15, 1.5, false},
		{"partial first page", 10, 3, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithLogger(logging.Discard()))
			c.SetLimit(tt.limit)
			ticket, _ := c.Sync()
			c.Resolve(ticket.Seq, domain.Listing{Cars: cars(tt.returned)}, nil)

			d := c.Decide()
			assert.Equal(t, tt.wantPage, d.PageNumber)
			assert.Equal(t, tt.wantNext, d.IsNext)
		})
	}
}

func TestDecideResultsWithLoading(t *testing.T) {
	c := New(WithLogger(logging.Discard()))
	issueAndResolve(t, c, domain.Listing{Cars: cars(3)})

	c.SetFuel("gas")
	_, _ = c.Sync()

	d := c.Decide()
	assert.True(t, d.ShowResults)
	assert.True(t, d.ShowLoading, "previous results stay visible while loading")
	assert.False(t, d.ShowEmpty)
	assert.Len(t, d.Cars, 3)
}

func TestDecideEmptyShowsServiceMessage(t *testing.T) {
	c := New(WithLogger(logging.Discard()))
	issueAndResolve(t, c, domain.Listing{Message: "You are not subscribed to this API."})

	d := c.Decide()
	assert.False(t, d.ShowResults)
	assert.True(t, d.ShowEmpty)
	assert.Equal(t, "You are not subscribed to this API.", d.EmptyMessage)
	assert.Empty(t, d.Cars)
}

func TestDecideEmptyWithoutMessage(t *testing.T) {
	c := New(WithLogger(logging.Discard()))
	issueAndResolve(t, c, domain.Listing{Cars: []domain.Car{}})

	d := c.Decide()
	assert.True(t, d.ShowEmpty)
	assert.Empty(t, d.EmptyMessage)
	assert.False(t, d.ShowLoading)
}
