// Package browse holds the state of the catalogue page: the filter inputs,
// the current result set and the loading flag, plus the rule that decides
// when a new fetch has to be issued.
//
// The controller does no I/O. Callers execute the returned Ticket against a
// catalog.Fetcher and hand the outcome back to Resolve:
//
//	if t, ok := c.Sync(); ok {
//		listing, err := fetcher.Fetch(ctx, t.Request)
//		c.Resolve(t.Seq, listing, err)
//	}
package browse

import (
	"log/slog"
	"sync"

	"carhub/internal/domain"
)

// StalePolicy decides what happens to a response that arrives after a newer
// request was issued
type StalePolicy int

const (
	// LastResolvedWins applies every response in arrival order
	LastResolvedWins StalePolicy = iota
	// LastIssuedWins drops responses older than the newest issued request
	LastIssuedWins
)

// Defaults are the fallbacks applied to empty filter fields
type Defaults struct {
	Manufacturer string
	Year         int
	PageSize     int
}

// DefaultDefaults returns the built-in fallbacks
func DefaultDefaults() Defaults {
	return Defaults{
		Manufacturer: domain.DefaultManufacturer,
		Year:         domain.DefaultYear,
		PageSize:     domain.PageSize,
	}
}

// Ticket is an issued fetch awaiting its response
type Ticket struct {
	Seq     uint64
	Request domain.FetchRequest
}

// Controller is the page state container
type Controller struct {
	mu       sync.Mutex
	filters  domain.Filters
	results  domain.ResultSet
	loading  bool
	defaults Defaults
	policy   StalePolicy
	logger   *slog.Logger

	lastSent *domain.FetchRequest
	issued   uint64 // generation of the newest issued request

	filtersSet bool
}

// Option configures a Controller
type Option func(*Controller)

// WithDefaults overrides the fallback values
func WithDefaults(d Defaults) Option {
	return func(c *Controller) {
		if d.PageSize <= 0 {
			d.PageSize = domain.PageSize
		}
		c.defaults = d
	}
}

// WithStalePolicy selects how out-of-order responses are handled
func WithStalePolicy(p StalePolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithLogger sets the logger fetch failures are reported to
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithFilters sets the initial filter state
func WithFilters(f domain.Filters) Option {
	return func(c *Controller) {
		c.filters = f
		c.filtersSet = true
	}
}

// New creates a controller with the initial page state
func New(opts ...Option) *Controller {
	c := &Controller{
		defaults: DefaultDefaults(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.filtersSet {
		c.filters = c.initialFilters()
	}
	return c
}

func (c *Controller) initialFilters() domain.Filters {
	return domain.Filters{Year: c.defaults.Year, Limit: c.defaults.PageSize}
}

// Filters returns a snapshot of the filter state
func (c *Controller) Filters() domain.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Results returns the current result set
func (c *Controller) Results() domain.ResultSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Loading reports whether a fetch was issued and not yet resolved
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// PageSize returns the configured page size
func (c *Controller) PageSize() int {
	return c.defaults.PageSize
}

// SetManufacturer updates the manufacturer filter
func (c *Controller) SetManufacturer(v string) bool {
	return c.update(func(f *domain.Filters) { f.Manufacturer = v })
}

// SetModel updates the model filter
func (c *Controller) SetModel(v string) bool {
	return c.update(func(f *domain.Filters) { f.Model = v })
}

// SetFuel updates the fuel filter
func (c *Controller) SetFuel(v string) bool {
	return c.update(func(f *domain.Filters) { f.Fuel = v })
}

// SetYear updates the year filter
func (c *Controller) SetYear(v int) bool {
	return c.update(func(f *domain.Filters) { f.Year = v })
}

// SetLimit updates the requested number of records
func (c *Controller) SetLimit(v int) bool {
	return c.update(func(f *domain.Filters) { f.Limit = v })
}

// ShowMore grows the limit by one page
func (c *Controller) ShowMore() bool {
	return c.update(func(f *domain.Filters) {
		limit := f.Limit
		if limit == 0 {
			limit = c.defaults.PageSize
		}
		f.Limit = limit + c.defaults.PageSize
	})
}

// ClearFilters puts every filter back to its initial value
func (c *Controller) ClearFilters() bool {
	return c.update(func(f *domain.Filters) { *f = c.initialFilters() })
}

func (c *Controller) update(fn func(*domain.Filters)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.filters
	fn(&c.filters)
	return c.filters != before
}

// Request derives the fetch request from the current filters
func (c *Controller) Request() domain.FetchRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildRequest(c.filters, c.defaults)
}

// Refresh issues a fetch for the current filters unconditionally
func (c *Controller) Refresh() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issueLocked(BuildRequest(c.filters, c.defaults))
}

// Sync issues a fetch when the derived request differs from the last one
// sent. The first call always issues.
func (c *Controller) Sync() (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	req := BuildRequest(c.filters, c.defaults)
	if c.lastSent != nil && *c.lastSent == req {
		return Ticket{}, false
	}
	return c.issueLocked(req), true
}

func (c *Controller) issueLocked(req domain.FetchRequest) Ticket {
	c.loading = true
	c.issued++
	sent := req
	c.lastSent = &sent
	return Ticket{Seq: c.issued, Request: req}
}

// Resolve applies the outcome of the fetch issued as seq and reports whether
// it was applied. A failure is logged and leaves the results untouched.
func (c *Controller) Resolve(seq uint64, listing domain.Listing, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy == LastIssuedWins && seq < c.issued {
		c.logger.Debug("dropping stale listing response",
			slog.Uint64("seq", seq),
			slog.Uint64("newest", c.issued),
		)
		return false
	}

	c.loading = false
	if err != nil {
		c.logger.Error("failed to fetch cars",
			slog.String("operation", "Refresh"),
			slog.Uint64("seq", seq),
			slog.Any("error", err),
		)
		return false
	}

	c.results = domain.ResultSet{Cars: listing.Cars, Message: listing.Message}
	return true
}

// Decide returns what the page should render for the current state
func (c *Controller) Decide() Decision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return decide(c.results, c.loading, c.filters.Limit, c.defaults.PageSize)
}
