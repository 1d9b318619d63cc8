package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"carhub/internal/browse"
	"carhub/internal/catalog"
	"carhub/internal/domain"
)

// printListing runs one fetch through the controller and writes what the page
// would show. A failed fetch is logged by the controller and prints the empty
// state, so it is not an error here.
func printListing(ctx context.Context, w io.Writer, ctrl *browse.Controller, fetcher catalog.Fetcher) error {
	ticket := ctrl.Refresh()
	listing, err := fetcher.Fetch(ctx, ticket.Request)
	ctrl.Resolve(ticket.Seq, listing, err)

	_, werr := io.WriteString(w, renderListing(ctrl.Decide(), time.Now().Year()))
	return werr
}

// renderListing formats a decision as plain text
func renderListing(d browse.Decision, currentYear int) string {
	var b strings.Builder

	if d.ShowEmpty {
		b.WriteString("Oops, no results\n")
		if d.EmptyMessage != "" {
			b.WriteString(d.EmptyMessage)
			b.WriteString("\n")
		}
		return b.String()
	}

	rows := make([][]string, 0, len(d.Cars))
	for _, car := range d.Cars {
		rows = append(rows, []string{
			car.Title(),
			strconv.Itoa(car.Year),
			fmt.Sprintf("$%d", domain.RentPerDay(car, currentYear)),
			car.TransmissionName(),
			strings.ToUpper(car.Drive),
			strconv.Itoa(car.CityMPG),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CAR", "YEAR", "RENT/DAY", "TRANSMISSION", "DRIVE", "CITY MPG").
		Rows(rows...)
	b.WriteString(t.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Page %s", strconv.FormatFloat(d.PageNumber, 'f', -1, 64))
	if !d.IsNext {
		b.WriteString(" (more available, raise --limit)")
	}
	b.WriteString("\n")
	return b.String()
}
