package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"carhub/internal/domain"
)

// DetailsPager shows a car's full record in ov
type DetailsPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewDetailsPager creates a new details pager
func NewDetailsPager() *DetailsPager {
	return &DetailsPager{}
}

// SetProgram sets the program reference for terminal management
func (p *DetailsPager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show releases the terminal, runs ov over content and restores the UI
func (p *DetailsPager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// carDetails formats every field of a car for the pager
func carDetails(car domain.Car, currentYear int) string {
	var b strings.Builder

	title := car.Title()
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Estimated rent", fmt.Sprintf("$%d/day", domain.RentPerDay(car, currentYear))},
		{"Make", car.Make},
		{"Model", car.Model},
		{"Year", fmt.Sprint(car.Year)},
		{"Class", car.Class},
		{"Transmission", car.TransmissionName()},
		{"Drive", strings.ToUpper(car.Drive)},
		{"Fuel type", car.FuelType},
		{"Cylinders", fmt.Sprint(car.Cylinders)},
		{"Displacement", fmt.Sprintf("%g L", car.Displacement)},
		{"City MPG", fmt.Sprint(car.CityMPG)},
		{"Highway MPG", fmt.Sprint(car.HighwayMPG)},
		{"Combined MPG", fmt.Sprint(car.CombinationMPG)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-14s %s\n", r.label, r.value)
	}

	b.WriteString("\nPress q to return.\n")
	return b.String()
}
