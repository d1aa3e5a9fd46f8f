package config

import (
	"time"

	"github.com/thenoetrevino/aftercare/internal/models"
	"github.com/thenoetrevino/aftercare/internal/picker"
)

// PickerConfig tunes the wheel date picker. Heights are in the picker's
// logical units; the terminal draws one line per item.
type PickerConfig struct {
	ItemHeight  float64 `yaml:"item_height" toml:"item_height"`
	VisibleRows int     `yaml:"visible_rows" toml:"visible_rows"`
	DebounceMS  int     `yaml:"debounce_ms" toml:"debounce_ms"`
	OpenDelayMS int     `yaml:"open_delay_ms" toml:"open_delay_ms"`
	WheelStep   float64 `yaml:"wheel_step" toml:"wheel_step"` // offset per wheel notch
	YearMin     int     `yaml:"year_min" toml:"year_min"`
	YearMax     int     `yaml:"year_max" toml:"year_max"`
}

// DefaultPickerConfig matches the picker package defaults
func DefaultPickerConfig() PickerConfig {
	return PickerConfig{
		ItemHeight:  picker.DefaultItemHeight,
		VisibleRows: picker.DefaultViewportHeight / picker.DefaultItemHeight,
		DebounceMS:  int(picker.DefaultDebounce / time.Millisecond),
		OpenDelayMS: int(picker.DefaultOpenDelay / time.Millisecond),
		WheelStep:   picker.DefaultItemHeight,
		YearMin:     picker.DefaultYearMin,
		YearMax:     picker.DefaultYearMax,
	}
}

func (p *PickerConfig) applyDefaults() {
	d := DefaultPickerConfig()
	if p.ItemHeight <= 0 {
		p.ItemHeight = d.ItemHeight
	}
	if p.VisibleRows == 0 {
		p.VisibleRows = d.VisibleRows
	}
	if p.DebounceMS <= 0 {
		p.DebounceMS = d.DebounceMS
	}
	if p.OpenDelayMS <= 0 {
		p.OpenDelayMS = d.OpenDelayMS
	}
	if p.WheelStep <= 0 {
		p.WheelStep = p.ItemHeight
	}
	if p.YearMin == 0 {
		p.YearMin = d.YearMin
	}
	if p.YearMax == 0 {
		p.YearMax = d.YearMax
	}
}

// Validate reports settings the picker cannot work with
func (p PickerConfig) Validate() error {
	if p.YearMin > p.YearMax {
		return ErrInvalidYearRange
	}
	if p.VisibleRows < 1 || p.VisibleRows%2 == 0 {
		return ErrInvalidVisibleRows
	}
	return nil
}

// ViewportHeight is the height of the visible window in logical units
func (p PickerConfig) ViewportHeight() float64 {
	return float64(p.VisibleRows) * p.ItemHeight
}

func (p PickerConfig) Debounce() time.Duration {
	return time.Duration(p.DebounceMS) * time.Millisecond
}

func (p PickerConfig) OpenDelay() time.Duration {
	return time.Duration(p.OpenDelayMS) * time.Millisecond
}

// Options turns the configuration into picker options
func (p PickerConfig) Options() []picker.Option {
	return []picker.Option{
		picker.WithGeometry(p.ItemHeight, p.ViewportHeight()),
		picker.WithDebounce(p.Debounce()),
		picker.WithOpenDelay(p.OpenDelay()),
		picker.WithYearRange(p.YearMin, p.YearMax),
	}
}

// ProgramConfig describes the week options on sale
type ProgramConfig struct {
	MaxWeeks        int    `yaml:"max_weeks" toml:"max_weeks"`
	PricePerWeek    int    `yaml:"price_per_week" toml:"price_per_week"`
	SessionsPerWeek int    `yaml:"sessions_per_week" toml:"sessions_per_week"`
	SessionDays     string `yaml:"session_days" toml:"session_days"`
}

// DefaultProgramConfig is four weekly options at $35 for five sessions
func DefaultProgramConfig() ProgramConfig {
	return ProgramConfig{
		MaxWeeks:        models.DefaultMaxWeeks,
		PricePerWeek:    models.DefaultPricePerWeek,
		SessionsPerWeek: models.DefaultSessionsPerWeek,
		SessionDays:     models.DefaultSessionDays,
	}
}

func (p *ProgramConfig) applyDefaults() {
	d := DefaultProgramConfig()
	if p.MaxWeeks == 0 {
		p.MaxWeeks = d.MaxWeeks
	}
	if p.PricePerWeek == 0 {
		p.PricePerWeek = d.PricePerWeek
	}
	if p.SessionsPerWeek == 0 {
		p.SessionsPerWeek = d.SessionsPerWeek
	}
	if p.SessionDays == "" {
		p.SessionDays = d.SessionDays
	}
}

// Validate reports negative program values
func (p ProgramConfig) Validate() error {
	if p.MaxWeeks < 1 || p.PricePerWeek < 0 || p.SessionsPerWeek < 1 {
		return ErrInvalidProgram
	}
	return nil
}
