// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/booking"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseWeeks extracts a positive week count
func (p *FlagParser) ParseWeeks(flagName string) (int, error) {
	weeks, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if weeks < 1 {
		return 0, fmt.Errorf("%s=%d: %w", flagName, weeks, booking.ErrInvalidWeeks)
	}
	return weeks, nil
}

// ParseStart extracts a start date in any form booking.ParseStart accepts
func (p *FlagParser) ParseStart(flagName string) (time.Time, error) {
	value, err := p.ParseString(flagName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", booking.ErrInvalidDate, err)
	}
	return booking.ParseStart(value)
}

// ParseLimit extracts a positive list limit
func (p *FlagParser) ParseLimit(flagName string) (int, error) {
	limit, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if limit <= 0 {
		return 0, fmt.Errorf("%s=%d: %w", flagName, limit, booking.ErrInvalidLimit)
	}
	return limit, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
