package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	if ErrBookingNotFound.Error() != "booking not found" {
		t.Errorf("Expected error message 'booking not found', got '%s'", ErrBookingNotFound.Error())
	}
	if !errors.Is(ErrBookingNotFound, ErrBookingNotFound) {
		t.Error("ErrBookingNotFound should match itself")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestWeekOption_Derived(t *testing.T) {
	tests := []struct {
		weeks         int
		expectedDays  int
		expectedPrice int
	}{
		{1, 5, 35},
		{2, 10, 70},
		{3, 15, 105},
		{4, 20, 140},
	}

	for _, tt := range tests {
		option := WeekOption{
			ID:              tt.weeks,
			Weeks:           tt.weeks,
			PricePerWeek:    DefaultPricePerWeek,
			SessionsPerWeek: DefaultSessionsPerWeek,
		}
		if option.Days() != tt.expectedDays {
			t.Errorf("Weeks %d: expected %d days, got %d", tt.weeks, tt.expectedDays, option.Days())
		}
		if option.Price() != tt.expectedPrice {
			t.Errorf("Weeks %d: expected price %d, got %d", tt.weeks, tt.expectedPrice, option.Price())
		}
	}
}

func TestWeekOption_ZeroValue(t *testing.T) {
	var option WeekOption
	if option.Days() != 0 || option.Price() != 0 {
		t.Errorf("Zero option should have no days and no price, got %d and %d", option.Days(), option.Price())
	}
}
