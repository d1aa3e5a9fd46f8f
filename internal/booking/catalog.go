package booking

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/aftercare/internal/models"
)

// Catalog is the fixed set of week options offered on the booking page.
type Catalog struct {
	Options     []models.WeekOption
	SessionDays string
}

// NewCatalog builds options for 1 through maxWeeks weeks.
func NewCatalog(maxWeeks, pricePerWeek, sessionsPerWeek int, sessionDays string) (Catalog, error) {
	if maxWeeks < 1 {
		return Catalog{}, ErrEmptyCatalog
	}
	options := make([]models.WeekOption, 0, maxWeeks)
	for w := 1; w <= maxWeeks; w++ {
		options = append(options, models.WeekOption{
			ID:              w,
			Weeks:           w,
			PricePerWeek:    pricePerWeek,
			SessionsPerWeek: sessionsPerWeek,
		})
	}
	return Catalog{Options: options, SessionDays: sessionDays}, nil
}

// DefaultCatalog is one to four weeks at $35 per five-session week.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(models.DefaultMaxWeeks, models.DefaultPricePerWeek,
		models.DefaultSessionsPerWeek, models.DefaultSessionDays)
	return c
}

// Option looks up an option by ID.
func (c Catalog) Option(id int) (models.WeekOption, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return models.WeekOption{}, false
}

// ForWeeks looks up the option that lasts weeks weeks.
func (c Catalog) ForWeeks(weeks int) (models.WeekOption, bool) {
	for _, o := range c.Options {
		if o.Weeks == weeks {
			return o, true
		}
	}
	return models.WeekOption{}, false
}

// WeeksLabel is the card title: "1 WEEK", "3 WEEKS".
func WeeksLabel(o models.WeekOption) string {
	if o.Weeks == 1 {
		return "1 WEEK"
	}
	return fmt.Sprintf("%d WEEKS", o.Weeks)
}

// PriceLabel is the card subtitle: "$35 for 5 days".
func PriceLabel(o models.WeekOption) string {
	return fmt.Sprintf("$%d for %d days", o.Price(), o.Days())
}

// DetailLabel explains the day count: "(2 Weeks X 5 Days) = 10 Days".
func DetailLabel(o models.WeekOption) string {
	return fmt.Sprintf("(%d Weeks X %d Days) = %d Days", o.Weeks, o.SessionsPerWeek, o.Days())
}

// FooterLabel is the persistent call to action. A nil option means nothing
// is selected yet.
func FooterLabel(o *models.WeekOption) string {
	if o == nil {
		return "SELECT A PACKAGE"
	}
	return fmt.Sprintf("$%d FOR %d DAYS (1 ACTIVITY PER DAY)", o.Price(), o.Days())
}

// SelectionLabel is the page subtitle listing the session days.
func SelectionLabel(sessionDays string) string {
	return "Based on your selection " + sessionDays
}

// SummaryLabel is the line under the date fields.
func SummaryLabel(start, end string) string {
	return fmt.Sprintf("Your program runs from %s to %s", start, end)
}

// Note is the markdown reminder shown in the date picker.
func Note(weeks int, start, sessionDays string) string {
	return fmt.Sprintf("**NB:** You've chosen a %d-week schedule starting on %s, with sessions on %s. "+
		"We'll automatically set your end date, and you can renew whenever you like. No worries!",
		weeks, start, spokenList(sessionDays))
}

// spokenList turns "Mon, Tue, Sat" into "Mon, Tue, and Sat".
func spokenList(days string) string {
	parts := strings.Split(days, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return strings.Join(parts, " and ")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}
