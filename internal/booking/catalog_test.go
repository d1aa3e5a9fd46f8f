package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Len(t, c.Options, 4)
	assert.Equal(t, "Mon, Tue, Thu, Fri, Sat", c.SessionDays)

	prices := []int{35, 70, 105, 140}
	for i, o := range c.Options {
		assert.Equal(t, i+1, o.ID)
		assert.Equal(t, i+1, o.Weeks)
		assert.Equal(t, prices[i], o.Price())
		assert.Equal(t, (i+1)*5, o.Days())
	}

	_, ok := c.Option(5)
	assert.False(t, ok)

	o, ok := c.ForWeeks(3)
	require.True(t, ok)
	assert.Equal(t, 3, o.ID)
	_, ok = c.ForWeeks(0)
	assert.False(t, ok)
}

func TestNewCatalog_Empty(t *testing.T) {
	_, err := NewCatalog(0, 35, 5, "")
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLabels(t *testing.T) {
	c := DefaultCatalog()
	one, _ := c.Option(1)
	two, _ := c.Option(2)

	assert.Equal(t, "1 WEEK", WeeksLabel(one))
	assert.Equal(t, "2 WEEKS", WeeksLabel(two))
	assert.Equal(t, "$35 for 5 days", PriceLabel(one))
	assert.Equal(t, "$70 for 10 days", PriceLabel(two))
	assert.Equal(t, "(2 Weeks X 5 Days) = 10 Days", DetailLabel(two))
	assert.Equal(t, "SELECT A PACKAGE", FooterLabel(nil))
	assert.Equal(t, "$70 FOR 10 DAYS (1 ACTIVITY PER DAY)", FooterLabel(&two))
	assert.Equal(t, "Based on your selection Mon, Tue, Thu, Fri, Sat", SelectionLabel(c.SessionDays))
	assert.Equal(t, "Your program runs from January 18, 2026 to January 31, 2026",
		SummaryLabel("January 18, 2026", "January 31, 2026"))
}

func TestNote(t *testing.T) {
	note := Note(2, "June 18, 2026", "Mon, Tue, Thu, Fri, Sat")
	assert.Contains(t, note, "**NB:**")
	assert.Contains(t, note, "2-week schedule starting on June 18, 2026")
	assert.Contains(t, note, "Mon, Tue, Thu, Fri, and Sat")

	assert.Contains(t, Note(1, "x", "Mon, Wed"), "Mon and Wed")
}
