package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/aftercare/internal/config/colors"
)

func TestInit(t *testing.T) {
	scheme := colors.Default()
	Init(*scheme)

	assert.Equal(t, scheme.Accent, Accent)
	assert.Equal(t, scheme.Muted, Muted)
	assert.Equal(t, scheme.CardBackground, CardBg)
	assert.Equal(t, scheme.ErrorBg, ErrorBg)
}
