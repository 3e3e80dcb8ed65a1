package edition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEditionsOrdering(t *testing.T) {
	// The catalog's insertion order is fixed; it is the tie-break priority
	// for detection matches and the display order in the dialog.
	assert.Equal(t, []string{
		"Home",
		"Education",
		"Enterprise",
		"Pro for Workstations",
		"Pro Education",
		"Pro",
	}, DefaultEditions().Displays())
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultEditions()

	code, ok := c.Lookup("Pro for Workstations")
	assert.True(t, ok)
	assert.Equal(t, "prows", code)

	// Lookup is exact match, not substring.
	_, ok = c.Lookup("Pro for")
	assert.False(t, ok)

	_, ok = c.Lookup("")
	assert.False(t, ok)
}
