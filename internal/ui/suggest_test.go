package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNames(t *testing.T) {
	names := []string{"gold", "silver", "bronze", "gold-annual"}

	assert.Equal(t, []string{"gold", "gold-annual"}, SuggestNames("gold", names, 3))
	assert.Empty(t, SuggestNames("xyz", names, 3))
	assert.Len(t, SuggestNames("o", names, 2), 2)
}
