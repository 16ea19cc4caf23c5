package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "toronto", Normalize("  Toronto "))
	assert.Equal(t, "north york", Normalize("NORTH YORK"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizeMessage(t *testing.T) {
	t.Run("collapses internal whitespace", func(t *testing.T) {
		assert.Equal(t, "evacuate now", NormalizeMessage("Evacuate\n\t  now"))
	})

	t.Run("trims and lower-cases", func(t *testing.T) {
		assert.Equal(t, "stay indoors", NormalizeMessage("  Stay Indoors  "))
	})

	t.Run("reformatted copies compare equal", func(t *testing.T) {
		a := NormalizeMessage("Wildfire approaching.\nSeek shelter.")
		b := NormalizeMessage("wildfire approaching. seek   shelter.")
		assert.Equal(t, a, b)
	})
}

func TestNormalizeRadius(t *testing.T) {
	t.Run("digits pass through trimmed", func(t *testing.T) {
		assert.Equal(t, "25", NormalizeRadius(" 25 "))
		assert.Equal(t, "0", NormalizeRadius("0"))
	})

	t.Run("anything else becomes the sentinel", func(t *testing.T) {
		assert.Equal(t, "N/A", NormalizeRadius(""))
		assert.Equal(t, "N/A", NormalizeRadius("ten"))
		assert.Equal(t, "N/A", NormalizeRadius("10.5"))
		assert.Equal(t, "N/A", NormalizeRadius("-5"))
	})
}

func TestResolveAlias(t *testing.T) {
	t.Run("known abbreviations resolve case-insensitively", func(t *testing.T) {
		assert.Equal(t, "PRINCE EDWARD ISLAND", ResolveAlias("pei"))
		assert.Equal(t, "NORTHWEST TERRITORIES", ResolveAlias(" NWT "))
		assert.Equal(t, "NEWFOUNDLAND AND LABRADOR", ResolveAlias("nfld"))
		assert.Equal(t, "NEWFOUNDLAND AND LABRADOR", ResolveAlias("NL"))
	})

	t.Run("non-aliases come back upper-cased", func(t *testing.T) {
		assert.Equal(t, "BC", ResolveAlias("bc"))
		assert.Equal(t, "BRITISH COLUMBIA", ResolveAlias("British Columbia"))
	})
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "British Columbia", TitleCase("BRITISH COLUMBIA"))
	assert.Equal(t, "Toronto", TitleCase("toronto"))
}
