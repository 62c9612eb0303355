package pdf_test

import (
	"bytes"
	"testing"

	"tableside/internal/adapters/out/pdf"
	"tableside/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeGenerator_Generate(t *testing.T) {
	newInfo := func(t *testing.T, tables int, customText string) *restaurant.Info {
		t.Helper()
		info, err := restaurant.NewInfo("12345", "Sample Restaurant", tables, "#ffffff", "#000000", customText)
		require.NoError(t, err)
		return info
	}

	t.Run("should produce a pdf document", func(t *testing.T) {
		g := pdf.NewQRCodeGenerator()

		doc, err := g.Generate(newInfo(t, 3, "Scan to order"))

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
		assert.Contains(t, string(doc), "/Count 3")
	})

	t.Run("should grow with the table count", func(t *testing.T) {
		g := pdf.NewQRCodeGenerator()

		small, err := g.Generate(newInfo(t, 1, ""))
		require.NoError(t, err)
		large, err := g.Generate(newInfo(t, 10, ""))
		require.NoError(t, err)

		assert.Greater(t, len(large), len(small))
	})

	t.Run("should reject an unconstructed profile", func(t *testing.T) {
		g := pdf.NewQRCodeGenerator()

		_, err := g.Generate(nil)

		require.Error(t, err)
	})
}
