package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toy-sales-report/models"
)

const sampleJSON = `{
  "items": [
    {
      "title": "Tie Fighter",
      "full-price": "22.99",
      "brand": "LEGO",
      "stock": 55,
      "purchases": [
        {"price": 22.99, "date": "2015-08-01T00:00:00Z"},
        {"price": "15.00"}
      ]
    },
    {
      "title": "Nano Block Empire State Building",
      "full-price": 49.99,
      "brand": "Nano Blocks",
      "stock": 12,
      "purchases": []
    }
  ]
}`

const sampleYAML = `items:
  - title: Tie Fighter
    full-price: "22.99"
    brand: LEGO
    stock: 55
    purchases:
      - price: 22.99
      - price: "15.00"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSourceJSON(t *testing.T) {
	src := NewFileSource(writeFile(t, "products.json", sampleJSON))
	defer src.Close()

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Items, 2)

	first := raw.Items[0]
	require.NotNil(t, first.Title)
	assert.Equal(t, "Tie Fighter", *first.Title)
	require.NotNil(t, first.FullPrice)
	assert.Equal(t, "22.99", first.FullPrice.StringFixed(2))
	require.Len(t, first.Purchases, 2)
	assert.Equal(t, "15.00", first.Purchases[1].Price.StringFixed(2))
	assert.Equal(t, "2015-08-01T00:00:00Z", first.Purchases[0].Date)

	second := raw.Items[1]
	assert.Equal(t, "49.99", second.FullPrice.StringFixed(2))
	assert.NotNil(t, second.Purchases)
	assert.Empty(t, second.Purchases)
}

func TestFileSourceYAML(t *testing.T) {
	src := NewFileSource(writeFile(t, "products.yaml", sampleYAML))

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Items, 1)
	assert.Equal(t, "LEGO", *raw.Items[0].Brand)
	assert.Equal(t, 55, *raw.Items[0].Stock)
	assert.Equal(t, "22.99", raw.Items[0].FullPrice.StringFixed(2))
	assert.Equal(t, "15.00", raw.Items[0].Purchases[1].Price.StringFixed(2))
}

func TestFileSourceMissingFieldsStayNil(t *testing.T) {
	src := NewFileSource(writeFile(t, "products.json", `{"items":[{"title":"Kite"}]}`))

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Items, 1)
	assert.Nil(t, raw.Items[0].Brand)
	assert.Nil(t, raw.Items[0].FullPrice)
	assert.Nil(t, raw.Items[0].Stock)
	assert.Nil(t, raw.Items[0].Purchases)
}

func TestFileSourceMalformed(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"non numeric price", "p.json", `{"items":[{"title":"Kite","full-price":"cheap"}]}`},
		{"stock as text", "p.json", `{"items":[{"title":"Kite","stock":"many"}]}`},
		{"truncated json", "p.json", `{"items":[`},
		{"bad yaml price", "p.yml", "items:\n  - full-price: cheap\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(writeFile(t, tt.file, tt.content)).Load(context.Background())
			assert.ErrorIs(t, err, models.ErrMalformedInput)
		})
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrMalformedInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
