package catalog

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 12.5, parsePrice(sql.NullString{String: "12.50", Valid: true}, nil, 1))
	assert.Equal(t, 0.0, parsePrice(sql.NullString{}, nil, 1))
	assert.Equal(t, 0.0, parsePrice(sql.NullString{String: "  ", Valid: true}, nil, 1))
	// a garbled DECIMAL degrades to 0 instead of failing the row
	assert.Equal(t, 0.0, parsePrice(sql.NullString{String: "not-a-price", Valid: true}, nil, 1))
}

func TestDecodeCreatedAt(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01T12:00:00Z", decodeCreatedAt(ts))
	assert.Equal(t, "2026-03-01 12:00:00", decodeCreatedAt("2026-03-01 12:00:00"))
	assert.Equal(t, "2026-03-01 12:00:00", decodeCreatedAt([]byte("2026-03-01 12:00:00")))
	assert.Equal(t, "", decodeCreatedAt(nil))
	assert.Equal(t, "", decodeCreatedAt(42))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "10.00", formatPrice(10))
	assert.Equal(t, "9.99", formatPrice(9.99))
	assert.Equal(t, "0.00", formatPrice(0))
}

func TestSQLNullHelpers(t *testing.T) {
	assert.Nil(t, sqlNullID(0))
	assert.Equal(t, int64(3), sqlNullID(3))
	assert.Nil(t, sqlNullString(""))
	assert.Nil(t, sqlNullString("   "))
	assert.Equal(t, "x", sqlNullString("x"))
}
