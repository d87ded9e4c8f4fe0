package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"garbage", "yesterday", nil},
		{"nano", "2024-05-01T10:20:30.123456789Z", ptr(time.Date(2024, 5, 1, 10, 20, 30, 123456789, time.UTC))},
		{"seconds", "2024-05-01T10:20:30Z", ptr(time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC))},
		{"offset", "2024-05-01T12:20:30+02:00", ptr(time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC))},
		{"date", "2024-05-01", ptr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCursor(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %s got %s", tt.want, got)
		})
	}
}

func TestEncodeCursorRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 20, 30, 123456000, time.FixedZone("x", 3600))
	raw := EncodeCursor(ts)
	assert.Equal(t, "2024-05-01T09:20:30.123456Z", raw)

	parsed := ParseCursor(raw)
	require.NotNil(t, parsed)
	assert.True(t, ts.Equal(*parsed))
}

func TestTrim(t *testing.T) {
	rows := []int{1, 2, 3, 4}

	kept, more := Trim(rows, 3)
	assert.Equal(t, []int{1, 2, 3}, kept)
	assert.True(t, more)

	kept, more = Trim(rows, 4)
	assert.Equal(t, rows, kept)
	assert.False(t, more)

	kept, more = Trim([]int{}, 10)
	assert.Empty(t, kept)
	assert.False(t, more)
}

func ptr(t time.Time) *time.Time { return &t }
