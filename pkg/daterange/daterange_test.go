package daterange

import (
	"testing"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		expectErr bool
		expected  Range
	}{
		{
			name:  "Plain dates",
			start: "2020-08-10",
			end:   "2020-08-20",
			expected: Range{
				Start: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 8, 20, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "Timestamps with offset are normalised to UTC",
			start: "2020-08-10T12:00:00+03:00",
			end:   "2020-08-10T12:00:00Z",
			expected: Range{
				Start: time.Date(2020, 8, 10, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 8, 10, 12, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "Empty window is allowed",
			start: "2020-08-10",
			end:   "2020-08-10",
			expected: Range{
				Start: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{name: "Inverted", start: "2020-08-20", end: "2020-08-10", expectErr: true},
		{name: "Malformed start", start: "yesterday", end: "2020-08-10", expectErr: true},
		{name: "Missing end", start: "2020-08-10", end: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.start, tt.end)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Start.Equal(r.Start))
			assert.True(t, tt.expected.End.Equal(r.End))
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r, err := Parse("2020-08-10", "2020-08-20")
	require.NoError(t, err)

	assert.True(t, r.Contains(r.Start), "start is included")
	assert.False(t, r.Contains(r.End), "end is excluded")
	assert.True(t, r.Contains(r.End.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(r.Start.Add(-time.Nanosecond)))
}

func TestRange_Key(t *testing.T) {
	a, _ := Parse("2020-08-10", "2020-08-20")
	b, _ := Parse("2020-08-10T03:00:00+03:00", "2020-08-20T00:00:00Z")
	assert.Equal(t, a.Key(), b.Key())
}
