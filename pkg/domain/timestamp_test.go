package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"aggregator/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339 with zone",
			in:   `"2025-03-01T10:30:00Z"`,
			want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset is normalized to UTC",
			in:   `"2025-03-01T12:30:00+02:00"`,
			want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "zone-less value is read as UTC",
			in:   `"2025-03-01T10:30:00"`,
			want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "zone-less value with fraction",
			in:   `"2025-03-01T10:30:00.1234567"`,
			want: time.Date(2025, 3, 1, 10, 30, 0, 123456700, time.UTC),
		},
		{
			name: "null keeps zero value",
			in:   `null`,
			want: time.Time{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts domain.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			require.True(t, tc.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	var ts domain.Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestTimestamp_MarshalIsUTC(t *testing.T) {
	loc := time.FixedZone("plus2", 2*60*60)
	ts := domain.Timestamp{Time: time.Date(2025, 3, 1, 12, 30, 0, 0, loc)}

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	require.JSONEq(t, `"2025-03-01T10:30:00Z"`, string(b))
}
