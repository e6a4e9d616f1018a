package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-leave/internal/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"calendar day", `"2026-02-28"`, "2026-02-28", false},
		{"timestamp truncated", `"2026-02-28T23:10:00+07:00"`, "2026-02-28", false},
		{"day first", `"28/02/2026"`, "", true},
		{"number", `20260228`, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d request.Date
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())

			out, err := json.Marshal(d)
			require.NoError(t, err)
			assert.Equal(t, `"`+tc.want+`"`, string(out))
		})
	}
}

func TestDate_NullLeavesPointerNil(t *testing.T) {
	var body request.CreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date_from":null}`), &body))
	assert.Nil(t, body.DateFrom)
}

func TestDate_Scan(t *testing.T) {
	var d request.Date

	require.NoError(t, d.Scan(time.Date(2026, 1, 5, 17, 30, 0, 0, time.FixedZone("WIB", 7*3600))))
	assert.Equal(t, "2026-01-05", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-06")))
	assert.Equal(t, "2026-01-06", d.String())

	assert.Error(t, d.Scan(42))

	v, err := request.NewDate(2026, time.December, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", v)
}
