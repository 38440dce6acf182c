package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayJSON(t *testing.T) {
	t.Run("marshals as HH:MM", func(t *testing.T) {
		data, err := json.Marshal(NewTimeOfDay(8, 5))
		require.NoError(t, err)
		assert.Equal(t, `"08:05"`, string(data))
	})

	t.Run("unmarshals HH:MM", func(t *testing.T) {
		var td TimeOfDay
		require.NoError(t, json.Unmarshal([]byte(`"20:30"`), &td))
		assert.Equal(t, 20, td.Hour())
		assert.Equal(t, 30, td.Minute())
	})

	t.Run("unmarshals HH:MM:SS", func(t *testing.T) {
		var td TimeOfDay
		require.NoError(t, json.Unmarshal([]byte(`"09:15:30"`), &td))
		assert.Equal(t, "09:15", td.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var td TimeOfDay
		assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &td))
	})

	t.Run("round trip", func(t *testing.T) {
		original := NewTimeOfDay(13, 45)
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded TimeOfDay
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original.String(), decoded.String())
	})
}

func TestTimeOfDaySQL(t *testing.T) {
	t.Run("value uses HH:MM:SS", func(t *testing.T) {
		v, err := NewTimeOfDay(8, 0).Value()
		require.NoError(t, err)
		assert.Equal(t, "08:00:00", v)
	})

	t.Run("scans string", func(t *testing.T) {
		var td TimeOfDay
		require.NoError(t, td.Scan("17:30:00"))
		assert.Equal(t, "17:30", td.String())
	})

	t.Run("scans time.Time", func(t *testing.T) {
		var td TimeOfDay
		require.NoError(t, td.Scan(time.Date(2024, 6, 1, 11, 20, 0, 0, time.UTC)))
		assert.Equal(t, "11:20", td.String())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var td TimeOfDay
		assert.Error(t, td.Scan(42))
	})
}
