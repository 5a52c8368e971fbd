package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-04T09:00:00Z"`), &dt))
	require.Equal(t, time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), dt.Date.UTC())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-04"`), &dt))
	require.Equal(t, 4, dt.Date.Day())
}

func TestDateTime_UnmarshalJSON_RejectsNonString(t *testing.T) {
	// Числа и прочие короткие токены не должны ронять разбор паникой
	for _, data := range []string{`5`, `null`, `[]`, `""`, `"not-a-date"`} {
		var dt DateTime
		require.Error(t, json.Unmarshal([]byte(data), &dt), data)
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{Date: time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-03-04"`, string(out))
}

func TestDate_UnmarshalJSON_RejectsNonString(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`7`), &d))
}
