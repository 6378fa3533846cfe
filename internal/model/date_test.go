package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 9, d.Day())

	_, err = ParseDate("09/03/2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 3, 9)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDateJSONNullAndEmpty(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func TestSameMonth(t *testing.T) {
	d := NewDate(2025, 3, 1)
	assert.True(t, d.SameMonth(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameMonth(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameMonth(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), "same month, different year")
}
