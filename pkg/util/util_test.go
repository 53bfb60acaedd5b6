package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, dateOnly, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, dateOnly, err = ParseDate("2024-03-01T10:30:00.5Z")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, 10, d.Hour())

	_, _, err = ParseDate("03/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, _, err = ParseDate(" ")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizeVIN(t *testing.T) {
	assert.Equal(t, "1HGCM82633A004352", NormalizeVIN(" 1hgcm8-2633a004352 "))
	assert.True(t, IsValidVIN("1HGCM82633A004352"))
	assert.False(t, IsValidVIN("1hgcm82633a004352"))
	assert.False(t, IsValidVIN("1HGCM82633A00435"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("sales@dealer.test"))
	assert.False(t, IsEmail("sales@dealer"))
}
