package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHospitalCoordsLookup(t *testing.T) {
	point, ok := HospitalCoords("Korle Bu Teaching Hospital")
	assert.True(t, ok)
	assert.InDelta(t, 5.5450, point.Lat, 0.0001)
	assert.InDelta(t, -0.2250, point.Lng, 0.0001)
}

func TestHospitalCoordsNormalizesCaseAndSpace(t *testing.T) {
	upper, ok := HospitalCoords("  KORLE BU TEACHING HOSPITAL  ")
	assert.True(t, ok)

	lower, ok2 := HospitalCoords("korle bu teaching hospital")
	assert.True(t, ok2)
	assert.Equal(t, lower, upper)
}

func TestHospitalCoordsUnknown(t *testing.T) {
	_, ok := HospitalCoords("Clinic Nobody Heard Of")
	assert.False(t, ok)

	_, ok = HospitalCoords("")
	assert.False(t, ok)
}
