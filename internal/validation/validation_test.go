package validation

import (
	"testing"

	"hospital-bed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.HospitalInput {
	return models.HospitalInput{
		Name:        "Korle Bu Teaching Hospital",
		Region:      "Greater Accra",
		ICUBeds:     5,
		RegularBeds: 20,
		ContactInfo: "+233 30 266 7812",
		Location:    "Guggisberg Avenue, Accra",
	}
}

func TestValidInputPasses(t *testing.T) {
	input := validInput()
	assert.Empty(t, HospitalInput(&input))
}

func TestOptionalFieldsMayBeEmpty(t *testing.T) {
	input := validInput()
	input.ContactInfo = ""
	input.Location = ""
	assert.Empty(t, HospitalInput(&input))
}

func TestTrimsFreeTextFields(t *testing.T) {
	input := validInput()
	input.Name = "  Korle Bu Teaching Hospital  "
	input.Location = " Accra "

	require.Empty(t, HospitalInput(&input))
	assert.Equal(t, "Korle Bu Teaching Hospital", input.Name)
	assert.Equal(t, "Accra", input.Location)
}

func TestShortNameRejected(t *testing.T) {
	input := validInput()
	input.Name = " ab "

	messages := HospitalInput(&input)
	require.Len(t, messages, 1)
	assert.Equal(t, "Hospital name must be a string of at least 3 characters.", messages[0])
}

func TestUnknownRegionRejected(t *testing.T) {
	input := validInput()
	input.Region = "Atlantis"

	messages := HospitalInput(&input)
	require.Len(t, messages, 1)
	assert.Equal(t, "Invalid or missing region selected.", messages[0])
}

func TestNegativeBedCountsRejected(t *testing.T) {
	input := validInput()
	input.ICUBeds = -1
	input.RegularBeds = -3

	messages := HospitalInput(&input)
	assert.Contains(t, messages, "ICU beds must be a non-negative integer.")
	assert.Contains(t, messages, "Regular beds must be a non-negative integer.")
}

func TestBadContactFormatRejected(t *testing.T) {
	input := validInput()
	input.ContactInfo = "call me maybe"

	messages := HospitalInput(&input)
	require.Len(t, messages, 1)
	assert.Equal(t, "Contact info must be a valid phone number format (digits, spaces, +, -, () only).", messages[0])
}

func TestLongLocationRejected(t *testing.T) {
	input := validInput()
	for len(input.Location) <= 100 {
		input.Location += " road"
	}

	messages := HospitalInput(&input)
	require.Len(t, messages, 1)
	assert.Equal(t, "Location must be a string under 100 characters.", messages[0])
}

func TestAllErrorsReportedTogether(t *testing.T) {
	input := models.HospitalInput{
		Name:        "x",
		Region:      "Nowhere",
		ICUBeds:     -1,
		ContactInfo: "???",
	}

	messages := HospitalInput(&input)
	assert.Len(t, messages, 4)
}

func TestRegionsList(t *testing.T) {
	assert.Len(t, Regions, 16)
	assert.True(t, IsValidRegion("Ashanti"))
	assert.True(t, IsValidRegion("Western North"))
	assert.False(t, IsValidRegion("ashanti"))
	assert.False(t, IsValidRegion(""))
}
