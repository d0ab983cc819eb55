package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedpay/ussd-analytics/internal/models"
)

func TestProjectAgeGroups(t *testing.T) {
	bands := ProjectAgeGroups(1000)
	require.Len(t, bands, 5)

	var pctSum float64
	byLabel := map[string]SplitBand{}
	for _, b := range bands {
		pctSum += b.Percentage
		byLabel[b.Label] = b
	}
	assert.InDelta(t, 100.0, pctSum, 1e-9)
	assert.Equal(t, int64(380), byLabel["26-35"].Users)
	assert.Equal(t, int64(320), byLabel["18-25"].Users)
	assert.Equal(t, int64(20), byLabel["56+"].Users)
}

func TestProjectGenders(t *testing.T) {
	bands := ProjectGenders(500)
	require.Len(t, bands, 2)
	assert.Equal(t, int64(290), bands[0].Users) // Male 58%
	assert.Equal(t, int64(210), bands[1].Users) // Female 42%
}

func TestProjectionsSumToHundred(t *testing.T) {
	for name, bands := range map[string][]SplitBand{
		"urbanRural": ProjectUrbanRural(1),
		"devices":    ProjectDevices(1),
	} {
		var sum float64
		for _, b := range bands {
			sum += b.Percentage
		}
		assert.InDelta(t, 100.0, sum, 1e-9, name)
	}
}

func TestProjectZeroUsers(t *testing.T) {
	for _, b := range ProjectAgeGroups(0) {
		assert.Zero(t, b.Users)
	}
}

func TestGroupProvinces(t *testing.T) {
	rows := []models.KeyCount{
		{Key: "Lusaka", Count: 40},
		{Key: "Copperbelt", Count: 30},
		{Key: "Southern", Count: 20},
		{Key: "Eastern", Count: 10},
	}
	grouped := GroupProvinces(rows, []string{"Lusaka", "Copperbelt", "Southern"})

	require.Len(t, grouped, 4)
	assert.Equal(t, ProvinceUsers{Province: "Lusaka", Users: 40}, grouped[0])
	assert.Equal(t, ProvinceUsers{Province: "Copperbelt", Users: 30}, grouped[1])
	assert.Equal(t, ProvinceUsers{Province: "Southern", Users: 20}, grouped[2])
	assert.Equal(t, ProvinceUsers{Province: OtherProvincesLabel, Users: 10}, grouped[3])
}

func TestGroupProvincesSumsAndSorts(t *testing.T) {
	rows := []models.KeyCount{
		{Key: "Lusaka", Count: 5},
		{Key: "Northern", Count: 30},
		{Key: "Western", Count: 25},
	}
	grouped := GroupProvinces(rows, []string{"Lusaka", "Copperbelt", "Southern"})

	require.Len(t, grouped, 2)
	// Other Provinces (55) outranks Lusaka (5) after sorting.
	assert.Equal(t, ProvinceUsers{Province: OtherProvincesLabel, Users: 55}, grouped[0])
	assert.Equal(t, ProvinceUsers{Province: "Lusaka", Users: 5}, grouped[1])
}

func TestGroupProvincesNoOther(t *testing.T) {
	rows := []models.KeyCount{{Key: "Lusaka", Count: 9}}
	grouped := GroupProvinces(rows, DefaultTopProvinces)
	require.Len(t, grouped, 1)
	assert.Equal(t, "Lusaka", grouped[0].Province)
}
