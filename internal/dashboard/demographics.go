package dashboard

import (
	"math"
	"sort"

	"github.com/zedpay/ussd-analytics/internal/models"
)

// The age, gender, urban/rural and device splits are fixed estimates, not
// measured data: the session schema carries no demographic fields. Each
// split is applied multiplicatively to the real unique-user total so the
// projected counts track actual usage. Confirmed with product as a
// documented approximation.

// SplitBand is one band of a fixed percentage split projected onto a
// real total.
type SplitBand struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
	Users      int64   `json:"users"`
}

var (
	ageSplit = []struct {
		label string
		pct   float64
	}{
		{"18-25", 32},
		{"26-35", 38},
		{"36-45", 22},
		{"46-55", 6},
		{"56+", 2},
	}

	genderSplit = []struct {
		label string
		pct   float64
	}{
		{"Male", 58},
		{"Female", 42},
	}

	urbanRuralSplit = []struct {
		label string
		pct   float64
	}{
		{"Urban", 62},
		{"Rural", 38},
	}

	deviceSplit = []struct {
		label string
		pct   float64
	}{
		{"Basic Phone", 48},
		{"Feature Phone", 34},
		{"Smartphone", 18},
	}
)

// ProjectAgeGroups applies the fixed age split to totalUsers.
func ProjectAgeGroups(totalUsers int64) []SplitBand {
	return project(totalUsers, ageSplit)
}

// ProjectGenders applies the fixed gender split to totalUsers.
func ProjectGenders(totalUsers int64) []SplitBand {
	return project(totalUsers, genderSplit)
}

// ProjectUrbanRural applies the fixed urban/rural split to totalUsers.
func ProjectUrbanRural(totalUsers int64) []SplitBand {
	return project(totalUsers, urbanRuralSplit)
}

// ProjectDevices applies the fixed device split to totalUsers.
func ProjectDevices(totalUsers int64) []SplitBand {
	return project(totalUsers, deviceSplit)
}

func project(totalUsers int64, split []struct {
	label string
	pct   float64
}) []SplitBand {
	bands := make([]SplitBand, 0, len(split))
	for _, s := range split {
		bands = append(bands, SplitBand{
			Label:      s.label,
			Percentage: s.pct,
			Users:      int64(math.Round(float64(totalUsers) * s.pct / 100)),
		})
	}
	return bands
}

// DefaultTopProvinces are reported individually; everything else folds
// into "Other Provinces".
var DefaultTopProvinces = []string{"Lusaka", "Copperbelt", "Southern"}

// OtherProvincesLabel names the synthetic catch-all entry.
const OtherProvincesLabel = "Other Provinces"

// ProvinceUsers is one entry of the province distribution payload.
type ProvinceUsers struct {
	Province string `json:"province"`
	Users    int64  `json:"users"`
}

// GroupProvinces keeps allow-listed provinces as individual entries, sums
// the rest into "Other Provinces" and sorts the result descending by
// user count.
func GroupProvinces(rows []models.KeyCount, allowList []string) []ProvinceUsers {
	allowed := make(map[string]bool, len(allowList))
	for _, p := range allowList {
		allowed[p] = true
	}

	var grouped []ProvinceUsers
	var other int64
	var hasOther bool
	for _, row := range rows {
		if allowed[row.Key] {
			grouped = append(grouped, ProvinceUsers{Province: row.Key, Users: row.Count})
			continue
		}
		other += row.Count
		hasOther = true
	}
	if hasOther {
		grouped = append(grouped, ProvinceUsers{Province: OtherProvincesLabel, Users: other})
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Users > grouped[j].Users
	})
	return grouped
}
