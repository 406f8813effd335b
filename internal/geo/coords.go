package geo

import "strings"

// hospitalCoords maps known hospital names to approximate coordinates in
// Ghana. Keys are lowercase; lookups normalize the same way.
var hospitalCoords = map[string]Point{
	// Greater Accra Region
	"korle bu teaching hospital":               {Lat: 5.5450, Lng: -0.2250},
	"37 military hospital":                     {Lat: 5.5898, Lng: -0.1818},
	"greater accra regional hospital (ridge)":  {Lat: 5.5616, Lng: -0.1987},
	"tema general hospital":                    {Lat: 5.6667, Lng: 0.0167},
	"lekma hospital":                           {Lat: 5.6022, Lng: -0.1169},
	"ga east municipal hospital":               {Lat: 5.6766, Lng: -0.2315},
	"police hospital":                          {Lat: 5.5801, Lng: -0.1916},
	"university of ghana hospital":             {Lat: 5.6508, Lng: -0.1871},

	// Ashanti Region
	"komfo anokye teaching hospital": {Lat: 6.6925, Lng: -1.6307},
	"manhyia government hospital":    {Lat: 6.7102, Lng: -1.6163},
	"suntreso government hospital":   {Lat: 6.6898, Lng: -1.6435},
	"tafo government hospital":       {Lat: 6.7328, Lng: -1.6095},
	"kumasi south hospital":          {Lat: 6.6623, Lng: -1.6131},
	"agogo presbyterian hospital":    {Lat: 6.7914, Lng: -1.0716},
	"tepa government hospital":       {Lat: 7.0119, Lng: -2.1866},
	"bekwai government hospital":     {Lat: 6.4522, Lng: -1.5791},
	"obuasi government hospital":     {Lat: 6.1989, Lng: -1.6669},
	"mampong government hospital":    {Lat: 7.0603, Lng: -1.4013},

	// Western Region
	"effia nkwanta regional hospital": {Lat: 4.9085, Lng: -1.7744},
	"takoradi hospital":               {Lat: 4.8931, Lng: -1.7583},
	"tarkwa municipal hospital":       {Lat: 5.3021, Lng: -1.9892},
	"axim government hospital":        {Lat: 4.8697, Lng: -2.2415},

	// Central Region
	"cape coast teaching hospital":             {Lat: 5.1054, Lng: -1.2882},
	"winneba government hospital":              {Lat: 5.3567, Lng: -0.6231},
	"kasoa polyclinic":                         {Lat: 5.5348, Lng: -0.4287},
	"assin foso st. francis xavier hospital":   {Lat: 5.7000, Lng: -1.2833},
	"dunkwa-on-offin government hospital":      {Lat: 5.9675, Lng: -1.7788},
	"swedru government hospital":               {Lat: 5.5372, Lng: -0.7002},

	// Eastern Region
	"koforidua regional hospital":       {Lat: 6.0950, Lng: -0.2630},
	"tetteh quarshie memorial hospital": {Lat: 6.2000, Lng: -0.0500},
	"atua government hospital":          {Lat: 6.2333, Lng: 0.0000},
	"suhum government hospital":         {Lat: 5.9333, Lng: -0.4500},
	"nkawkaw holy family hospital":      {Lat: 6.5500, Lng: -0.7667},

	// Volta Region
	"ho teaching hospital":      {Lat: 6.6116, Lng: 0.4728},
	"ho municipal hospital":     {Lat: 6.6020, Lng: 0.4670},
	"keta municipal hospital":   {Lat: 5.9221, Lng: 0.9922},
	"hohoe municipal hospital":  {Lat: 7.1519, Lng: 0.4779},

	// Oti Region
	"worawora government hospital":  {Lat: 7.4996, Lng: 0.3155},
	"krachi west district hospital": {Lat: 7.8016, Lng: -0.0560},

	// Bono Region
	"sunyani regional hospital":    {Lat: 7.3292, Lng: -2.3168},
	"wenchi methodist hospital":    {Lat: 7.7428, Lng: -2.1027},
	"berekum holy family hospital": {Lat: 7.4528, Lng: -2.5833},
	"dormaa presbyterian hospital": {Lat: 7.2801, Lng: -2.8767},
	"sampa government hospital":    {Lat: 8.1133, Lng: -2.7001},

	// Ahafo Region
	"goaso government hospital":                {Lat: 6.8045, Lng: -2.5209},
	"st. elizabeth hospital":                   {Lat: 6.9933, Lng: -2.3486}, // Hwidiem
	"kenyasi government hospital":              {Lat: 7.0898, Lng: -2.3025},
	"st. john of god hospital, duayaw nkwanta": {Lat: 7.1833, Lng: -2.0667},

	// Bono East Region
	"techiman holy family hospital":   {Lat: 7.5856, Lng: -1.9317},
	"kintampo municipal hospital":     {Lat: 8.0556, Lng: -1.7335},
	"nkoranza st. theresa's hospital": {Lat: 7.5739, Lng: -1.7011},
	"yeji mathias catholic hospital":  {Lat: 8.2323, Lng: -0.9922},
	"atebubu government hospital":     {Lat: 7.7554, Lng: -0.9882},

	// Northern Region
	"tamale teaching hospital":  {Lat: 9.4146, Lng: -0.8624},
	"tamale central hospital":   {Lat: 9.4035, Lng: -0.8532},
	"tamale west hospital":      {Lat: 9.4211, Lng: -0.8755},
	"yendi municipal hospital":  {Lat: 9.4449, Lng: -0.0069},

	// Savannah Region
	"damongo hospital":           {Lat: 9.0833, Lng: -1.8167},
	"salaga government hospital": {Lat: 8.5528, Lng: -0.5201},

	// North East Region
	"walewale municipal hospital":       {Lat: 10.3582, Lng: -0.8037},
	"baptist medical centre, nalerigu":  {Lat: 10.5167, Lng: -0.3667},

	// Upper East Region
	"bolgatanga regional hospital":    {Lat: 10.7850, Lng: -0.8528},
	"bawku presbyterian hospital":     {Lat: 11.0619, Lng: -0.2443},
	"war memorial hospital, navrongo": {Lat: 10.8925, Lng: -1.0913},

	// Upper West Region
	"wa regional hospital":          {Lat: 10.0594, Lng: -2.5085},
	"jirapa st. joseph's hospital":  {Lat: 10.5283, Lng: -2.6936},
	"nandom hospital":               {Lat: 10.8600, Lng: -2.7600},

	// Western North
	"sefwi wiawso government hospital": {Lat: 6.2167, Lng: -2.4833},
	"bibiani government hospital":      {Lat: 6.4673, Lng: -2.3204},
}

// HospitalCoords resolves a hospital name to coordinates. The name is
// lowercased and trimmed before lookup; no further normalization is applied.
// The second return value is false for hospitals not in the table.
func HospitalCoords(name string) (Point, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Point{}, false
	}
	point, ok := hospitalCoords[key]
	return point, ok
}
