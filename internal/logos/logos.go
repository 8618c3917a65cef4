package logos

import "strings"

const espnLogoBase = "https://a.espncdn.com/i/teamlogos/nhl/500/"

// ESPN uses a handful of codes that differ from the NHL abbreviations.
var espnCorrections = map[string]string{
	"SJS": "sj",
	"LAK": "la",
	"TBL": "tb",
	"NJD": "nj",
	"UTA": "utah",
	"VGK": "vgs",
}

// URL resolves the ESPN CDN PNG for a team abbreviation.
func URL(abbrev string) string {
	code := strings.ToUpper(abbrev)
	clean, ok := espnCorrections[code]
	if !ok {
		clean = strings.ToLower(code)
	}
	return espnLogoBase + clean + ".png"
}
