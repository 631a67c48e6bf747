package types

import "strings"

// DefaultTimezone is returned whenever an address cannot be resolved
const DefaultTimezone = "UTC"

// usStateTimezones maps US state and territory codes to the zone most of the
// state observes. Split states use the zone of their population center.
var usStateTimezones = map[string]string{
	"AL": "America/Chicago",
	"AK": "America/Anchorage",
	"AZ": "America/Phoenix",
	"AR": "America/Chicago",
	"CA": "America/Los_Angeles",
	"CO": "America/Denver",
	"CT": "America/New_York",
	"DE": "America/New_York",
	"DC": "America/New_York",
	"FL": "America/New_York",
	"GA": "America/New_York",
	"HI": "Pacific/Honolulu",
	"ID": "America/Boise",
	"IL": "America/Chicago",
	"IN": "America/Indiana/Indianapolis",
	"IA": "America/Chicago",
	"KS": "America/Chicago",
	"KY": "America/New_York",
	"LA": "America/Chicago",
	"ME": "America/New_York",
	"MD": "America/New_York",
	"MA": "America/New_York",
	"MI": "America/Detroit",
	"MN": "America/Chicago",
	"MS": "America/Chicago",
	"MO": "America/Chicago",
	"MT": "America/Denver",
	"NE": "America/Chicago",
	"NV": "America/Los_Angeles",
	"NH": "America/New_York",
	"NJ": "America/New_York",
	"NM": "America/Denver",
	"NY": "America/New_York",
	"NC": "America/New_York",
	"ND": "America/Chicago",
	"OH": "America/New_York",
	"OK": "America/Chicago",
	"OR": "America/Los_Angeles",
	"PA": "America/New_York",
	"RI": "America/New_York",
	"SC": "America/New_York",
	"SD": "America/Chicago",
	"TN": "America/Chicago",
	"TX": "America/Chicago",
	"UT": "America/Denver",
	"VT": "America/New_York",
	"VA": "America/New_York",
	"WA": "America/Los_Angeles",
	"WV": "America/New_York",
	"WI": "America/Chicago",
	"WY": "America/Denver",

	// Territories
	"PR": "America/Puerto_Rico",
	"VI": "America/St_Thomas",
	"GU": "Pacific/Guam",
	"AS": "Pacific/Pago_Pago",
	"MP": "Pacific/Saipan",
}

// countryTimezones is the default zone per supported country
var countryTimezones = map[string]string{
	"US": "America/New_York",
	"CA": "America/Toronto",
	"GB": "Europe/London",
	"IE": "Europe/Dublin",
	"FR": "Europe/Paris",
	"DE": "Europe/Berlin",
	"ES": "Europe/Madrid",
	"IT": "Europe/Rome",
	"AU": "Australia/Sydney",
	"NZ": "Pacific/Auckland",
}

// ResolveClinicTimezone returns the IANA zone for a clinic address.
// It never fails: anything it cannot place resolves to UTC.
func ResolveClinicTimezone(country, state string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return DefaultTimezone
	}

	if country == "US" {
		if tz, ok := usStateTimezones[strings.ToUpper(strings.TrimSpace(state))]; ok {
			return tz
		}
	}

	if tz, ok := countryTimezones[country]; ok {
		return tz
	}
	return DefaultTimezone
}
