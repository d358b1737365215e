package domain

import "strings"

const (
	RegionNortheast        = "Northeast"
	RegionSoutheast        = "Southeast"
	RegionMidwest          = "Midwest"
	RegionSouthCentral     = "South Central"
	RegionSouthwest        = "Southwest"
	RegionMountainWest     = "Mountain West"
	RegionWestCoast        = "West Coast"
	RegionPacificNorthwest = "Pacific Northwest"
)

var stateToRegion = map[string]string{
	"ME": RegionNortheast, "NH": RegionNortheast, "VT": RegionNortheast, "MA": RegionNortheast,
	"RI": RegionNortheast, "CT": RegionNortheast, "NY": RegionNortheast, "NJ": RegionNortheast,
	"PA": RegionNortheast, "DE": RegionNortheast, "MD": RegionNortheast, "DC": RegionNortheast,

	"VA": RegionSoutheast, "WV": RegionSoutheast, "NC": RegionSoutheast, "SC": RegionSoutheast,
	"GA": RegionSoutheast, "FL": RegionSoutheast, "AL": RegionSoutheast, "MS": RegionSoutheast,
	"TN": RegionSoutheast, "KY": RegionSoutheast,

	"OH": RegionMidwest, "MI": RegionMidwest, "IN": RegionMidwest, "IL": RegionMidwest,
	"WI": RegionMidwest, "MN": RegionMidwest, "IA": RegionMidwest, "MO": RegionMidwest,
	"KS": RegionMidwest, "NE": RegionMidwest, "SD": RegionMidwest, "ND": RegionMidwest,

	"TX": RegionSouthCentral, "OK": RegionSouthCentral, "AR": RegionSouthCentral, "LA": RegionSouthCentral,

	"AZ": RegionSouthwest, "NM": RegionSouthwest, "NV": RegionSouthwest,

	"CO": RegionMountainWest, "UT": RegionMountainWest, "WY": RegionMountainWest,
	"MT": RegionMountainWest, "ID": RegionMountainWest,

	"CA": RegionWestCoast, "HI": RegionWestCoast,

	"WA": RegionPacificNorthwest, "OR": RegionPacificNorthwest, "AK": RegionPacificNorthwest,
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york state": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington state": "WA", "west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC",
}

var regionAliases = map[string]string{
	"northeast":         RegionNortheast,
	"north east":        RegionNortheast,
	"new england":       RegionNortheast,
	"mid atlantic":      RegionNortheast,
	"mid-atlantic":      RegionNortheast,
	"southeast":         RegionSoutheast,
	"south east":        RegionSoutheast,
	"midwest":           RegionMidwest,
	"mid west":          RegionMidwest,
	"great lakes":       RegionMidwest,
	"south central":     RegionSouthCentral,
	"southcentral":      RegionSouthCentral,
	"southwest":         RegionSouthwest,
	"south west":        RegionSouthwest,
	"mountain west":     RegionMountainWest,
	"mountain":          RegionMountainWest,
	"rockies":           RegionMountainWest,
	"west coast":        RegionWestCoast,
	"pacific northwest": RegionPacificNorthwest,
	"northwest":         RegionPacificNorthwest,
	"pnw":               RegionPacificNorthwest,
}

var cityAliases = map[string]string{
	"dfw":           "dallas, tx",
	"big d":         "dallas, tx",
	"ft worth":      "fort worth, tx",
	"iah":           "houston, tx",
	"h-town":        "houston, tx",
	"satx":          "san antonio, tx",
	"okc":           "oklahoma city, ok",
	"nola":          "new orleans, la",
	"atl":           "atlanta, ga",
	"jax":           "jacksonville, fl",
	"mia":           "miami, fl",
	"clt":           "charlotte, nc",
	"bna":           "nashville, tn",
	"chi":           "chicago, il",
	"chi-town":      "chicago, il",
	"ord":           "chicago, il",
	"indy":          "indianapolis, in",
	"msp":           "minneapolis, mn",
	"twin cities":   "minneapolis, mn",
	"kc":            "kansas city, mo",
	"stl":           "st. louis, mo",
	"st louis":      "st. louis, mo",
	"saint louis":   "st. louis, mo",
	"philly":        "philadelphia, pa",
	"nyc":           "new york, ny",
	"new york city": "new york, ny",
	"jfk":           "new york, ny",
	"ewr":           "newark, nj",
	"bos":           "boston, ma",
	"den":           "denver, co",
	"slc":           "salt lake city, ut",
	"abq":           "albuquerque, nm",
	"phx":           "phoenix, az",
	"vegas":         "las vegas, nv",
	"lax":           "los angeles, ca",
	"l.a.":          "los angeles, ca",
	"inland empire": "ontario, ca",
	"sf":            "san francisco, ca",
	"san fran":      "san francisco, ca",
	"bay area":      "oakland, ca",
	"pdx":           "portland, or",
	"sea":           "seattle, wa",
}

type cityRow struct {
	name     string
	state    string
	lat, lng float64
}

var cityRows = []cityRow{
	{"Dallas", "TX", 32.7767, -96.7970},
	{"Fort Worth", "TX", 32.7555, -97.3308},
	{"Houston", "TX", 29.7604, -95.3698},
	{"San Antonio", "TX", 29.4241, -98.4936},
	{"Austin", "TX", 30.2672, -97.7431},
	{"El Paso", "TX", 31.7619, -106.4850},
	{"Laredo", "TX", 27.5306, -99.4803},
	{"Amarillo", "TX", 35.2220, -101.8313},
	{"Lubbock", "TX", 33.5779, -101.8552},
	{"Oklahoma City", "OK", 35.4676, -97.5164},
	{"Tulsa", "OK", 36.1540, -95.9928},
	{"Little Rock", "AR", 34.7465, -92.2896},
	{"New Orleans", "LA", 29.9511, -90.0715},
	{"Shreveport", "LA", 32.5252, -93.7502},
	{"Baton Rouge", "LA", 30.4515, -91.1871},
	{"Memphis", "TN", 35.1495, -90.0490},
	{"Nashville", "TN", 36.1627, -86.7816},
	{"Knoxville", "TN", 35.9606, -83.9207},
	{"Chattanooga", "TN", 35.0456, -85.3097},
	{"Atlanta", "GA", 33.7490, -84.3880},
	{"Savannah", "GA", 32.0809, -81.0912},
	{"Birmingham", "AL", 33.5186, -86.8104},
	{"Mobile", "AL", 30.6954, -88.0399},
	{"Jackson", "MS", 32.2988, -90.1848},
	{"Jacksonville", "FL", 30.3322, -81.6557},
	{"Miami", "FL", 25.7617, -80.1918},
	{"Orlando", "FL", 28.5383, -81.3792},
	{"Tampa", "FL", 27.9506, -82.4572},
	{"Charlotte", "NC", 35.2271, -80.8431},
	{"Raleigh", "NC", 35.7796, -78.6382},
	{"Greensboro", "NC", 36.0726, -79.7920},
	{"Columbia", "SC", 34.0007, -81.0348},
	{"Charleston", "SC", 32.7765, -79.9311},
	{"Richmond", "VA", 37.5407, -77.4360},
	{"Norfolk", "VA", 36.8508, -76.2859},
	{"Louisville", "KY", 38.2527, -85.7585},
	{"Lexington", "KY", 38.0406, -84.5037},
	{"Chicago", "IL", 41.8781, -87.6298},
	{"Indianapolis", "IN", 39.7684, -86.1581},
	{"Columbus", "OH", 39.9612, -82.9988},
	{"Cincinnati", "OH", 39.1031, -84.5120},
	{"Cleveland", "OH", 41.4993, -81.6944},
	{"Detroit", "MI", 42.3314, -83.0458},
	{"Grand Rapids", "MI", 42.9634, -85.6681},
	{"Milwaukee", "WI", 43.0389, -87.9065},
	{"Minneapolis", "MN", 44.9778, -93.2650},
	{"Des Moines", "IA", 41.5868, -93.6250},
	{"Kansas City", "MO", 39.0997, -94.5786},
	{"St. Louis", "MO", 38.6270, -90.1994},
	{"Omaha", "NE", 41.2565, -95.9345},
	{"Wichita", "KS", 37.6872, -97.3301},
	{"Pittsburgh", "PA", 40.4406, -79.9959},
	{"Philadelphia", "PA", 39.9526, -75.1652},
	{"Harrisburg", "PA", 40.2732, -76.8867},
	{"Allentown", "PA", 40.6023, -75.4714},
	{"New York", "NY", 40.7128, -74.0060},
	{"Buffalo", "NY", 42.8864, -78.8784},
	{"Albany", "NY", 42.6526, -73.7562},
	{"Newark", "NJ", 40.7357, -74.1724},
	{"Boston", "MA", 42.3601, -71.0589},
	{"Hartford", "CT", 41.7658, -72.6734},
	{"Baltimore", "MD", 39.2904, -76.6122},
	{"Denver", "CO", 39.7392, -104.9903},
	{"Salt Lake City", "UT", 40.7608, -111.8910},
	{"Boise", "ID", 43.6150, -116.2023},
	{"Billings", "MT", 45.7833, -108.5007},
	{"Albuquerque", "NM", 35.0844, -106.6504},
	{"Phoenix", "AZ", 33.4484, -112.0740},
	{"Tucson", "AZ", 32.2226, -110.9747},
	{"Las Vegas", "NV", 36.1699, -115.1398},
	{"Reno", "NV", 39.5296, -119.8138},
	{"Los Angeles", "CA", 34.0522, -118.2437},
	{"San Diego", "CA", 32.7157, -117.1611},
	{"Ontario", "CA", 34.0633, -117.6509},
	{"Fresno", "CA", 36.7378, -119.7871},
	{"Sacramento", "CA", 38.5816, -121.4944},
	{"Stockton", "CA", 37.9577, -121.2908},
	{"Oakland", "CA", 37.8044, -122.2712},
	{"San Francisco", "CA", 37.7749, -122.4194},
	{"Portland", "OR", 45.5152, -122.6784},
	{"Seattle", "WA", 47.6062, -122.3321},
	{"Tacoma", "WA", 47.2529, -122.4443},
	{"Spokane", "WA", 47.6588, -117.4260},
}

// DefaultGazetteer returns the built-in US freight market gazetteer.
func DefaultGazetteer() *Gazetteer {
	cities := make(map[string]Place, len(cityRows))
	for _, r := range cityRows {
		name := r.name + ", " + r.state
		cities[strings.ToLower(name)] = Place{
			Name:   name,
			State:  r.state,
			Region: stateToRegion[r.state],
			Lat:    r.lat,
			Lng:    r.lng,
		}
	}
	return NewGazetteer(cities, cityAliases, stateNames, stateToRegion, regionAliases)
}
