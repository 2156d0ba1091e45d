// Package routes holds the static catalog of trek routes. Definitions are
// literal, built once at init, and never mutated.
package routes

import "github.com/trekline/server/pkg/geo"

// Landmark is a named point along a route with its distance from the route
// start, expressed in the same nominal miles the route advertises.
type Landmark struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Region         string         `json:"region"`
	Coordinate     geo.Coordinate `json:"coordinate"`
	MilesFromStart float64        `json:"miles_from_start"`
}

// Route is an immutable trek definition. NominalTotalMiles is the
// advertised distance used for percent-complete math; it is allowed to
// differ from the geometric length of Path, whose waypoints only
// approximate the real road.
type Route struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	OriginLabel      string           `json:"origin"`
	DestinationLabel string           `json:"destination"`
	NominalTotalMiles float64         `json:"nominal_total_miles"`
	Path             []geo.Coordinate `json:"path"`
	// Landmarks are the curated "ahead" markers; PointsOfInterest is the
	// denser list used for nearest-POI lookups. The two may overlap.
	Landmarks        []Landmark `json:"landmarks"`
	PointsOfInterest []Landmark `json:"points_of_interest"`
}

// DefaultID is the route every fresh install starts on, and the fallback
// whenever a persisted route id no longer resolves.
const DefaultID = "hadrians-wall"

var displayOrder = []string{"hadrians-wall", "camino-frances", "route-66"}

// Lookup returns the route for id. A miss is a normal outcome, not an
// error; callers fall back to Default.
func Lookup(id string) (Route, bool) {
	r, ok := catalog[id]
	return r, ok
}

// Resolve returns the route for id, or the default route when id is
// unknown (e.g. a persisted id from a catalog that has since changed).
func Resolve(id string) Route {
	if r, ok := catalog[id]; ok {
		return r
	}
	return catalog[DefaultID]
}

// Default returns the default route.
func Default() Route {
	return catalog[DefaultID]
}

// All returns every route in fixed display order.
func All() []Route {
	out := make([]Route, 0, len(displayOrder))
	for _, id := range displayOrder {
		out = append(out, catalog[id])
	}
	return out
}

var catalog = map[string]Route{
	"hadrians-wall": {
		ID:                "hadrians-wall",
		Name:              "Hadrian's Wall Path",
		OriginLabel:       "Wallsend",
		DestinationLabel:  "Bowness-on-Solway",
		NominalTotalMiles: 84,
		Path: []geo.Coordinate{
			{Lat: 54.9869, Lng: -1.5329}, // Segedunum, Wallsend
			{Lat: 54.9690, Lng: -1.6000}, // Newcastle Quayside
			{Lat: 54.9990, Lng: -1.7890}, // Heddon-on-the-Wall
			{Lat: 55.0267, Lng: -2.1390}, // Chollerford
			{Lat: 55.0133, Lng: -2.3310}, // Housesteads
			{Lat: 54.9930, Lng: -2.3880}, // Steel Rigg
			{Lat: 54.9892, Lng: -2.6020}, // Birdoswald
			{Lat: 54.9770, Lng: -2.7490}, // Walton
			{Lat: 54.8925, Lng: -2.9326}, // Carlisle
			{Lat: 54.9230, Lng: -3.0480}, // Burgh by Sands
			{Lat: 54.9530, Lng: -3.2170}, // Bowness-on-Solway
		},
		Landmarks: []Landmark{
			{ID: "heddon", Name: "Heddon-on-the-Wall", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 54.9990, Lng: -1.7890}, MilesFromStart: 15},
			{ID: "chesters", Name: "Chesters Roman Fort", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 55.0267, Lng: -2.1390}, MilesFromStart: 27},
			{ID: "housesteads", Name: "Housesteads Roman Fort", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 55.0133, Lng: -2.3310}, MilesFromStart: 36},
			{ID: "birdoswald", Name: "Birdoswald Roman Fort", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9892, Lng: -2.6020}, MilesFromStart: 49},
			{ID: "carlisle", Name: "Carlisle", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.8925, Lng: -2.9326}, MilesFromStart: 62},
			{ID: "bowness", Name: "Bowness-on-Solway", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9530, Lng: -3.2170}, MilesFromStart: 84},
		},
		PointsOfInterest: []Landmark{
			{ID: "segedunum", Name: "Segedunum Roman Fort", Region: "Tyne and Wear", Coordinate: geo.Coordinate{Lat: 54.9869, Lng: -1.5329}, MilesFromStart: 0},
			{ID: "quayside", Name: "Newcastle Quayside", Region: "Tyne and Wear", Coordinate: geo.Coordinate{Lat: 54.9690, Lng: -1.6000}, MilesFromStart: 4},
			{ID: "heddon", Name: "Heddon-on-the-Wall", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 54.9990, Lng: -1.7890}, MilesFromStart: 15},
			{ID: "chesters", Name: "Chesters Roman Fort", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 55.0267, Lng: -2.1390}, MilesFromStart: 27},
			{ID: "sycamore-gap", Name: "Sycamore Gap", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 55.0037, Lng: -2.3860}, MilesFromStart: 38},
			{ID: "steel-rigg", Name: "Steel Rigg", Region: "Northumberland", Coordinate: geo.Coordinate{Lat: 54.9930, Lng: -2.3880}, MilesFromStart: 39},
			{ID: "birdoswald", Name: "Birdoswald Roman Fort", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9892, Lng: -2.6020}, MilesFromStart: 49},
			{ID: "lanercost", Name: "Lanercost Priory", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9660, Lng: -2.6960}, MilesFromStart: 53},
			{ID: "carlisle", Name: "Carlisle Castle", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.8990, Lng: -2.9410}, MilesFromStart: 62},
			{ID: "burgh", Name: "Burgh by Sands", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9230, Lng: -3.0480}, MilesFromStart: 70},
			{ID: "bowness", Name: "Bowness-on-Solway", Region: "Cumbria", Coordinate: geo.Coordinate{Lat: 54.9530, Lng: -3.2170}, MilesFromStart: 84},
		},
	},
	"camino-frances": {
		ID:                "camino-frances",
		Name:              "Camino de Santiago (Camino Francés)",
		OriginLabel:       "Saint-Jean-Pied-de-Port",
		DestinationLabel:  "Santiago de Compostela",
		NominalTotalMiles: 480,
		Path: []geo.Coordinate{
			{Lat: 43.1634, Lng: -1.2374}, // Saint-Jean-Pied-de-Port
			{Lat: 43.0091, Lng: -1.3199}, // Roncesvalles
			{Lat: 42.8125, Lng: -1.6458}, // Pamplona
			{Lat: 42.6717, Lng: -2.0320}, // Estella
			{Lat: 42.4650, Lng: -2.4456}, // Logroño
			{Lat: 42.4410, Lng: -2.9535}, // Santo Domingo de la Calzada
			{Lat: 42.3439, Lng: -3.6969}, // Burgos
			{Lat: 42.2664, Lng: -4.4060}, // Frómista
			{Lat: 42.3717, Lng: -5.0290}, // Sahagún
			{Lat: 42.5987, Lng: -5.5671}, // León
			{Lat: 42.4574, Lng: -6.0560}, // Astorga
			{Lat: 42.5500, Lng: -6.5980}, // Ponferrada
			{Lat: 42.7076, Lng: -7.0420}, // O Cebreiro
			{Lat: 42.7810, Lng: -7.4140}, // Sarria
			{Lat: 42.8075, Lng: -7.6160}, // Portomarín
			{Lat: 42.9140, Lng: -8.0150}, // Melide
			{Lat: 42.8806, Lng: -8.5449}, // Santiago de Compostela
		},
		Landmarks: []Landmark{
			{ID: "roncesvalles", Name: "Roncesvalles", Region: "Navarre", Coordinate: geo.Coordinate{Lat: 43.0091, Lng: -1.3199}, MilesFromStart: 16},
			{ID: "pamplona", Name: "Pamplona", Region: "Navarre", Coordinate: geo.Coordinate{Lat: 42.8125, Lng: -1.6458}, MilesFromStart: 45},
			{ID: "logrono", Name: "Logroño", Region: "La Rioja", Coordinate: geo.Coordinate{Lat: 42.4650, Lng: -2.4456}, MilesFromStart: 100},
			{ID: "burgos", Name: "Burgos", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.3439, Lng: -3.6969}, MilesFromStart: 175},
			{ID: "leon", Name: "León", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.5987, Lng: -5.5671}, MilesFromStart: 285},
			{ID: "ponferrada", Name: "Ponferrada", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.5500, Lng: -6.5980}, MilesFromStart: 355},
			{ID: "sarria", Name: "Sarria", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.7810, Lng: -7.4140}, MilesFromStart: 410},
			{ID: "santiago", Name: "Santiago de Compostela", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.8806, Lng: -8.5449}, MilesFromStart: 480},
		},
		PointsOfInterest: []Landmark{
			{ID: "sjpdp", Name: "Saint-Jean-Pied-de-Port", Region: "Pyrénées-Atlantiques", Coordinate: geo.Coordinate{Lat: 43.1634, Lng: -1.2374}, MilesFromStart: 0},
			{ID: "roncesvalles", Name: "Roncesvalles", Region: "Navarre", Coordinate: geo.Coordinate{Lat: 43.0091, Lng: -1.3199}, MilesFromStart: 16},
			{ID: "pamplona", Name: "Pamplona", Region: "Navarre", Coordinate: geo.Coordinate{Lat: 42.8125, Lng: -1.6458}, MilesFromStart: 45},
			{ID: "estella", Name: "Estella-Lizarra", Region: "Navarre", Coordinate: geo.Coordinate{Lat: 42.6717, Lng: -2.0320}, MilesFromStart: 72},
			{ID: "logrono", Name: "Logroño", Region: "La Rioja", Coordinate: geo.Coordinate{Lat: 42.4650, Lng: -2.4456}, MilesFromStart: 100},
			{ID: "santo-domingo", Name: "Santo Domingo de la Calzada", Region: "La Rioja", Coordinate: geo.Coordinate{Lat: 42.4410, Lng: -2.9535}, MilesFromStart: 130},
			{ID: "burgos", Name: "Burgos Cathedral", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.3410, Lng: -3.7040}, MilesFromStart: 175},
			{ID: "fromista", Name: "Frómista", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.2664, Lng: -4.4060}, MilesFromStart: 215},
			{ID: "sahagun", Name: "Sahagún", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.3717, Lng: -5.0290}, MilesFromStart: 250},
			{ID: "leon", Name: "León Cathedral", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.5990, Lng: -5.5669}, MilesFromStart: 285},
			{ID: "astorga", Name: "Astorga", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.4574, Lng: -6.0560}, MilesFromStart: 315},
			{ID: "cruz-de-ferro", Name: "Cruz de Ferro", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.4890, Lng: -6.3430}, MilesFromStart: 335},
			{ID: "ponferrada", Name: "Ponferrada Castle", Region: "Castile and León", Coordinate: geo.Coordinate{Lat: 42.5430, Lng: -6.5910}, MilesFromStart: 355},
			{ID: "o-cebreiro", Name: "O Cebreiro", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.7076, Lng: -7.0420}, MilesFromStart: 385},
			{ID: "sarria", Name: "Sarria", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.7810, Lng: -7.4140}, MilesFromStart: 410},
			{ID: "portomarin", Name: "Portomarín", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.8075, Lng: -7.6160}, MilesFromStart: 425},
			{ID: "melide", Name: "Melide", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.9140, Lng: -8.0150}, MilesFromStart: 450},
			{ID: "santiago", Name: "Praza do Obradoiro", Region: "Galicia", Coordinate: geo.Coordinate{Lat: 42.8806, Lng: -8.5449}, MilesFromStart: 480},
		},
	},
	"route-66": {
		ID:                "route-66",
		Name:              "Route 66",
		OriginLabel:       "Chicago",
		DestinationLabel:  "Santa Monica",
		NominalTotalMiles: 2278,
		Path: []geo.Coordinate{
			{Lat: 41.8781, Lng: -87.6298},  // Chicago
			{Lat: 39.7817, Lng: -89.6501},  // Springfield, IL
			{Lat: 38.6270, Lng: -90.1994},  // St. Louis
			{Lat: 37.2090, Lng: -93.2923},  // Springfield, MO
			{Lat: 36.1540, Lng: -95.9928},  // Tulsa
			{Lat: 35.4676, Lng: -97.5164},  // Oklahoma City
			{Lat: 35.2220, Lng: -101.8313}, // Amarillo
			{Lat: 35.1717, Lng: -103.7250}, // Tucumcari
			{Lat: 35.0844, Lng: -106.6504}, // Albuquerque
			{Lat: 35.5281, Lng: -108.7426}, // Gallup
			{Lat: 35.1983, Lng: -111.6513}, // Flagstaff
			{Lat: 35.1894, Lng: -114.0530}, // Kingman
			{Lat: 34.8958, Lng: -117.0173}, // Barstow
			{Lat: 34.1083, Lng: -117.2898}, // San Bernardino
			{Lat: 34.0195, Lng: -118.4912}, // Santa Monica Pier
		},
		Landmarks: []Landmark{
			{ID: "st-louis", Name: "St. Louis", Region: "Missouri", Coordinate: geo.Coordinate{Lat: 38.6270, Lng: -90.1994}, MilesFromStart: 300},
			{ID: "tulsa", Name: "Tulsa", Region: "Oklahoma", Coordinate: geo.Coordinate{Lat: 36.1540, Lng: -95.9928}, MilesFromStart: 740},
			{ID: "amarillo", Name: "Amarillo", Region: "Texas", Coordinate: geo.Coordinate{Lat: 35.2220, Lng: -101.8313}, MilesFromStart: 1120},
			{ID: "albuquerque", Name: "Albuquerque", Region: "New Mexico", Coordinate: geo.Coordinate{Lat: 35.0844, Lng: -106.6504}, MilesFromStart: 1400},
			{ID: "flagstaff", Name: "Flagstaff", Region: "Arizona", Coordinate: geo.Coordinate{Lat: 35.1983, Lng: -111.6513}, MilesFromStart: 1720},
			{ID: "barstow", Name: "Barstow", Region: "California", Coordinate: geo.Coordinate{Lat: 34.8958, Lng: -117.0173}, MilesFromStart: 2080},
			{ID: "santa-monica", Name: "Santa Monica Pier", Region: "California", Coordinate: geo.Coordinate{Lat: 34.0195, Lng: -118.4912}, MilesFromStart: 2278},
		},
		PointsOfInterest: []Landmark{
			{ID: "chicago", Name: "Begin Route 66 sign, Chicago", Region: "Illinois", Coordinate: geo.Coordinate{Lat: 41.8781, Lng: -87.6298}, MilesFromStart: 0},
			{ID: "springfield-il", Name: "Springfield", Region: "Illinois", Coordinate: geo.Coordinate{Lat: 39.7817, Lng: -89.6501}, MilesFromStart: 200},
			{ID: "chain-of-rocks", Name: "Chain of Rocks Bridge", Region: "Missouri", Coordinate: geo.Coordinate{Lat: 38.7606, Lng: -90.1759}, MilesFromStart: 290},
			{ID: "st-louis", Name: "Gateway Arch", Region: "Missouri", Coordinate: geo.Coordinate{Lat: 38.6247, Lng: -90.1848}, MilesFromStart: 300},
			{ID: "springfield-mo", Name: "Springfield", Region: "Missouri", Coordinate: geo.Coordinate{Lat: 37.2090, Lng: -93.2923}, MilesFromStart: 520},
			{ID: "blue-whale", Name: "Blue Whale of Catoosa", Region: "Oklahoma", Coordinate: geo.Coordinate{Lat: 36.1915, Lng: -95.7352}, MilesFromStart: 725},
			{ID: "tulsa", Name: "Tulsa", Region: "Oklahoma", Coordinate: geo.Coordinate{Lat: 36.1540, Lng: -95.9928}, MilesFromStart: 740},
			{ID: "okc", Name: "Oklahoma City", Region: "Oklahoma", Coordinate: geo.Coordinate{Lat: 35.4676, Lng: -97.5164}, MilesFromStart: 860},
			{ID: "cadillac-ranch", Name: "Cadillac Ranch", Region: "Texas", Coordinate: geo.Coordinate{Lat: 35.1872, Lng: -101.9870}, MilesFromStart: 1130},
			{ID: "tucumcari", Name: "Tucumcari", Region: "New Mexico", Coordinate: geo.Coordinate{Lat: 35.1717, Lng: -103.7250}, MilesFromStart: 1230},
			{ID: "albuquerque", Name: "Albuquerque", Region: "New Mexico", Coordinate: geo.Coordinate{Lat: 35.0844, Lng: -106.6504}, MilesFromStart: 1400},
			{ID: "gallup", Name: "Gallup", Region: "New Mexico", Coordinate: geo.Coordinate{Lat: 35.5281, Lng: -108.7426}, MilesFromStart: 1540},
			{ID: "meteor-crater", Name: "Meteor Crater", Region: "Arizona", Coordinate: geo.Coordinate{Lat: 35.0277, Lng: -111.0224}, MilesFromStart: 1680},
			{ID: "flagstaff", Name: "Flagstaff", Region: "Arizona", Coordinate: geo.Coordinate{Lat: 35.1983, Lng: -111.6513}, MilesFromStart: 1720},
			{ID: "kingman", Name: "Kingman", Region: "Arizona", Coordinate: geo.Coordinate{Lat: 35.1894, Lng: -114.0530}, MilesFromStart: 1880},
			{ID: "barstow", Name: "Barstow", Region: "California", Coordinate: geo.Coordinate{Lat: 34.8958, Lng: -117.0173}, MilesFromStart: 2080},
			{ID: "santa-monica", Name: "Santa Monica Pier", Region: "California", Coordinate: geo.Coordinate{Lat: 34.0195, Lng: -118.4912}, MilesFromStart: 2278},
		},
	},
}
