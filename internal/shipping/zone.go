package shipping

import (
	"sort"
	"strings"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/normalize"
)

// regionCodes maps folded Chilean region names to the codes stores configure
// on their zones. Common storefront spellings map to the same code.
var regionCodes = map[string]string{
	"arica y parinacota":                   "XV",
	"region de arica y parinacota":         "XV",
	"tarapaca":                             "I",
	"region de tarapaca":                   "I",
	"antofagasta":                          "II",
	"region de antofagasta":                "II",
	"atacama":                              "III",
	"region de atacama":                    "III",
	"coquimbo":                             "IV",
	"region de coquimbo":                   "IV",
	"valparaiso":                           "V",
	"region de valparaiso":                 "V",
	"metropolitana":                        "RM",
	"region metropolitana":                 "RM",
	"region metropolitana de santiago":     "RM",
	"santiago":                             "RM",
	"ohiggins":                             "VI",
	"o'higgins":                            "VI",
	"libertador general bernardo ohiggins": "VI",
	"maule":                                "VII",
	"region del maule":                     "VII",
	"nuble":                                "XVI",
	"region de nuble":                      "XVI",
	"biobio":                               "VIII",
	"region del biobio":                    "VIII",
	"araucania":                            "IX",
	"la araucania":                         "IX",
	"region de la araucania":               "IX",
	"los rios":                             "XIV",
	"region de los rios":                   "XIV",
	"los lagos":                            "X",
	"region de los lagos":                  "X",
	"aysen":                                "XI",
	"aisen":                                "XI",
	"region de aysen":                      "XI",
	"magallanes":                           "XII",
	"region de magallanes":                 "XII",
	"magallanes y la antartica chilena":    "XII",
}

// regionCodeFromName resolves a free-text region to its code. Exact folded
// lookup first, then a substring scan for addresses that embed the region
// inside a longer string.
func regionCodeFromName(name string) string {
	folded := normalize.Fold(name)
	if folded == "" {
		return ""
	}
	if code, ok := regionCodes[folded]; ok {
		return code
	}
	names := make([]string, 0, len(regionCodes))
	for known := range regionCodes {
		names = append(names, known)
	}
	sort.Strings(names)
	for _, known := range names {
		if strings.Contains(folded, known) {
			return regionCodes[known]
		}
	}
	return ""
}

// resolveZone picks the zone serving the address's region. Zones are tried
// in stored position order: first by code equality against the region code,
// then by name containment in either direction. With no match the first zone
// acts as the store's default, so a configured store always resolves.
func resolveZone(zones []models.ShippingZone, subdivision string) *models.ShippingZone {
	if len(zones) == 0 {
		return nil
	}

	code := regionCodeFromName(subdivision)
	for i := range zones {
		zone := &zones[i]
		if normalize.Equal(zone.RegionCode, subdivision) {
			return zone
		}
		if code != "" && normalize.Equal(zone.RegionCode, code) {
			return zone
		}
	}
	for i := range zones {
		zone := &zones[i]
		if normalize.EitherContains(zone.Name, subdivision) {
			return zone
		}
	}
	return &zones[0]
}
