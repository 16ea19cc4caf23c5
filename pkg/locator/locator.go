// Package locator searches the relief-centers table by city or
// province. Matching runs through ordered tiers, stopping at the first
// tier with any hit: exact province (alias-applied), city substring,
// province full-name substring, province code substring. The last two
// are fallback tiers and callers should tell the user a substitution
// happened.
//
// The full-name tier runs before the code tier because two-letter codes
// produce spurious substring hits ("O" is inside "ON").
package locator

import (
	"sort"
	"strings"

	"github.com/shadowbane/phoenix-aid/pkg/matching"
	"github.com/shadowbane/phoenix-aid/pkg/models"
	"github.com/shadowbane/phoenix-aid/pkg/tabular"
)

// Tier identifies which matching strategy produced a result set.
type Tier int

const (
	// TierNone means no tier matched (or the query was empty).
	TierNone Tier = iota
	// TierProvinceExact matches province code or full name exactly,
	// after alias substitution.
	TierProvinceExact
	// TierCity matches the query as a city substring.
	TierCity
	// TierProvinceFullPartial matches the query as a substring of the
	// province full name. Fallback tier.
	TierProvinceFullPartial
	// TierProvinceCodePartial matches the query as a substring of the
	// province code. Fallback tier.
	TierProvinceCodePartial
)

func (t Tier) String() string {
	switch t {
	case TierProvinceExact:
		return "province_exact"
	case TierCity:
		return "city"
	case TierProvinceFullPartial:
		return "province_full_partial"
	case TierProvinceCodePartial:
		return "province_code_partial"
	default:
		return "none"
	}
}

// Fallback reports whether results from this tier came from a degraded
// partial match rather than a precise one.
func (t Tier) Fallback() bool {
	return t == TierProvinceFullPartial || t == TierProvinceCodePartial
}

// Result is a result set plus the tier that produced it. For the
// full-name fallback tier, FallbackProvince names the first matched
// province in title case for the user notice.
type Result struct {
	Centers          []models.ReliefCenter
	Tier             Tier
	FallbackProvince string
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func sortByDistance(centers []models.ReliefCenter) []models.ReliefCenter {
	sort.SliceStable(centers, func(i, j int) bool {
		return centers[i].DistanceKm < centers[j].DistanceKm
	})
	return centers
}

// Search matches query against centers through the tier ladder. An
// empty (trimmed) query returns an empty result: unlike the alert
// registry, the locator deliberately does not treat the empty string as
// match-everything.
func Search(centers []models.ReliefCenter, query string) Result {
	q := upper(query)
	if q == "" || len(centers) == 0 {
		return Result{Tier: TierNone}
	}

	// Alias substitution applies only to the exact tier; the partial
	// tiers keep the query the user actually typed.
	qExact := matching.ResolveAlias(q)

	var exact []models.ReliefCenter
	for _, c := range centers {
		if upper(c.Province) == qExact || upper(c.ProvinceFull) == qExact {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		return Result{Centers: sortByDistance(exact), Tier: TierProvinceExact}
	}

	var city []models.ReliefCenter
	for _, c := range centers {
		if strings.Contains(upper(c.City), q) {
			city = append(city, c)
		}
	}
	if len(city) > 0 {
		return Result{Centers: sortByDistance(city), Tier: TierCity}
	}

	var fullPartial []models.ReliefCenter
	for _, c := range centers {
		if strings.Contains(upper(c.ProvinceFull), q) {
			fullPartial = append(fullPartial, c)
		}
	}
	if len(fullPartial) > 0 {
		// First match in table order, captured before the distance sort.
		fallback := matching.TitleCase(fullPartial[0].ProvinceFull)
		return Result{
			Centers:          sortByDistance(fullPartial),
			Tier:             TierProvinceFullPartial,
			FallbackProvince: fallback,
		}
	}

	var codePartial []models.ReliefCenter
	for _, c := range centers {
		if strings.Contains(upper(c.Province), q) {
			codePartial = append(codePartial, c)
		}
	}
	if len(codePartial) > 0 {
		return Result{Centers: sortByDistance(codePartial), Tier: TierProvinceCodePartial}
	}

	return Result{Tier: TierNone}
}

// Locator owns the relief-centers table file and reloads it on every
// search.
type Locator struct {
	path string
}

// New creates a Locator over the relief-centers table at path.
func New(path string) *Locator {
	return &Locator{path: path}
}

// Search reloads the table and matches query against it. Load failures
// come back alongside an empty result so read paths can degrade while
// still surfacing the problem.
func (l *Locator) Search(query string) (Result, error) {
	centers, err := tabular.LoadReliefCenters(l.path)
	if err != nil {
		return Result{Tier: TierNone}, err
	}
	return Search(centers, query), nil
}
