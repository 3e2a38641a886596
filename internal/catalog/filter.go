// Package catalog holds the filter model shared by the API and its clients
// and the in-memory filtering the clients run over a loaded module list.
package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// Query parameter names understood by GET /modules.
const (
	ParamSearch      = "q"
	ParamStudyCredit = "studycredit"
	ParamLevel       = "level"
	ParamLocation    = "location"
	ParamFavorites   = "favorites"
)

// Filter selects modules. A zero-valued dimension is inactive; active
// dimensions combine with AND, values within one dimension with OR.
type Filter struct {
	SearchTerm    string
	Credits       []int
	Levels        []string
	Locations     []string
	FavoritesOnly bool
}

// FavoriteChecker answers whether a module is among the user's favorites.
type FavoriteChecker interface {
	IsFavorite(moduleID int64) bool
}

// IDSet is a plain set of module ids.
type IDSet map[int64]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) IsFavorite(moduleID int64) bool {
	_, ok := s[moduleID]
	return ok
}

// Normalize trims the search term, drops blank and duplicate values and
// non-positive credits.
func (f Filter) Normalize() Filter {
	out := Filter{
		SearchTerm:    strings.TrimSpace(f.SearchTerm),
		FavoritesOnly: f.FavoritesOnly,
	}

	seenCredit := map[int]bool{}
	for _, c := range f.Credits {
		if c > 0 && !seenCredit[c] {
			seenCredit[c] = true
			out.Credits = append(out.Credits, c)
		}
	}
	out.Levels = uniqueStrings(f.Levels)
	out.Locations = uniqueStrings(f.Locations)

	return out
}

// ActiveCount returns how many filter dimensions are active.
func (f Filter) ActiveCount() int {
	f = f.Normalize()
	count := 0
	if f.SearchTerm != "" {
		count++
	}
	if len(f.Credits) > 0 {
		count++
	}
	if len(f.Levels) > 0 {
		count++
	}
	if len(f.Locations) > 0 {
		count++
	}
	if f.FavoritesOnly {
		count++
	}
	return count
}

// IsEmpty reports whether no dimension is active.
func (f Filter) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Match reports whether a single module passes every active predicate.
// favorites may be nil when FavoritesOnly is off.
func (f Filter) Match(m *models.ModuleDB, favorites FavoriteChecker) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.ShortDescription), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			return false
		}
	}
	if len(f.Credits) > 0 && !containsInt(f.Credits, m.StudyCredit) {
		return false
	}
	if len(f.Levels) > 0 && !containsString(f.Levels, m.Level) {
		return false
	}
	if len(f.Locations) > 0 && !containsString(f.Locations, m.Location) {
		return false
	}
	if f.FavoritesOnly && (favorites == nil || !favorites.IsFavorite(m.ID)) {
		return false
	}
	return true
}

// Apply returns the modules that pass the filter, in their original order.
func Apply(modules []models.ModuleDB, f Filter, favorites FavoriteChecker) []models.ModuleDB {
	f = f.Normalize()
	out := make([]models.ModuleDB, 0, len(modules))
	for i := range modules {
		if f.Match(&modules[i], favorites) {
			out = append(out, modules[i])
		}
	}
	return out
}

// Facets collects the sorted distinct credits, levels and locations.
func Facets(modules []models.ModuleDB) models.ModuleFacets {
	credits := map[int]struct{}{}
	levels := map[string]struct{}{}
	locations := map[string]struct{}{}
	for _, m := range modules {
		credits[m.StudyCredit] = struct{}{}
		if m.Level != "" {
			levels[m.Level] = struct{}{}
		}
		if m.Location != "" {
			locations[m.Location] = struct{}{}
		}
	}

	facets := models.ModuleFacets{
		Credits:   make([]int, 0, len(credits)),
		Levels:    make([]string, 0, len(levels)),
		Locations: make([]string, 0, len(locations)),
	}
	for c := range credits {
		facets.Credits = append(facets.Credits, c)
	}
	for l := range levels {
		facets.Levels = append(facets.Levels, l)
	}
	for l := range locations {
		facets.Locations = append(facets.Locations, l)
	}
	sort.Ints(facets.Credits)
	sort.Strings(facets.Levels)
	sort.Strings(facets.Locations)
	return facets
}

// Summary renders the result line shown above a filtered list.
func Summary(total, filtered int) string {
	noun := "modules"
	if total == 1 {
		noun = "module"
	}
	if filtered == total {
		return fmt.Sprintf("%d %s available", total, noun)
	}
	return fmt.Sprintf("%d of %d %s found", filtered, total, noun)
}

// Query encodes the filter as GET /modules query parameters.
func (f Filter) Query() url.Values {
	f = f.Normalize()
	v := url.Values{}
	if f.SearchTerm != "" {
		v.Set(ParamSearch, f.SearchTerm)
	}
	for _, c := range f.Credits {
		v.Add(ParamStudyCredit, strconv.Itoa(c))
	}
	for _, l := range f.Levels {
		v.Add(ParamLevel, l)
	}
	for _, l := range f.Locations {
		v.Add(ParamLocation, l)
	}
	if f.FavoritesOnly {
		v.Set(ParamFavorites, "true")
	}
	return v
}

// ParseQuery decodes GET /modules query parameters. Multi-valued dimensions
// accept both repeated parameters and comma separated lists.
func ParseQuery(values url.Values) (Filter, error) {
	f := Filter{
		SearchTerm: values.Get(ParamSearch),
		Levels:     splitValues(values[ParamLevel]),
		Locations:  splitValues(values[ParamLocation]),
	}

	for _, raw := range splitValues(values[ParamStudyCredit]) {
		c, err := strconv.Atoi(raw)
		if err != nil || c <= 0 {
			return Filter{}, fmt.Errorf("invalid %s %q", ParamStudyCredit, raw)
		}
		f.Credits = append(f.Credits, c)
	}

	if raw := values.Get(ParamFavorites); raw != "" {
		fav, err := strconv.ParseBool(raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid %s %q", ParamFavorites, raw)
		}
		f.FavoritesOnly = fav
	}

	return f.Normalize(), nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func uniqueStrings(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
