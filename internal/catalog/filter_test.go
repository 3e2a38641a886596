package catalog

import (
	"net/url"
	"testing"

	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModules() []models.ModuleDB {
	return []models.ModuleDB{
		{ID: 1, Name: "Web Development", ShortDescription: "HTML and CSS", StudyCredit: 15, Location: "Breda", Level: "NLQF-5"},
		{ID: 2, Name: "Data Science", Description: "Statistics with Python", StudyCredit: 30, Location: "Tilburg", Level: "NLQF-6"},
		{ID: 3, Name: "Game Design", ShortDescription: "Unity basics", StudyCredit: 15, Location: "Den Bosch", Level: "NLQF-6"},
		{ID: 4, Name: "Cloud Engineering", Description: "Deploying web services", StudyCredit: 30, Location: "Breda", Level: "NLQF-5"},
	}
}

func ids(modules []models.ModuleDB) []int64 {
	out := make([]int64, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	modules := sampleModules()

	tests := []struct {
		name      string
		filter    Filter
		favorites FavoriteChecker
		want      []int64
	}{
		{name: "empty filter keeps all", filter: Filter{}, want: []int64{1, 2, 3, 4}},
		{name: "search is case insensitive over name and descriptions", filter: Filter{SearchTerm: "  WEB "}, want: []int64{1, 4}},
		{name: "search matches short description", filter: Filter{SearchTerm: "unity"}, want: []int64{3}},
		{name: "credits or within dimension", filter: Filter{Credits: []int{15, 30}}, want: []int64{1, 2, 3, 4}},
		{name: "levels and locations combine with and", filter: Filter{Levels: []string{"NLQF-5"}, Locations: []string{"Breda", "Tilburg"}}, want: []int64{1, 4}},
		{name: "favorites only", filter: Filter{FavoritesOnly: true}, favorites: NewIDSet(2, 3), want: []int64{2, 3}},
		{name: "favorites only without set", filter: Filter{FavoritesOnly: true}, want: []int64{}},
		{name: "no match", filter: Filter{SearchTerm: "quantum"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(modules, tt.filter, tt.favorites)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_NarrowsMonotonically(t *testing.T) {
	modules := sampleModules()
	favorites := NewIDSet(1, 4)

	layers := []func(*Filter){
		func(f *Filter) { f.Credits = []int{15, 30} },
		func(f *Filter) { f.Levels = []string{"NLQF-5"} },
		func(f *Filter) { f.Locations = []string{"Breda"} },
		func(f *Filter) { f.SearchTerm = "web" },
		func(f *Filter) { f.FavoritesOnly = true },
	}

	orders := map[string][]int{
		"forward":  {0, 1, 2, 3, 4},
		"backward": {4, 3, 2, 1, 0},
		"mixed":    {3, 0, 4, 2, 1},
	}

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			var f Filter
			prev := Apply(modules, f, favorites)
			for _, i := range order {
				layers[i](&f)
				got := Apply(modules, f, favorites)
				assert.Subset(t, ids(prev), ids(got), "filter %+v widened the result", f)
				prev = got
			}
			assert.Equal(t, []int64{1, 4}, ids(prev))
		})
	}
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 0, Filter{}.ActiveCount())
	assert.Equal(t, 0, Filter{SearchTerm: "   ", Credits: []int{0}, Levels: []string{""}}.ActiveCount())
	assert.True(t, Filter{}.IsEmpty())
	assert.Equal(t, 5, Filter{
		SearchTerm:    "web",
		Credits:       []int{15},
		Levels:        []string{"NLQF-5"},
		Locations:     []string{"Breda"},
		FavoritesOnly: true,
	}.ActiveCount())
}

func TestFacets(t *testing.T) {
	facets := Facets(sampleModules())

	assert.Equal(t, []int{15, 30}, facets.Credits)
	assert.Equal(t, []string{"NLQF-5", "NLQF-6"}, facets.Levels)
	assert.Equal(t, []string{"Breda", "Den Bosch", "Tilburg"}, facets.Locations)

	empty := Facets(nil)
	assert.Empty(t, empty.Credits)
	assert.NotNil(t, empty.Levels)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "4 modules available", Summary(4, 4))
	assert.Equal(t, "2 of 4 modules found", Summary(4, 2))
	assert.Equal(t, "1 module available", Summary(1, 1))
	assert.Equal(t, "0 of 1 module found", Summary(1, 0))
	assert.Equal(t, "0 modules available", Summary(0, 0))
}

func TestQueryRoundTrip(t *testing.T) {
	f := Filter{
		SearchTerm:    "web",
		Credits:       []int{15, 30, 15},
		Levels:        []string{"NLQF-5"},
		Locations:     []string{"Breda", "Tilburg"},
		FavoritesOnly: true,
	}

	q := f.Query()
	assert.Equal(t, "web", q.Get(ParamSearch))
	assert.Equal(t, []string{"15", "30"}, q[ParamStudyCredit])
	assert.Equal(t, "true", q.Get(ParamFavorites))

	parsed, err := ParseQuery(q)
	require.NoError(t, err)
	assert.Equal(t, f.Normalize(), parsed)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Filter
		wantErr bool
	}{
		{name: "empty", raw: "", want: Filter{}},
		{
			name: "comma separated and repeated",
			raw:  "studycredit=15,30&level=NLQF-5&level=NLQF-6&location=Breda,%20Tilburg",
			want: Filter{Credits: []int{15, 30}, Levels: []string{"NLQF-5", "NLQF-6"}, Locations: []string{"Breda", "Tilburg"}},
		},
		{name: "favorites false", raw: "favorites=false", want: Filter{}},
		{name: "bad credit", raw: "studycredit=abc", wantErr: true},
		{name: "non positive credit", raw: "studycredit=0", wantErr: true},
		{name: "bad favorites", raw: "favorites=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			got, err := ParseQuery(values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
