package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		offset string
		limit  string
		want   *Params
	}{
		{"both absent", "", "", nil},
		{"both unparseable", "abc", "x", nil},
		{"only offset", "2", "", &Params{Page: 2, PerPage: 10}},
		{"only limit", "", "5", &Params{Page: 1, PerPage: 5}},
		{"offset below one", "0", "5", &Params{Page: 1, PerPage: 5}},
		{"negative limit", "3", "-4", &Params{Page: 3, PerPage: 10}},
		{"unparseable limit with valid offset", "2", "many", &Params{Page: 2, PerPage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.offset, tt.limit, 10))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
}

func TestSliceThirdPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	res := Slice(items, &Params{Page: 3, PerPage: 10})
	assert.Equal(t, []int{21, 22, 23, 24, 25}, res.Items)
	require.NotNil(t, res.Info)
	assert.Equal(t, Info{Page: 3, PerPage: 10, TotalPage: 3, TotalResults: 25}, *res.Info)

	beyond := Slice(items, &Params{Page: 9, PerPage: 10})
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 25, beyond.Info.TotalResults)
}

func TestResultJSON(t *testing.T) {
	flat, err := json.Marshal(Slice([]string{"a", "b"}, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(flat))

	empty, err := json.Marshal(Result[string]{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	paged, err := json.Marshal(Slice([]string{"a", "b", "c"}, &Params{Page: 2, PerPage: 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":["c"],"pagination":{"page":2,"per_page":2,"total_page":2,"total_results":3}}`, string(paged))
}

func TestMap(t *testing.T) {
	res := Map(Slice([]int{1, 2, 3}, &Params{Page: 1, PerPage: 2}), func(n int) int { return n * 10 })
	assert.Equal(t, []int{10, 20}, res.Items)
	assert.Equal(t, 3, res.Info.TotalResults)
}
