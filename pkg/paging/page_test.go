package paging

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestClamps(t *testing.T) {
	r := NewRequest(-3, 0, "")
	assert.Equal(t, 0, r.Page)
	assert.Equal(t, DefaultPageSize, r.Size)
	assert.Equal(t, Desc, r.Direction)

	r = NewRequest(2, 1000, Asc)
	assert.Equal(t, MaxPageSize, r.Size)
	assert.Equal(t, Asc, r.Direction)
	assert.Equal(t, 2*MaxPageSize, r.Offset())
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Asc, ParseDirection("asc"))
	assert.Equal(t, Asc, ParseDirection("ASC"))
	assert.Equal(t, Desc, ParseDirection("desc"))
	assert.Equal(t, Desc, ParseDirection(""))
	assert.Equal(t, Desc, ParseDirection("sideways"))
}

func TestPageDerivedFields(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		total      int64
		totalPages int
		first      bool
		last       bool
	}{
		{"single partial page", 0, 10, 3, 1, true, true},
		{"empty result", 0, 10, 0, 0, true, true},
		{"middle page", 1, 10, 25, 3, false, false},
		{"last page", 2, 10, 25, 3, false, true},
		{"exact fit", 1, 10, 20, 2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, Request{Page: tt.page, Size: tt.size, Direction: Desc}, tt.total)
			assert.Equal(t, tt.totalPages, p.TotalPages())
			assert.Equal(t, tt.first, p.First())
			assert.Equal(t, tt.last, p.Last())
		})
	}
}

func TestMapKeepsMetadata(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, Request{Page: 1, Size: 3}, 9)
	mapped := Map(p, func(v int) string { return strconv.Itoa(v) })

	assert.Equal(t, []string{"1", "2", "3"}, mapped.Items)
	assert.Equal(t, p.Number, mapped.Number)
	assert.Equal(t, p.Size, mapped.Size)
	assert.Equal(t, p.TotalElements, mapped.TotalElements)
}
