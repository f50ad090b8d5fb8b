package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptionID(t *testing.T) {
	tests := []struct {
		id, key, value string
	}{
		{"manufacturer=AMD", "manufacturer", "AMD"},
		{"Resolution=2560x1440", "Resolution", "2560x1440"},
		{"note=a=b", "note", "a=b"},
		{"socket=", "socket", ""},
		{"AM5", "AM5", "AM5"},
	}

	for _, tt := range tests {
		key, value := ParseOptionID(tt.id)
		assert.Equal(t, tt.key, key, tt.id)
		assert.Equal(t, tt.value, value, tt.id)
	}
	assert.Equal(t, "socket=AM5", OptionID("socket", "AM5"))
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 10, Max: 50}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(50))
	assert.False(t, r.Contains(50.01))
	assert.False(t, r.Contains(9.99))
}

func TestSelection(t *testing.T) {
	groups := []FilterGroup{{Type: "manufacturer"}, {Type: "socket"}}
	sel := NewSelection(groups)
	assert.Equal(t, Selection{"manufacturer": {}, "socket": {}}, sel)
	assert.Empty(t, sel.Active())

	next := sel.Toggle("socket", "socket=AM5")
	assert.True(t, next.Has("socket", "socket=AM5"))
	assert.False(t, sel.Has("socket", "socket=AM5"), "toggle must not mutate the receiver")
	assert.Equal(t, []string{"socket"}, next.Active())

	next = next.Toggle("socket", "socket=LGA1700").Toggle("manufacturer", "manufacturer=AMD")
	assert.Equal(t, []string{"manufacturer", "socket"}, next.Active())

	off := next.Toggle("socket", "socket=AM5")
	assert.Equal(t, []string{"socket=LGA1700"}, off["socket"])
	assert.Equal(t, []string{"socket=AM5", "socket=LGA1700"}, next["socket"])
}
