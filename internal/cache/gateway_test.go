package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyIsDeterministic(t *testing.T) {
	g := NewGateway(nil)

	a := map[string]interface{}{"page": 1, "limit": 10, "search": "laptop"}
	b := map[string]interface{}{"search": "laptop", "page": 1, "limit": 10}

	assert.Equal(t, g.Key("products:list", a), g.Key("products:list", b),
		"equivalent parameter sets must encode to the same key regardless of assembly order")
}

func TestKeyDistinguishesParameters(t *testing.T) {
	g := NewGateway(nil)

	a := g.Key("products:list", map[string]interface{}{"page": 1})
	b := g.Key("products:list", map[string]interface{}{"page": 2})

	assert.NotEqual(t, a, b)
}

func TestKeyPrefix(t *testing.T) {
	g := NewGateway(nil)

	key := g.Key("products:list", map[string]interface{}{"page": 1})
	assert.True(t, strings.HasPrefix(key, "products:list:"))

	nilKey := g.Key("products:list", nil)
	assert.True(t, strings.HasPrefix(nilKey, "products:list:"))
}
