package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	// Test: Valid header line
	key, value := ParseLine("Host: localhost:42069")
	assert.Equal(t, "host", key)
	assert.Equal(t, "localhost:42069", value)

	// Test: Key is lowercased
	key, value = ParseLine("CONTENT-TYPE: text/plain")
	assert.Equal(t, "content-type", key)
	assert.Equal(t, "text/plain", value)

	// Test: Only the first ": " splits, the rest stays in the value
	key, value = ParseLine("Authorization: Basic dXNlcjogcGFzcw==")
	assert.Equal(t, "authorization", key)
	assert.Equal(t, "Basic dXNlcjogcGFzcw==", value)

	// Test: No separator produces the sentinel, line preserved as value
	key, value = ParseLine("NotAHeader")
	assert.Equal(t, InvalidHeaderKey, key)
	assert.Equal(t, "NotAHeader", value)

	// Test: Colon without a following space is not a separator
	key, value = ParseLine("X-Tight:value")
	assert.Equal(t, InvalidHeaderKey, key)
	assert.Equal(t, "X-Tight:value", value)

	// Test: Empty value after separator
	key, value = ParseLine("X-Empty: ")
	assert.Equal(t, "x-empty", key)
	assert.Equal(t, "", value)
}

func TestHeadersCaseInsensitiveLookup(t *testing.T) {
	h := NewHeaders()
	h.AddLine("Content-Type: text/plain")

	for _, lookup := range []string{"content-type", "Content-Type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
		value, ok := h.Get(lookup)
		assert.True(t, ok, "lookup %q", lookup)
		assert.Equal(t, "text/plain", value)
	}
}

func TestHeadersLastWriteWins(t *testing.T) {
	h := NewHeaders()
	h.AddLine("X-Custom: first")
	h.AddLine("x-custom: second")

	value, ok := h.Get("X-Custom")
	assert.True(t, ok)
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, h.Len())
}

func TestHeadersSetDel(t *testing.T) {
	h := NewHeaders()
	h.Set("Connection", "close")

	value, ok := h.Get("connection")
	assert.True(t, ok)
	assert.Equal(t, "close", value)

	h.Del("CONNECTION")
	_, ok = h.Get("connection")
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestHeadersInvalidLinesOverwrite(t *testing.T) {
	// Multiple separator-less lines share the sentinel key, so only the
	// last one survives.
	h := NewHeaders()
	h.AddLine("garbage-one")
	h.AddLine("garbage-two")

	value, ok := h.Get(InvalidHeaderKey)
	assert.True(t, ok)
	assert.Equal(t, "garbage-two", value)
	assert.Equal(t, 1, h.Len())
}

func TestHeadersGetMissing(t *testing.T) {
	h := NewHeaders()
	value, ok := h.Get("non-existent")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}
