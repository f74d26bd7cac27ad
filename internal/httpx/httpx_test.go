package httpx

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":"Jane"}`), &out))
	assert.Equal(t, "Jane", out.Name)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"Jane","extra":1}`), &out))
	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &out))
	assert.Error(t, DecodeJSON(strings.NewReader(`not json`), &out))
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 20, limit)
	assert.EqualValues(t, 0, offset)

	limit, offset, err = ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"40"}}, 20, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 100, limit)
	assert.EqualValues(t, 40, offset)

	_, _, err = ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100)
	assert.Error(t, err)
	_, _, err = ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100)
	assert.Error(t, err)
}
