package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTrip(t *testing.T) {
	tags := []string{"vegan", "gluten-free"}
	assert.Equal(t, tags, DecodeTags(EncodeTags(tags)))
}

func TestDecodeTagsToleratesBadData(t *testing.T) {
	assert.Equal(t, []string{}, DecodeTags(""))
	assert.Equal(t, []string{}, DecodeTags("not json"))
	assert.Equal(t, []string{}, DecodeTags(`{"oops":1}`))
}

func TestEncodeTagsEmpty(t *testing.T) {
	assert.Equal(t, "[]", EncodeTags(nil))
	assert.Equal(t, "[]", EncodeTags([]string{}))
}
