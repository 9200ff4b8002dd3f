package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t,
		"clients/abc-123.webp",
		keyFromURL("https://familyapp.s3.us-east-005.backblazeb2.com/clients/abc-123.webp"),
	)
	assert.Equal(t, "", keyFromURL("not a url"))
	assert.Equal(t, "", keyFromURL("https://familyapp.s3.us-east-005.backblazeb2.com/"))
}
