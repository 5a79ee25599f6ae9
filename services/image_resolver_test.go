package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAbsoluteURLsPassThrough(t *testing.T) {
	// Absolute references never touch S3, so no client is needed.
	r := &S3ImageResolver{Bucket: "pics"}

	for _, ref := range []string{
		"http://pics.example.com/a.jpg",
		"https://pics.example.com/a.jpg",
	} {
		url, err := r.Resolve(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, ref, url)
	}
}
