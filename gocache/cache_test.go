package gocache_test

import (
	"testing"
	"time"

	"github.com/fwojciec/troubledoc"
	"github.com/fwojciec/troubledoc/gocache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("misses on unknown url", func(t *testing.T) {
		t.Parallel()

		c := gocache.NewCache()

		got, ok := c.Get("https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot.html")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("returns stored content", func(t *testing.T) {
		t.Parallel()

		c := gocache.NewCache()
		content := &troubledoc.Content{
			Title:     "Troubleshooting IAM",
			SourceURL: "https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot.html",
			Provider:  troubledoc.ProviderAWS,
		}
		c.Put(content.SourceURL, content)

		got, ok := c.Get(content.SourceURL)
		require.True(t, ok)
		assert.Same(t, content, got)
	})

	t.Run("overwrites the previous entry for a url", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.aws.amazon.com/AmazonS3/latest/userguide/troubleshooting.html"
		c := gocache.NewCache()
		c.Put(url, &troubledoc.Content{Title: "First", SourceURL: url})
		c.Put(url, &troubledoc.Content{Title: "Second", SourceURL: url})

		got, ok := c.Get(url)
		require.True(t, ok)
		assert.Equal(t, "Second", got.Title)
	})

	t.Run("serves entries within the ttl", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.aws.amazon.com/lambda/latest/dg/troubleshooting.html"
		c := gocache.NewCache(gocache.WithTTL(time.Hour))
		c.Put(url, &troubledoc.Content{Title: "Lambda", SourceURL: url})

		_, ok := c.Get(url)
		assert.True(t, ok)
	})

	t.Run("refuses entries past the ttl", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.aws.amazon.com/lambda/latest/dg/troubleshooting.html"
		c := gocache.NewCache(gocache.WithTTL(10 * time.Millisecond))
		c.Put(url, &troubledoc.Content{Title: "Lambda", SourceURL: url})

		time.Sleep(30 * time.Millisecond)

		got, ok := c.Get(url)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
