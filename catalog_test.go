package troubledoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/troubledoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical id unchanged", "iam", "iam"},
		{"upper-cased guide name", "IAM", "iam"},
		{"amazon prefix alias", "AmazonS3", "s3"},
		{"aws prefix alias", "AWSEC2", "ec2"},
		{"cloudformation guide name", "AWSCloudFormation", "cloudformation"},
		{"dynamodb guide name", "amazondynamodb", "dynamodb"},
		{"unknown name lower-cased", "Glacier", "glacier"},
		{"surrounding whitespace trimmed", "  s3  ", "s3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, troubledoc.NormalizeService(tt.in))
		})
	}
}

func TestServiceFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "first path segment normalized",
			url:  "https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot.html",
			want: "iam",
		},
		{
			name: "aliased guide segment",
			url:  "https://docs.aws.amazon.com/AmazonS3/latest/userguide/troubleshooting.html",
			want: "s3",
		},
		{
			name: "single segment path",
			url:  "https://docs.aws.amazon.com/lambda",
			want: "lambda",
		},
		{
			name: "no path",
			url:  "https://docs.aws.amazon.com",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, troubledoc.ServiceFromURL(tt.url))
		})
	}
}

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	catalog := troubledoc.DefaultCatalog()

	t.Run("resolves canonical id", func(t *testing.T) {
		t.Parallel()

		svc, err := catalog.Resolve("iam")
		require.NoError(t, err)
		assert.Equal(t, "iam", svc.ID)
	})

	t.Run("resolves documentation alias", func(t *testing.T) {
		t.Parallel()

		svc, err := catalog.Resolve("AmazonS3")
		require.NoError(t, err)
		assert.Equal(t, "s3", svc.ID)
	})

	t.Run("unknown service returns not found", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Resolve("nosuchservice")
		assert.Equal(t, troubledoc.ENOTFOUND, troubledoc.ErrorCode(err))
	})
}

func TestServiceDocCandidateURLs(t *testing.T) {
	t.Parallel()

	svc := troubledoc.ServiceDoc{
		ID:      "iam",
		BaseURL: "https://docs.aws.amazon.com/IAM/latest/UserGuide",
		Pages:   []string{"/troubleshoot.html", "/troubleshoot_general.html"},
	}

	urls := svc.CandidateURLs()

	assert.Equal(t, []string{
		"https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot.html",
		"https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot_general.html",
	}, urls)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := troubledoc.DefaultCatalog()
	require.NotEmpty(t, catalog)

	t.Run("service ids are unique and normalized", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for _, svc := range catalog {
			assert.Equal(t, strings.ToLower(svc.ID), svc.ID)
			assert.False(t, seen[svc.ID], "duplicate service id %q", svc.ID)
			seen[svc.ID] = true
		}
	})

	t.Run("every service has candidate pages", func(t *testing.T) {
		t.Parallel()

		for _, svc := range catalog {
			assert.NotEmpty(t, svc.Pages, "service %q has no pages", svc.ID)
			assert.False(t, strings.HasSuffix(svc.BaseURL, "/"), "service %q base URL has trailing slash", svc.ID)
		}
	})

	t.Run("candidate urls derive from the service guide", func(t *testing.T) {
		t.Parallel()

		for _, svc := range catalog {
			for _, u := range svc.CandidateURLs() {
				assert.Equal(t, svc.ID, troubledoc.ServiceFromURL(u), "url %q", u)
			}
		}
	})
}
