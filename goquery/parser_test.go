package goquery_test

import (
	"testing"
	"time"

	"github.com/fwojciec/troubledoc"
	"github.com/fwojciec/troubledoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const troubleshootingPage = `<!DOCTYPE html>
<html>
<head>
<title>Troubleshoot access denied error messages - AWS Documentation</title>
<meta name="description" content="Troubleshoot the causes of access denied errors in AWS.">
<meta name="keywords" content="IAM, access denied, permissions, policy">
<script>window.analytics = {};</script>
</head>
<body>
<nav><a href="/">Home</a></nav>
<div id="main-content">
<h1>Troubleshoot access denied error messages</h1>
<p>When a request fails with Error: AccessDenied, use these steps.</p>
<h2>Resolution</h2>
<ol>
<li>Identify the API caller and confirm the request context</li>
<li>Inspect the policy with <code>aws iam get-user-policy --user-name alice</code> for denied actions</li>
<li>x</li>
</ol>
<h3>Solution for service control policies</h3>
<p>Review the organization policies that apply to the account and remove the explicit deny.</p>
<h2>Example policy</h2>
<pre class="lang-json">{"Version": "2012-10-17", "Statement": []}</pre>
</div>
<footer>About</footer>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	sourceURL := "https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot_access-denied.html"

	content, err := goquery.NewParser().Parse(troubleshootingPage, sourceURL)
	require.NoError(t, err)
	require.NotNil(t, content)

	t.Run("strips vendor suffix from title", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Troubleshoot access denied error messages", content.Title)
	})

	t.Run("reads description and keywords from meta tags", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Troubleshoot the causes of access denied errors in AWS.", content.Description)
		assert.Equal(t, []string{"IAM", "access denied", "permissions", "policy"}, content.Keywords)
	})

	t.Run("derives service from the url path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "iam", content.Service)
	})

	t.Run("classifies category from url and title", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, troubledoc.CategoryAccessDenied, content.Category)
	})

	t.Run("sets fixed provider and guide type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, troubledoc.ProviderAWS, content.Provider)
		assert.Equal(t, troubledoc.GuideTroubleshooting, content.GuideType)
	})

	t.Run("extracts sections from the main content scope", func(t *testing.T) {
		t.Parallel()

		require.Len(t, content.Sections, 4)
		assert.Equal(t, "section-0", content.Sections[0].ID)
		assert.Equal(t, "Troubleshoot access denied error messages", content.Sections[0].Heading)
		assert.Equal(t, 1, content.Sections[0].Level)
		assert.Equal(t, "Resolution", content.Sections[1].Heading)
		assert.Equal(t, "Solution for service control policies", content.Sections[2].Heading)
		assert.Equal(t, 3, content.Sections[2].Level)
		assert.Equal(t, "Example policy", content.Sections[3].Heading)
	})

	t.Run("extracts list and heading steps", func(t *testing.T) {
		t.Parallel()

		require.Len(t, content.Steps, 3)

		assert.Equal(t, 1, content.Steps[0].Number)
		assert.Equal(t, "Identify the API caller and confirm the request context", content.Steps[0].Title)

		assert.Equal(t, 2, content.Steps[1].Number)
		require.NotNil(t, content.Steps[1].Code)
		assert.Equal(t, "aws iam get-user-policy --user-name alice", content.Steps[1].Code.Code)
		assert.Equal(t, "bash", content.Steps[1].Code.Language)

		assert.Equal(t, 3, content.Steps[2].Number)
		assert.Equal(t, "Troubleshooting Procedure", content.Steps[2].Title)
	})

	t.Run("extracts code examples from both passes", func(t *testing.T) {
		t.Parallel()

		require.Len(t, content.CodeExamples, 2)
		assert.Equal(t, "json", content.CodeExamples[0].Language)
		assert.Equal(t, `{"Version": "2012-10-17", "Statement": []}`, content.CodeExamples[0].Code)
		assert.Equal(t, "bash", content.CodeExamples[1].Language)
	})

	t.Run("reserved lists are empty but not nil", func(t *testing.T) {
		t.Parallel()

		assert.NotNil(t, content.Breadcrumbs)
		assert.Empty(t, content.Breadcrumbs)
		assert.NotNil(t, content.RelatedLinks)
		assert.Empty(t, content.RelatedLinks)
	})

	t.Run("records hash and timestamp", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, content.ContentHash, 16)
		assert.WithinDuration(t, time.Now().UTC(), content.LastUpdated, time.Minute)
	})
}

func TestParser_Parse_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("whole document is the scope without a main content container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h2>Troubleshooting</h2><p>Body text.</p></body></html>`

		content, err := goquery.NewParser().Parse(html, "https://docs.aws.amazon.com/vpc/latest/userguide/x.html")
		require.NoError(t, err)

		require.Len(t, content.Sections, 1)
		assert.Equal(t, "Troubleshooting", content.Sections[0].Heading)
	})

	t.Run("missing title falls back to default", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewParser().Parse(`<html><body><p>x</p></body></html>`, "https://docs.aws.amazon.com/vpc/latest/userguide/x.html")
		require.NoError(t, err)

		assert.Equal(t, "AWS Documentation", content.Title)
	})

	t.Run("empty page yields an empty record with defaults", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewParser().Parse("", "https://docs.aws.amazon.com/lambda/latest/dg/missing.html")
		require.NoError(t, err)

		assert.Equal(t, "AWS Documentation", content.Title)
		assert.Equal(t, "lambda", content.Service)
		assert.NotNil(t, content.Sections)
		assert.Empty(t, content.Sections)
		assert.NotNil(t, content.Steps)
		assert.Empty(t, content.Steps)
		assert.NotNil(t, content.CodeExamples)
		assert.Empty(t, content.CodeExamples)
		assert.NotNil(t, content.Keywords)
		assert.Empty(t, content.Keywords)
		assert.Equal(t, troubledoc.CategoryGeneral, content.Category)
	})

	t.Run("title without vendor suffix is kept verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Plain Title</title></head><body></body></html>`

		content, err := goquery.NewParser().Parse(html, "https://docs.aws.amazon.com/vpc/latest/userguide/x.html")
		require.NoError(t, err)

		assert.Equal(t, "Plain Title", content.Title)
	})
}
