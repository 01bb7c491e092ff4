package troubledoc

import (
	"net/url"
	"strings"
)

// ServiceDoc describes one service's troubleshooting documentation
// surface: where its guide lives and which pages to probe. Candidate
// pages that do not exist (404) are expected and skipped.
type ServiceDoc struct {
	// ID is the canonical lower-case service identifier (e.g. "iam").
	ID string

	// Name is the human-readable service name.
	Name string

	// BaseURL is the documentation guide root, without a trailing slash.
	BaseURL string

	// Pages are the troubleshooting page paths probed under BaseURL.
	Pages []string
}

// CandidateURLs returns the absolute URLs to probe for the service, in
// the fixed enumeration order searches observe.
func (s ServiceDoc) CandidateURLs() []string {
	urls := make([]string, 0, len(s.Pages))
	for _, p := range s.Pages {
		urls = append(urls, s.BaseURL+p)
	}
	return urls
}

// Catalog is a fixed, ordered set of service documentation descriptors.
// Searches iterate services in catalog order, so enumeration order is
// deterministic across runs.
type Catalog []ServiceDoc

// Services returns the canonical service ids in catalog order.
func (c Catalog) Services() []string {
	ids := make([]string, 0, len(c))
	for _, s := range c {
		ids = append(ids, s.ID)
	}
	return ids
}

// Resolve returns the service matching the given name. The name is
// normalized through the documentation alias table, so both canonical ids
// ("s3") and guide path names ("AmazonS3") resolve.
// Returns ENOTFOUND if no service matches.
func (c Catalog) Resolve(name string) (ServiceDoc, error) {
	id := NormalizeService(name)
	for _, s := range c {
		if s.ID == id {
			return s, nil
		}
	}
	return ServiceDoc{}, Errorf(ENOTFOUND, "service %q not found", name)
}

// serviceAliases maps lower-cased documentation path names to canonical
// service ids. Guide URLs embed historical names (AWSEC2, AmazonS3) that
// differ from the ids users search by.
var serviceAliases = map[string]string{
	"awsiam":            "iam",
	"amazons3":          "s3",
	"awsec2":            "ec2",
	"awslambda":         "lambda",
	"amazonrds":         "rds",
	"amazondynamodb":    "dynamodb",
	"awscloudformation": "cloudformation",
	"amazonvpc":         "vpc",
	"amazoncloudwatch":  "cloudwatch",
}

// NormalizeService maps a service name or URL path segment to its
// canonical id: lower-cased, then passed through the alias table.
// Unknown names are returned lower-cased as-is.
func NormalizeService(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := serviceAliases[id]; ok {
		return canonical
	}
	return id
}

// ServiceFromURL derives a service id from a documentation URL: the first
// path segment after the host, normalized through the alias table.
// Returns an empty string when the URL has no path.
func ServiceFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	seg := strings.Trim(u.Path, "/")
	if i := strings.Index(seg, "/"); i >= 0 {
		seg = seg[:i]
	}
	if seg == "" {
		return ""
	}
	return NormalizeService(seg)
}

// DefaultCatalog returns the built-in AWS service catalog. The page lists
// are static; candidates that 404 are simply absent for that service.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:      "iam",
			Name:    "AWS Identity and Access Management",
			BaseURL: "https://docs.aws.amazon.com/IAM/latest/UserGuide",
			Pages: []string{
				"/troubleshoot.html",
				"/troubleshoot_general.html",
				"/troubleshoot_access-denied.html",
				"/troubleshoot_policies.html",
				"/troubleshoot_roles.html",
			},
		},
		{
			ID:      "s3",
			Name:    "Amazon Simple Storage Service",
			BaseURL: "https://docs.aws.amazon.com/AmazonS3/latest/userguide",
			Pages: []string{
				"/troubleshooting.html",
				"/troubleshoot-403-errors.html",
				"/replication-troubleshoot.html",
				"/troubleshoot-endpoints.html",
			},
		},
		{
			ID:      "ec2",
			Name:    "Amazon Elastic Compute Cloud",
			BaseURL: "https://docs.aws.amazon.com/AWSEC2/latest/UserGuide",
			Pages: []string{
				"/ec2-instance-troubleshoot.html",
				"/TroubleshootingInstances.html",
				"/TroubleshootingInstancesConnecting.html",
				"/troubleshooting-launch.html",
			},
		},
		{
			ID:      "lambda",
			Name:    "AWS Lambda",
			BaseURL: "https://docs.aws.amazon.com/lambda/latest/dg",
			Pages: []string{
				"/lambda-troubleshooting.html",
				"/troubleshooting-invocation.html",
				"/troubleshooting-execution.html",
				"/troubleshooting-deployment.html",
			},
		},
		{
			ID:      "rds",
			Name:    "Amazon Relational Database Service",
			BaseURL: "https://docs.aws.amazon.com/AmazonRDS/latest/UserGuide",
			Pages: []string{
				"/CHAP_Troubleshooting.html",
				"/TroubleshootConnect.html",
			},
		},
		{
			ID:      "dynamodb",
			Name:    "Amazon DynamoDB",
			BaseURL: "https://docs.aws.amazon.com/amazondynamodb/latest/developerguide",
			Pages: []string{
				"/Troubleshooting.html",
				"/TroubleshootingLatency.html",
				"/TroubleshootingThrottling.html",
			},
		},
		{
			ID:      "cloudformation",
			Name:    "AWS CloudFormation",
			BaseURL: "https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide",
			Pages: []string{
				"/troubleshooting.html",
				"/troubleshooting-errors.html",
			},
		},
		{
			ID:      "vpc",
			Name:    "Amazon Virtual Private Cloud",
			BaseURL: "https://docs.aws.amazon.com/vpc/latest/userguide",
			Pages: []string{
				"/vpc-troubleshooting.html",
				"/troubleshoot-connectivity.html",
			},
		},
		{
			ID:      "cloudwatch",
			Name:    "Amazon CloudWatch",
			BaseURL: "https://docs.aws.amazon.com/AmazonCloudWatch/latest/monitoring",
			Pages: []string{
				"/CloudWatch-troubleshooting.html",
				"/CloudWatch-Agent-troubleshooting.html",
			},
		},
	}
}
