package urlgrammar

import "strings"

// Components holds the parts of a validated URL.
type Components struct {
	Scheme    string `json:"scheme"`
	Authority string `json:"authority"`
	Path      string `json:"path"`
	Query     string `json:"query"`
	Fragment  string `json:"fragment"`
}

// Split extracts the components of a URL the grammar has already accepted.
// It returns false when the URL has no "://" separator and so cannot be
// decomposed.
func Split(url string) (Components, bool) {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return Components{}, false
	}

	c := Components{Scheme: scheme}

	// The authority ends at the first path, query or fragment delimiter.
	end := len(rest)
	for _, d := range []string{"/", "?", "#"} {
		if i := strings.Index(rest, d); i != -1 && i < end {
			end = i
		}
	}
	c.Authority = rest[:end]

	if i := strings.Index(rest, "/"); i != -1 {
		pathEnd := len(rest)
		for _, d := range []string{"?", "#"} {
			if j := strings.Index(rest, d); j != -1 && j < pathEnd {
				pathEnd = j
			}
		}
		if i < pathEnd {
			c.Path = rest[i:pathEnd]
		}
	}
	if i := strings.Index(rest, "?"); i != -1 {
		queryEnd := len(rest)
		if j := strings.Index(rest, "#"); j != -1 && j > i {
			queryEnd = j
		}
		c.Query = rest[i:queryEnd]
	}
	if i := strings.Index(rest, "#"); i != -1 {
		c.Fragment = rest[i:]
	}

	return c, true
}

// RejectionReason explains, in user-facing terms, why a URL failed
// validation. It is heuristic: it inspects the raw string rather than the
// automaton trace, mirroring the progressive checks a person would make.
func RejectionReason(url string) string {
	if url == "" {
		return "URL cannot be empty"
	}
	if !strings.HasPrefix(url, "http") {
		return "URL must start with 'http' or 'https'"
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "Invalid URL scheme (expected 'http://' or 'https://')"
	}
	_, rest, _ := strings.Cut(url, "://")
	if rest == "" {
		return "Missing domain after scheme"
	}
	domain, _, _ := strings.Cut(rest, "/")
	if domain == "" || strings.HasPrefix(domain, ".") {
		return "Invalid domain name"
	}
	return "URL format is invalid. Please ensure it follows the pattern: http(s)://domain.com/path?query#fragment"
}
