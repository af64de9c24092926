package validate

import (
	"regexp"

	"github.com/rbaliev/dfakit/pkg/urlgrammar"
)

// IssueKind labels a class of suspicious content found in a URL.
type IssueKind string

const (
	IssueSQLInjection       IssueKind = "sql_injection"
	IssueXSS                IssueKind = "xss"
	IssuePathTraversal      IssueKind = "path_traversal"
	IssueCommandInjection   IssueKind = "command_injection"
	IssueSuspiciousChars    IssueKind = "suspicious_chars"
	IssueProtocolViolation  IssueKind = "protocol_violation"
	IssueOpenRedirect       IssueKind = "open_redirect"
	IssueExcessiveLength    IssueKind = "excessive_length"
)

// Component length ceilings beyond which a URL is flagged.
const (
	maxPathLen  = 255
	maxQueryLen = 1024
)

var securityPatterns = map[IssueKind]*regexp.Regexp{
	IssueSQLInjection:      regexp.MustCompile(`(?i)(\b(select|insert|update|delete|drop|union|exec|declare|script)\b)|(--)|(%27)|(')|(")|(/\*)|(\*/)`),
	IssueXSS:               regexp.MustCompile(`(?i)(<script>)|(javascript:)|(\balert\s*\()|(\beval\s*\()|(\bexec\s*\()|(\bonload\s*=)|(\bonerror\s*=)`),
	IssuePathTraversal:     regexp.MustCompile(`(?i)(\.\./)|(\.\.\\)|(\.\.%2f)|(\.\.%5c)`),
	IssueCommandInjection:  regexp.MustCompile("(?i)(\\|\\s*[\\w\\-]+)|(;\\s*[\\w\\-]+)|(`[^`]*`)"),
	IssueSuspiciousChars:   regexp.MustCompile(`(?i)(\\x[0-9a-fA-F]{2})|(\\u[0-9a-fA-F]{4})|(\\[0-7]{3})`),
	IssueProtocolViolation: regexp.MustCompile(`(?i)(http[^:]*(:|%3A)(//|%2F%2F))`),
	IssueOpenRedirect:      regexp.MustCompile(`(?i)(url=)|(redirect=)|(return=)|(next=)|(to=)|(link=)|(goto=)`),
}

// scanIssues applies every pattern to the raw URL and adds length findings
// for the given components (nil when the URL could not be decomposed).
func scanIssues(url string, comps *urlgrammar.Components) map[IssueKind][]string {
	issues := make(map[IssueKind][]string)
	for kind, re := range securityPatterns {
		matches := re.FindAllStringIndex(url, -1)
		var found []string
		for _, m := range matches {
			// A URL's own scheme is not a protocol violation; only embedded
			// schemes (double-protocol smuggling) count.
			if kind == IssueProtocolViolation && m[0] == 0 {
				continue
			}
			found = append(found, url[m[0]:m[1]])
		}
		if len(found) > 0 {
			issues[kind] = found
		}
	}
	if comps != nil {
		if len(comps.Path) > maxPathLen {
			issues[IssueExcessiveLength] = append(issues[IssueExcessiveLength], "path")
		}
		if len(comps.Query) > maxQueryLen {
			issues[IssueExcessiveLength] = append(issues[IssueExcessiveLength], "query")
		}
	}
	return issues
}
