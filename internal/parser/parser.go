package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hostdni/host-aggregator/internal/config"
	"github.com/hostdni/host-aggregator/internal/model"
)

// Parser extracts blocked hostnames from a raw blocklist body and tags
// each with the given category.
type Parser interface {
	Parse(content string, category string) []model.Entry
}

// ForFormat returns the parser for a source list format.
func ForFormat(format string) (Parser, error) {
	switch format {
	case config.FormatHosts:
		return NewHostsParser(), nil
	case config.FormatDomains:
		return NewDomainsParser(), nil
	default:
		return nil, fmt.Errorf("no parser for format %q", format)
	}
}

// systemHosts are loopback/system aliases that appear in hosts files but
// are never real blocked hostnames. Matched case-insensitively, exactly
// as enumerated.
var systemHosts = map[string]bool{
	"localhost":             true,
	"localhost.localdomain": true,
	"local":                 true,
	"broadcasthost":         true,
	"ip6-localhost":         true,
	"ip6-loopback":          true,
	"ip6-localnet":          true,
	"ip6-mcastprefix":       true,
	"ip6-allnodes":          true,
	"ip6-allrouters":        true,
	"ip6-allhosts":          true,
	"0.0.0.0":               true,
}

// IsSystemHost reports whether a hostname is a loopback/system alias
// that should never appear in the output.
func IsSystemHost(hostname string) bool {
	return systemHosts[strings.ToLower(hostname)]
}

// ---------------------------------------------------------------------------
// Hosts Parser (IP hostname [hostname ...] lines)
// ---------------------------------------------------------------------------

// HostsParser handles the classic hosts-file layout: lines mapping a
// sinkhole address to one or more hostnames, e.g. "0.0.0.0 ads.example.com".
type HostsParser struct {
	re *regexp.Regexp
}

func NewHostsParser() *HostsParser {
	return &HostsParser{
		re: regexp.MustCompile(`^(0\.0\.0\.0|127\.0\.0\.1)\s+(.+)$`),
	}
}

// Parse walks content line by line and emits one Entry per hostname.
// Blank lines and comment lines are skipped; inline comments are stripped
// per token; system aliases are filtered out. Emission order follows line
// order, then within-line token order. Hostname case is preserved.
func (p *HostsParser) Parse(content string, category string) []model.Entry {
	var entries []model.Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		for _, token := range strings.Fields(m[2]) {
			// Truncate at the first '#' to drop trailing inline comments.
			if i := strings.Index(token, "#"); i >= 0 {
				token = token[:i]
			}
			hostname := strings.TrimSpace(token)
			if hostname == "" || IsSystemHost(hostname) {
				continue
			}
			entries = append(entries, model.Entry{
				Hostname: hostname,
				Category: category,
			})
		}
	}

	return entries
}

// ---------------------------------------------------------------------------
// Domains Parser (one hostname per line)
// ---------------------------------------------------------------------------

// DomainsParser handles plain domain lists: one hostname per line, with
// the same comment and system-alias handling as the hosts layout.
type DomainsParser struct{}

func NewDomainsParser() *DomainsParser { return &DomainsParser{} }

func (p *DomainsParser) Parse(content string, category string) []model.Entry {
	var entries []model.Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		hostname := strings.TrimSpace(line)
		if hostname == "" || IsSystemHost(hostname) {
			continue
		}
		entries = append(entries, model.Entry{
			Hostname: hostname,
			Category: category,
		})
	}

	return entries
}
