package parser

import (
	"testing"
)

func TestHostsParserMultipleHostnames(t *testing.T) {
	p := NewHostsParser()

	entries := p.Parse("0.0.0.0 a.example.com b.example.com c.example.com", "Adware & Malware")

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"a.example.com", "b.example.com", "c.example.com"}
	for i, e := range entries {
		if e.Hostname != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], e.Hostname)
		}
		if e.Category != "Adware & Malware" {
			t.Errorf("entry %d: expected category 'Adware & Malware', got %q", i, e.Category)
		}
	}
}

func TestHostsParserSkipsCommentsAndBlanks(t *testing.T) {
	p := NewHostsParser()

	content := "# a comment line\n\n   \n## another\n"
	entries := p.Parse(content, "Gambling")

	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestHostsParserIgnoresNonMatchingLines(t *testing.T) {
	p := NewHostsParser()

	content := "::1 localhost\n192.168.1.1 router.lan\njust some text\n"
	entries := p.Parse(content, "Social")

	if len(entries) != 0 {
		t.Errorf("expected no entries for non-sinkhole lines, got %d", len(entries))
	}
}

func TestHostsParserFiltersSystemHosts(t *testing.T) {
	p := NewHostsParser()

	content := "127.0.0.1 localhost\n0.0.0.0 LOCALHOST\n0.0.0.0 broadcasthost ads.example.com\n0.0.0.0 IP6-Loopback\n"
	entries := p.Parse(content, "Porn")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Hostname != "ads.example.com" {
		t.Errorf("expected ads.example.com, got %q", entries[0].Hostname)
	}
}

func TestHostsParserPreservesCase(t *testing.T) {
	p := NewHostsParser()

	entries := p.Parse("0.0.0.0 Ads.Example.COM", "Fake news")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Hostname != "Ads.Example.COM" {
		t.Errorf("expected original case preserved, got %q", entries[0].Hostname)
	}
}

func TestHostsParserInlineComment(t *testing.T) {
	p := NewHostsParser()

	entries := p.Parse("0.0.0.0 ads.example.com#tracker", "Adware & Malware")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Hostname != "ads.example.com" {
		t.Errorf("expected comment stripped, got %q", entries[0].Hostname)
	}
}

func TestHostsParserSampleList(t *testing.T) {
	p := NewHostsParser()

	content := "0.0.0.0 ads.example.com\n0.0.0.0 localhost\n# comment\n127.0.0.1 tracker.example.com"
	entries := p.Parse(content, "Adware & Malware")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Hostname != "ads.example.com" {
		t.Errorf("expected ads.example.com first, got %q", entries[0].Hostname)
	}
	if entries[1].Hostname != "tracker.example.com" {
		t.Errorf("expected tracker.example.com second, got %q", entries[1].Hostname)
	}
	for i, e := range entries {
		if e.Category != "Adware & Malware" {
			t.Errorf("entry %d: expected category 'Adware & Malware', got %q", i, e.Category)
		}
	}
}

func TestDomainsParser(t *testing.T) {
	p := NewDomainsParser()

	content := "# header\nads.example.com\nlocalhost\ntracker.example.com # seen 2026\n\n"
	entries := p.Parse(content, "Ads")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Hostname != "ads.example.com" {
		t.Errorf("expected ads.example.com, got %q", entries[0].Hostname)
	}
	if entries[1].Hostname != "tracker.example.com" {
		t.Errorf("expected inline comment stripped, got %q", entries[1].Hostname)
	}
}

func TestIsSystemHost(t *testing.T) {
	system := []string{
		"localhost", "localhost.localdomain", "local", "broadcasthost",
		"ip6-localhost", "ip6-loopback", "ip6-localnet", "ip6-mcastprefix",
		"ip6-allnodes", "ip6-allrouters", "ip6-allhosts", "0.0.0.0",
	}
	for _, name := range system {
		if !IsSystemHost(name) {
			t.Errorf("expected %q to be a system host", name)
		}
	}

	if IsSystemHost("ads.example.com") {
		t.Error("ads.example.com should not be a system host")
	}
	if !IsSystemHost("BROADCASTHOST") {
		t.Error("system host match should be case-insensitive")
	}
}

func TestForFormat(t *testing.T) {
	if _, err := ForFormat("hosts"); err != nil {
		t.Errorf("unexpected error for hosts format: %v", err)
	}
	if _, err := ForFormat("domains"); err != nil {
		t.Errorf("unexpected error for domains format: %v", err)
	}
	if _, err := ForFormat("adblock"); err == nil {
		t.Error("expected error for unknown format")
	}
}
