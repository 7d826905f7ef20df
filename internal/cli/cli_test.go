package cli

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		format  OutputFormat
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		format, err := parseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFormat(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFormat(%q) failed: %v", tt.input, err)
		}
		if format != tt.format {
			t.Errorf("parseFormat(%q) = %q, expected %q", tt.input, format, tt.format)
		}
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base     string
		href     string
		expected string
	}{
		{
			"https://www.padelfip.com/ranking-male/",
			"/player/agustin-tapia/",
			"https://www.padelfip.com/player/agustin-tapia/",
		},
		{
			"https://www.padelfip.com/ranking-male/",
			"https://other.example.com/player/x/",
			"https://other.example.com/player/x/",
		},
	}

	for _, tt := range tests {
		if got := resolveURL(tt.base, tt.href); got != tt.expected {
			t.Errorf("resolveURL(%q, %q) = %q, expected %q", tt.base, tt.href, got, tt.expected)
		}
	}
}

func TestNewRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"results", "venues", "rankings", "players"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q, got %v (err %v)", name, cmd, err)
		}
	}
}
