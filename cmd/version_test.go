package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		checkOutput func(string) bool
	}{
		{
			name:    "version command shows version info",
			args:    []string{"version"},
			wantErr: false,
			checkOutput: func(output string) bool {
				return strings.Contains(output, "Podcastr") &&
					strings.Contains(output, "Version:      v"+Version) &&
					strings.Contains(output, "Git Commit:   "+GitCommit) &&
					strings.Contains(output, "Episodes API: http://localhost:3333") &&
					strings.Contains(output, "Page Cache:   memory, revalidate 24h0m0s")
			},
		},
		{
			name:    "version command with --short flag",
			args:    []string{"version", "--short"},
			wantErr: false,
			checkOutput: func(output string) bool {
				return output == "v"+Version+"\n"
			},
		},
		{
			name:    "version command with --json flag",
			args:    []string{"version", "--json"},
			wantErr: false,
			checkOutput: func(output string) bool {
				var info map[string]string
				if err := json.Unmarshal([]byte(output), &info); err != nil {
					return false
				}
				return info["version"] == Version && info["commit"] == GitCommit && info["buildTime"] == BuildTime
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.checkOutput != nil && !tt.checkOutput(output) {
				t.Errorf("Output check failed: %q", output)
			}
		})
	}
}

func TestVersionCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	versionCmd, _, err := cmd.Find([]string{"version"})
	if err != nil {
		t.Fatalf("Failed to find version command: %v", err)
	}

	for _, name := range []string{"short", "json"} {
		if versionCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %s flag to be registered", name)
		}
	}
}
