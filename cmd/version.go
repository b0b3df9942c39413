package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/pkg/config"
	"github.com/spf13/cobra"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about Podcastr.

This includes the version number, git commit hash and build time, the
episodes API and page cache the configuration points at, and runtime
information. --json prints the same build info GET / returns.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print build info as JSON")
}

// buildInfo is the build identity reported by the CLI and the API
func buildInfo() types.BuildInfo {
	return types.BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", Version)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(buildInfo())
	}

	fmt.Fprintln(out, "Podcastr")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", BuildTime)

	// Configuration problems are reported, not fatal
	if err := config.Init(); err != nil {
		fmt.Fprintf(out, "Config:       invalid (%v)\n", err)
	} else if cfg, err := config.GetConfig(); err == nil {
		fmt.Fprintf(out, "Episodes API: %s\n", cfg.Upstream.BaseURL)
		fmt.Fprintf(out, "Page Cache:   %s, revalidate %s\n", cfg.Cache.Driver, cfg.Cache.Revalidate)
		fmt.Fprintf(out, "Site:         %s (%s)\n", cfg.Site.URL, cfg.Site.Locale)
	}

	fmt.Fprintf(out, "Go Version:   %s\n", GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", OS, Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	return nil
}
