package cmd

import (
	"fmt"

	"github.com/killallgit/podcastr/internal/export"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// exportFs is where generate writes; tests swap in a memory filesystem
var exportFs = afero.NewOsFs()

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [slug...]",
	Short: "Export episode pages to a directory",
	Long: `Render the latest episodes, plus any slugs given as arguments, to
static HTML files under the output directory.

Each page is written to episodes/{slug}/index.html next to a paths.json
manifest. Any failure aborts the export.

Example:
  podcastr generate
  podcastr generate --out ./public a-importancia-da-contribuicao-em-open-source`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", "", "output directory (overrides export.out_dir)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.Export.OutDir
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	exporter := export.New(exportFs, deps.EpisodeService, deps.Renderer)
	result, err := exporter.Export(cmdContext(cmd), outDir, args...)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"out":      result.OutDir,
		"pages":    len(result.Pages),
		"fallback": result.Fallback,
	}).Info("export complete")

	out := cmd.OutOrStdout()
	for _, page := range result.Pages {
		fmt.Fprintln(out, page)
	}
	fmt.Fprintf(out, "%d pages written to %s\n", len(result.Pages), result.OutDir)

	return nil
}
