package cmd

import (
	"fmt"
	"os"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/git"
	"github.com/radikecosa/postkit/internal/logger"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/radikecosa/postkit/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	newBilingual  bool
	newContentDir string
	newStage      bool
	newJSON       bool
	newToon       bool
)

var newCmd = &cobra.Command{
	Use:   "new [pathOrTitle]",
	Short: "Create a new post with generated front-matter",
	Long: `Create a new post under the content directory.

The argument is a title or a path. Its last element, without a .md or .mdx
extension, becomes the title; the slug is derived from it and used as the
abbrlink. Tags start with the configured defaults and gain every rule whose
keyword appears in the title.

Single mode (default) writes <content-dir>/<dir>/<title><ext>.
Bilingual mode writes <content-dir>/<slug>.md for the primary locale and
<content-dir>/<slug>.<locale>.md for the secondary one.

Existing files are never overwritten: if any target exists, nothing is
written.

Examples:
  postkit new "Two Sum"
  postkit new leetcode/two-sum.mdx
  postkit new --bilingual "LeetCode 1 Two Sum"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVar(&newBilingual, "bilingual", false, "Create the primary and secondary locale files")
	newCmd.Flags().StringVar(&newContentDir, "content-dir", "", "Override the content directory")
	newCmd.Flags().BoolVar(&newStage, "stage", false, "git add the created files")
	newCmd.Flags().BoolVar(&newJSON, "json", false, "Output as JSON")
	newCmd.Flags().BoolVar(&newToon, "toon", false, "Output in LLM-friendly toon format")
}

func runNew(cmd *cobra.Command, args []string) error {
	opts, err := config.ScaffoldOptions()
	if err != nil {
		return err
	}
	if newContentDir != "" {
		opts.ContentDir = newContentDir
	}

	mode := models.ModeSingle
	if newBilingual {
		mode = models.ModeBilingual
	}

	raw := ""
	if len(args) > 0 {
		raw = args[0]
	}

	result, err := scaffold.Scaffold(afero.NewOsFs(), raw, mode, opts)
	if result != nil && !newJSON && !newToon {
		for _, t := range result.Written {
			fmt.Printf("✓ Post created: %s\n", t.Path)
		}
	}
	if err != nil {
		logger.Error("scaffold failed", err, map[string]interface{}{"input": raw, "mode": mode})
		return err
	}

	logger.Info("post scaffolded", map[string]interface{}{
		"slug":  result.Request.Slug,
		"mode":  mode,
		"files": len(result.Written),
	})

	if newStage {
		stageWritten(result.Written)
	}

	if _, err := printMachine(result, newJSON, newToon); err != nil {
		return err
	}
	return nil
}

// stageWritten adds the new files to the git index. Failing to stage does
// not undo the scaffold.
func stageWritten(targets []scaffold.Target) {
	if !git.IsGitRepo(".") {
		fmt.Fprintln(os.Stderr, "Warning: not a git repository, files not staged")
		return
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		paths = append(paths, t.Path)
	}
	if err := git.AddFiles(".", paths...); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to stage files: %v\n", err)
		return
	}
	if !newJSON && !newToon {
		fmt.Printf("✓ Staged %d file(s)\n", len(paths))
	}
}
