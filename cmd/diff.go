package cmd

import (
	"fmt"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/cobra"
)

var (
	diffJSON bool
	diffToon bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <slug>",
	Short: "Compare the locale variants of a post",
	Long: `Compare the front-matter of the default-locale variant of a post with
each of its translations and show where they drifted apart:
  - Title
  - Publish time
  - Tags
  - Draft, pin and toc flags

Example:
  postkit diff two-sum`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "Output as JSON")
	diffCmd.Flags().BoolVar(&diffToon, "toon", false, "Output in LLM-friendly toon format")
}

func runDiff(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	variants := content.Find(posts, args[0])
	if len(variants) == 0 {
		return fmt.Errorf("post not found: %s", args[0])
	}
	if len(variants) == 1 {
		return fmt.Errorf("post %s has no translation to compare", args[0])
	}

	base := variants[0]
	for _, v := range variants {
		if v.Locale == config.GetLocale() {
			base = v
			break
		}
	}

	diffs := []content.VariantDiff{}
	for _, v := range variants {
		if v.Path != base.Path {
			diffs = append(diffs, content.Compare(base, v))
		}
	}

	if done, err := printMachine(diffs, diffJSON, diffToon); done {
		return err
	}

	fmt.Println("Translation Comparison")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	for _, d := range diffs {
		fmt.Printf("%s → %s\n", d.From.Path, d.To.Path)
		if d.InSync() && !d.TitleChanged {
			fmt.Println("  In sync")
			fmt.Println()
			continue
		}
		if d.TitleChanged {
			fmt.Printf("  Title:     %q → %q\n", d.From.Doc.Title, d.To.Doc.Title)
		}
		if d.PublishedChanged {
			fmt.Printf("  Published: %s → %s\n",
				d.From.Doc.Published.Format("2006-01-02 15:04"),
				d.To.Doc.Published.Format("2006-01-02 15:04"))
		}
		if d.DraftChanged {
			fmt.Printf("  Draft:     %t → %t\n", d.From.Doc.Draft, d.To.Doc.Draft)
		}
		if d.PinChanged {
			fmt.Printf("  Pin:       %d → %d\n", d.From.Doc.Pin, d.To.Doc.Pin)
		}
		if d.TOCChanged {
			fmt.Printf("  TOC:       %t → %t\n", d.From.Doc.TOC, d.To.Doc.TOC)
		}
		if len(d.TagsAdded) > 0 {
			fmt.Printf("  Tags added:   %v\n", d.TagsAdded)
		}
		if len(d.TagsRemoved) > 0 {
			fmt.Printf("  Tags removed: %v\n", d.TagsRemoved)
		}
		fmt.Println()
	}

	return nil
}
