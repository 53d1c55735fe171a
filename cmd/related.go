package cmd

import (
	"fmt"
	"strings"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/cobra"
)

var (
	relatedJSON bool
	relatedToon bool
)

var relatedCmd = &cobra.Command{
	Use:   "related <slug>",
	Short: "Find posts related to a post",
	Long: `Find posts whose tags are similar to the given post's tags.

The default tags every new post starts with are ignored. Results are
ranked by cosine similarity of the tag sets, scaled to 0-100.

Example:
  postkit related two-sum`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	rootCmd.AddCommand(relatedCmd)

	relatedCmd.Flags().BoolVar(&relatedJSON, "json", false, "Output as JSON")
	relatedCmd.Flags().BoolVar(&relatedToon, "toon", false, "Output in LLM-friendly toon format")
}

func runRelated(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	posts = content.Filter{}.Apply(posts)

	related, err := content.Related(posts, args[0], config.GetDefaultTags())
	if err != nil {
		return err
	}
	if related == nil {
		related = []content.Match{}
	}

	if done, err := printMachine(related, relatedJSON, relatedToon); done {
		return err
	}

	if len(related) == 0 {
		fmt.Println("No related posts found")
		return nil
	}

	fmt.Printf("Found %d related post(s) for %s:\n\n", len(related), args[0])
	for i, r := range related {
		fmt.Printf("%d. %s [score: %d]\n", i+1, r.Post.Doc.Title, r.Score)
		fmt.Printf("   Relationship: %s\n", r.Reason)
		fmt.Printf("   Path:         %s\n", r.Post.Path)
		if len(r.Post.Doc.Tags) > 0 {
			fmt.Printf("   Tags:         %s\n", strings.Join(r.Post.Doc.Tags, ", "))
		}
		fmt.Println()
	}

	return nil
}
