package cmd

import (
	"fmt"
	"strings"

	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/cobra"
)

var (
	listTag    string
	listLang   string
	listDrafts bool
	listJSON   bool
	listToon   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts in the content directory",
	Long: `List posts with optional filtering. Pinned posts come first, then the
newest. Drafts are hidden unless --drafts is given.

Examples:
  postkit list
  postkit list --tag leetcode
  postkit list --lang en --drafts`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&listLang, "lang", "", "Filter by locale")
	listCmd.Flags().BoolVar(&listDrafts, "drafts", false, "Include drafts")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

func runList(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	filter := content.Filter{Tag: listTag, Locale: listLang, Drafts: listDrafts}
	posts = filter.Apply(posts)

	if done, err := printMachine(posts, listJSON, listToon); done {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	fmt.Printf("Found %d post(s):\n\n", len(posts))
	for _, p := range posts {
		fmt.Printf("  %s\n", p.Doc.Title)
		fmt.Printf("    Path:      %s\n", p.Path)
		fmt.Printf("    Lang:      %s\n", p.Locale)
		fmt.Printf("    Published: %s\n", p.Doc.Published.Format("2006-01-02 15:04"))
		if len(p.Doc.Tags) > 0 {
			fmt.Printf("    Tags:      %s\n", strings.Join(p.Doc.Tags, ", "))
		}
		if p.Doc.Draft {
			fmt.Println("    Draft")
		}
		if p.Doc.Pin > 0 {
			fmt.Printf("    Pinned:    %d\n", p.Doc.Pin)
		}
		fmt.Println()
	}

	return nil
}
