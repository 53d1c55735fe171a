package cmd

import (
	"fmt"
	"strings"

	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/cobra"
)

var (
	searchLang   string
	searchDrafts bool
	searchJSON   bool
	searchToon   bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search posts by keyword",
	Long: `Search post titles, descriptions, tags and bodies.

Every occurrence of a query word scores 10; a word found in the title adds
50 and one found in a tag adds 30.

Examples:
  postkit search "two pointers"
  postkit search --lang en dynamic programming`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchLang, "lang", "", "Filter by locale")
	searchCmd.Flags().BoolVar(&searchDrafts, "drafts", false, "Include drafts")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	searchCmd.Flags().BoolVar(&searchToon, "toon", false, "Output in LLM-friendly toon format")
}

func runSearch(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	posts = content.Filter{Locale: searchLang, Drafts: searchDrafts}.Apply(posts)

	results := content.Search(posts, strings.Join(args, " "))
	if results == nil {
		results = []content.Match{}
	}

	if done, err := printMachine(results, searchJSON, searchToon); done {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No posts match the search query")
		return nil
	}

	fmt.Printf("Found %d matching post(s):\n\n", len(results))
	for i, r := range results {
		fmt.Printf("%d. %s [score: %d]\n", i+1, r.Post.Doc.Title, r.Score)
		fmt.Printf("   Path:      %s\n", r.Post.Path)
		fmt.Printf("   Published: %s\n", r.Post.Doc.Published.Format("2006-01-02 15:04"))
		if len(r.Post.Doc.Tags) > 0 {
			fmt.Printf("   Tags:      %s\n", strings.Join(r.Post.Doc.Tags, ", "))
		}
		fmt.Println()
	}

	return nil
}
