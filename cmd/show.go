package cmd

import (
	"fmt"
	"os"

	"github.com/radikecosa/postkit/internal/content"
	"github.com/radikecosa/postkit/internal/frontmatter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show the front-matter of a post",
	Long: `Print the front-matter of every locale variant of a post, exactly as it
is written in each file.

Example:
  postkit show two-sum`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	variants := content.Find(posts, args[0])
	if len(variants) == 0 {
		return fmt.Errorf("post not found: %s", args[0])
	}

	fsys := afero.NewOsFs()
	for i, p := range variants {
		data, err := afero.ReadFile(fsys, p.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", p.Path, err)
			continue
		}
		block, err := frontmatter.Block(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read front-matter of %s: %v\n", p.Path, err)
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("# %s\n", p.Path)
		fmt.Print(string(block))
	}

	return nil
}
