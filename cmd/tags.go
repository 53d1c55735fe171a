package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/spf13/cobra"
)

var (
	tagsJSON  bool
	tagsToon  bool
	tagsRules bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags and tag detection rules",
	Long: `List all tags used across posts with usage counts.

With --rules, print the tags every new post starts with and the keyword
rules that add tags from a post title instead.

Examples:
  postkit tags
  postkit tags --rules
  postkit tags --json`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output as JSON")
	tagsCmd.Flags().BoolVar(&tagsToon, "toon", false, "Output in LLM-friendly toon format")
	tagsCmd.Flags().BoolVar(&tagsRules, "rules", false, "Show default tags and detection rules")
}

type tagInfo struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type tagRules struct {
	Default []string         `json:"default"`
	Rules   []models.TagRule `json:"rules"`
}

func runTags(cmd *cobra.Command, args []string) error {
	if tagsRules {
		return showTagRules()
	}

	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	tagCounts := make(map[string]int)
	for _, p := range posts {
		for _, tag := range p.Doc.Tags {
			tagCounts[tag]++
		}
	}

	tags := []tagInfo{}
	for tag, count := range tagCounts {
		tags = append(tags, tagInfo{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count == tags[j].Count {
			return tags[i].Tag < tags[j].Tag
		}
		return tags[i].Count > tags[j].Count
	})

	if done, err := printMachine(tags, tagsJSON, tagsToon); done {
		return err
	}

	if len(tags) == 0 {
		fmt.Println("No tags found")
		return nil
	}

	fmt.Printf("Found %d tag(s):\n\n", len(tags))
	for _, t := range tags {
		fmt.Printf("  %-30s %3d\n", t.Tag, t.Count)
	}

	return nil
}

func showTagRules() error {
	rules, err := config.GetTagRules()
	if err != nil {
		return err
	}
	info := tagRules{Default: config.GetDefaultTags(), Rules: rules}

	if done, err := printMachine(info, tagsJSON, tagsToon); done {
		return err
	}

	fmt.Printf("Default tags: %s\n", strings.Join(info.Default, ", "))
	if len(info.Rules) == 0 {
		fmt.Println("No detection rules")
		return nil
	}
	fmt.Println("\nDetection rules (keyword in title → tag):")
	for _, r := range info.Rules {
		fmt.Printf("  %-20s → %s\n", r.Keyword, r.Tag)
	}
	return nil
}
