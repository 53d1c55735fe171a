package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/cobra"
)

var (
	statsJSON bool
	statsToon bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show content statistics",
	Long: `Display statistics about the posts in the content directory:
  - Total posts and distinct slugs
  - Posts by locale
  - Tag usage
  - Monthly publishing activity
  - Slugs missing a translation

Examples:
  postkit stats
  postkit stats --json
  postkit stats --toon`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsToon, "toon", false, "Output in LLM-friendly toon format")
}

type contentStats struct {
	TotalPosts      int             `json:"total_posts"`
	TotalSlugs      int             `json:"total_slugs"`
	Drafts          int             `json:"drafts"`
	Pinned          int             `json:"pinned"`
	ByLocale        map[string]int  `json:"by_locale"`
	ByTag           map[string]int  `json:"by_tag"`
	OldestPost      *time.Time      `json:"oldest_post,omitempty"`
	NewestPost      *time.Time      `json:"newest_post,omitempty"`
	TopTags         []tagStat       `json:"top_tags"`
	MonthlyActivity []monthActivity `json:"monthly_activity"`
	Untranslated    []string        `json:"untranslated"`
}

type tagStat struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type monthActivity struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

func runStats(cmd *cobra.Command, args []string) error {
	posts, err := loadPosts()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	cfg, err := config.Theme()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	stats := collectStats(posts, cfg.AllLocales())

	if done, err := printMachine(stats, statsJSON, statsToon); done {
		return err
	}

	fmt.Println("Content Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	fmt.Printf("Total Posts: %d (%d slugs)\n", stats.TotalPosts, stats.TotalSlugs)
	if stats.OldestPost != nil && stats.NewestPost != nil {
		fmt.Printf("Date Range:  %s to %s\n",
			stats.OldestPost.Format("2006-01-02"),
			stats.NewestPost.Format("2006-01-02"))
	}
	fmt.Printf("Drafts:      %d\n", stats.Drafts)
	fmt.Printf("Pinned:      %d\n", stats.Pinned)
	fmt.Println()

	if stats.TotalPosts == 0 {
		return nil
	}

	fmt.Println("By Locale:")
	locales := make([]string, 0, len(stats.ByLocale))
	for l := range stats.ByLocale {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		count := stats.ByLocale[l]
		percentage := float64(count) / float64(stats.TotalPosts) * 100
		fmt.Printf("  %-8s %3d  (%.1f%%)\n", l, count, percentage)
	}
	fmt.Println()

	if len(stats.TopTags) > 0 {
		fmt.Println("Top Tags:")
		limit := 10
		if len(stats.TopTags) < limit {
			limit = len(stats.TopTags)
		}
		for i := 0; i < limit; i++ {
			ts := stats.TopTags[i]
			fmt.Printf("  %-20s %3d\n", ts.Tag, ts.Count)
		}
		fmt.Println()
	}

	if len(stats.MonthlyActivity) > 0 {
		fmt.Println("Recent Activity:")
		limit := 6
		if len(stats.MonthlyActivity) < limit {
			limit = len(stats.MonthlyActivity)
		}
		for i := 0; i < limit; i++ {
			ma := stats.MonthlyActivity[i]
			n := ma.Count
			if n > 20 {
				n = 20
			}
			fmt.Printf("  %s  %3d  %s\n", ma.Month, ma.Count, strings.Repeat("█", n))
		}
		fmt.Println()
	}

	if len(stats.Untranslated) > 0 {
		fmt.Println("Missing Translation:")
		for _, slug := range stats.Untranslated {
			fmt.Printf("  %s\n", slug)
		}
	}

	return nil
}

func collectStats(posts []content.Post, locales []string) contentStats {
	stats := contentStats{
		TotalPosts:   len(posts),
		ByLocale:     make(map[string]int),
		ByTag:        make(map[string]int),
		TopTags:      []tagStat{},
		Untranslated: []string{},
	}

	byMonth := make(map[string]int)
	for _, p := range posts {
		stats.ByLocale[p.Locale]++
		for _, tag := range p.Doc.Tags {
			stats.ByTag[tag]++
		}
		if p.Doc.Draft {
			stats.Drafts++
		}
		if p.Doc.Pin > 0 {
			stats.Pinned++
		}

		published := p.Doc.Published
		if published.IsZero() {
			continue
		}
		byMonth[published.Format("2006-01")]++
		if stats.OldestPost == nil || published.Before(*stats.OldestPost) {
			t := published
			stats.OldestPost = &t
		}
		if stats.NewestPost == nil || published.After(*stats.NewestPost) {
			t := published
			stats.NewestPost = &t
		}
	}

	for tag, count := range stats.ByTag {
		stats.TopTags = append(stats.TopTags, tagStat{Tag: tag, Count: count})
	}
	sort.Slice(stats.TopTags, func(i, j int) bool {
		if stats.TopTags[i].Count != stats.TopTags[j].Count {
			return stats.TopTags[i].Count > stats.TopTags[j].Count
		}
		return stats.TopTags[i].Tag < stats.TopTags[j].Tag
	})

	for month, count := range byMonth {
		stats.MonthlyActivity = append(stats.MonthlyActivity, monthActivity{Month: month, Count: count})
	}
	sort.Slice(stats.MonthlyActivity, func(i, j int) bool {
		return stats.MonthlyActivity[i].Month > stats.MonthlyActivity[j].Month
	})

	groups := content.GroupBySlug(posts)
	stats.TotalSlugs = len(groups)
	for _, g := range groups {
		have := make(map[string]bool)
		for _, v := range g.Variants {
			have[v.Locale] = true
		}
		for _, l := range locales {
			if !have[l] {
				stats.Untranslated = append(stats.Untranslated, g.Slug)
				break
			}
		}
	}
	sort.Strings(stats.Untranslated)

	return stats
}
