package cmd

import (
	"fmt"

	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/robots"
	"github.com/spf13/cobra"
)

var robotsCmd = &cobra.Command{
	Use:   "robots",
	Short: "Print the generated robots.txt",
	Long: `Print the robots.txt built from site.url and site.base.

Example:
  postkit robots > public/robots.txt`,
	Args: cobra.NoArgs,
	RunE: runRobots,
}

func init() {
	rootCmd.AddCommand(robotsCmd)
}

func runRobots(cmd *cobra.Command, args []string) error {
	cfg, err := config.Theme()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	body, err := robots.Build(cfg.Site.URL, cfg.BasePath())
	if err != nil {
		return fmt.Errorf("failed to build robots.txt: %w", err)
	}
	fmt.Println(body)
	return nil
}
