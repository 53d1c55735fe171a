package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// configFileName is written by init and found by the default config lookup
const configFileName = "postkit.toml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default postkit.toml in the current directory",
	Long: `Write the default site and scaffold configuration to ./postkit.toml.

This command:
  - Creates postkit.toml with the default theme settings if it doesn't exist
  - Creates the content directory if it doesn't exist

An existing postkit.toml is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := theme.Default()

	err := theme.Write(afero.NewOsFs(), configFileName, cfg)
	switch {
	case err == nil:
		fmt.Printf("✓ Created default config: %s\n", configFileName)
	case errors.Is(err, os.ErrExist):
		fmt.Printf("Config already exists: %s\n", configFileName)
	default:
		return err
	}

	if err := os.MkdirAll(cfg.Scaffold.ContentDir, 0755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	fmt.Printf("✓ Content directory: %s\n", cfg.Scaffold.ContentDir)

	fmt.Println("\n✓ postkit initialized successfully!")
	fmt.Println("  You can now use: postkit new <title>")

	return nil
}
