package cmd

import (
	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/content"
	"github.com/spf13/afero"
)

// loadPosts reads every post in the configured content directory
func loadPosts() ([]content.Post, error) {
	return content.Load(afero.NewOsFs(), config.GetContentDir(), config.GetLocale())
}
