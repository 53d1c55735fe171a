package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/radikecosa/postkit/internal/testutil"
	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/viper"
)

// setupSite chdirs into a fresh site with default configuration and
// resets every command flag
func setupSite(t *testing.T) *testutil.TempSite {
	t.Helper()

	site := testutil.NewTempSite(t)
	t.Cleanup(site.Cleanup)
	site.Chdir()

	viper.Reset()
	theme.SetDefaults(viper.GetViper())
	t.Cleanup(viper.Reset)

	resetFlags()
	return site
}

func resetFlags() {
	newBilingual, newContentDir, newStage, newJSON, newToon = false, "", false, false, false
	listTag, listLang, listDrafts, listJSON, listToon = "", "", false, false, false
	statsJSON, statsToon = false, false
	tagsJSON, tagsToon, tagsRules = false, false, false
	searchLang, searchDrafts, searchJSON, searchToon = "", false, false, false
	relatedJSON, relatedToon = false, false
	diffJSON, diffToon = false, false
	serveAddr = ":4321"
}

// captureStdout runs fn with os.Stdout redirected and returns what it printed
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		out, _ := io.ReadAll(r)
		done <- string(out)
	}()

	runErr := fn()
	w.Close()
	os.Stdout = old
	return <-done, runErr
}
