package cmd

import (
	"strings"
	"testing"

	"github.com/kavery/platewise/internal/catalog"
)

func TestStartupSelfCheckIsWired(t *testing.T) {
	if rootCmd.PersistentPreRunE == nil {
		t.Fatal("no startup catalog self-check on the root command")
	}
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("seed catalog failed the startup self-check: %v", err)
	}
}

func TestStartupSelfCheckRejectsBrokenContent(t *testing.T) {
	// Empty content fails every catalog invariant; commands must never
	// see a catalog like this.
	err := checkCatalog(catalog.NewFrom(catalog.Content{}))
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if !strings.Contains(err.Error(), "catalog self-check") {
		t.Errorf("error %q does not name the self-check", err)
	}
}
