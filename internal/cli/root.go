// Package cli implements the cookconv CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rcliao/cookconv/internal/quantity"
	"github.com/rcliao/cookconv/internal/store"
	"github.com/rcliao/cookconv/internal/unit"
	"github.com/spf13/cobra"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "cookconv",
	Short: "Kitchen measurement converter",
	Long:  "A tiny CLI for converting recipe quantities between units, using per-ingredient conversion facts for volume/weight relationships. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $COOKCONV_DB or ~/.cookconv/cookconv.db)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("COOKCONV_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cookconv", "cookconv.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// parseMeasure reads a measure like "1 cup", "1 1/2 tbsp" or "2 egg/eggs":
// the last token is the unit, everything before it the quantity.
func parseMeasure(s string) (float64, unit.Unit, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, unit.Unit{}, fmt.Errorf("expected \"AMOUNT UNIT\", got %q", s)
	}
	amountText := strings.Join(fields[:len(fields)-1], " ")
	amount, ok := quantity.Parse(amountText)
	if !ok {
		return 0, unit.Unit{}, fmt.Errorf("invalid amount %q", amountText)
	}
	return amount, unit.Parse(fields[len(fields)-1]), nil
}
