// Package main is the entry point for the powers and traits builder
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smkun/MarvelPowers/internal/errors"
)

var (
	configPath     string
	variant        string
	powersPath     string
	traitsPath     string
	sessionBackend string
	redisAddr      string
)

var rootCmd = &cobra.Command{
	Use:   "powers",
	Short: "Marvel Multiverse RPG powers and traits builder",
	Long: `Browse the powers and traits catalogs, build a hero's selection,
save it as a session and export it as a printable PDF sheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default "+defaultConfigHint+")")
	flags.StringVar(&variant, "variant", "", "builder variant: combined or powers")
	flags.StringVar(&powersPath, "powers", "", "powers catalog XML file")
	flags.StringVar(&traitsPath, "traits", "", "traits catalog XML file")
	flags.StringVar(&sessionBackend, "session-backend", "", "session storage: file or redis")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for the redis session backend")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(exportCmd)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", errors.GetTitle(err), errors.GetMessage(err))
	var e *errors.Error
	if errors.As(err, &e) && e.Cause != nil && !errors.IsNotice(err) {
		fmt.Fprintf(os.Stderr, "  %v\n", e.Cause)
	}
	if suggestions, ok := errors.GetMeta(err)["suggestions"].([]string); ok && len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
}
