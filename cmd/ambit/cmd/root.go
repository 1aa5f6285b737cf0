package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ambit",
	Short: "Ambit language interpreter",
	Long: `ambit is a tree-walking interpreter for the Ambit scripting language:
lexically-scoped mutable/immutable variables, first-class functions with
partial application and composition, and a runtime execution trace.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{printf "ambit version %%s"  .Version}}
Commit: %s
`, GitCommit))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted but has no effect on output")
}
