// Package cmd wires the archpick CLI. The commands are thin collaborators
// around internal/selector: they gather asset names, hand them to the
// selection core, and print the ordered result.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFormat string
	configPath   string
)

func Execute(version, commit, date string) error {
	rootCmd := &cobra.Command{
		Use:   "archpick",
		Short: "Pick the release asset matching a platform",
		Long: `archpick selects, from a list of release-asset names, the ones that match
an operating system and CPU architecture, ordered best match first.

By default the target is the machine archpick runs on; pass --os and
--arch to select for another platform. The first line of output is the
asset a package manager should download.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a vocabulary file (extra alias spellings)")

	// Add subcommands
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newPlatformCmd())
	rootCmd.AddCommand(newAliasesCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))
	rootCmd.AddCommand(newCompletionCmd())

	// Register completion function for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd.Execute()
}
