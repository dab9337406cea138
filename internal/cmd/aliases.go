package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archpick/archpick/internal/output"
	"github.com/archpick/archpick/internal/types"
)

func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Show the effective alias vocabulary",
		Long: `Aliases prints the spellings each canonical OS and architecture token is
recognized by, after merging the config file (if any) onto the built-in
table. Spellings beginning with a dot match only at the end of a name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliases(cmd)
		},
	}
}

// vocabListing is the aliases command's structured output.
type vocabListing struct {
	OS          map[string][]string `json:"os" yaml:"os"`
	Arch        map[string][]string `json:"arch" yaml:"arch"`
	AuxSuffixes []string            `json:"aux_suffixes" yaml:"aux_suffixes"`
}

func (l vocabListing) String() string {
	var b strings.Builder

	b.WriteString("OS:\n")
	for _, os := range types.AllOSes() {
		fmt.Fprintf(&b, "  %-8s %s\n", os, strings.Join(l.OS[os.String()], ", "))
	}
	b.WriteString("Architectures:\n")
	for _, arch := range types.AllArches() {
		fmt.Fprintf(&b, "  %-8s %s\n", arch, strings.Join(l.Arch[arch.String()], ", "))
	}
	b.WriteString("Auxiliary suffixes:\n")
	fmt.Fprintf(&b, "  %s", strings.Join(l.AuxSuffixes, ", "))

	return b.String()
}

func runAliases(cmd *cobra.Command) error {
	vocab, err := loadVocabulary(configPath)
	if err != nil {
		return err
	}

	listing := vocabListing{
		OS:          make(map[string][]string, len(vocab.OS)),
		Arch:        make(map[string][]string, len(vocab.Arch)),
		AuxSuffixes: vocab.AuxSuffixes,
	}
	for os, spellings := range vocab.OS {
		listing.OS[os.String()] = spellings
	}
	for arch, spellings := range vocab.Arch {
		listing.Arch[arch.String()] = spellings
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return output.NewWriter(cmd.OutOrStdout(), format).Write(listing)
}
