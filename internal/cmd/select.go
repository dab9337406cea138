package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archpick/archpick/internal/output"
	"github.com/archpick/archpick/internal/selector"
)

var (
	selectOS    string
	selectArch  string
	selectFirst bool
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [asset...]",
		Short: "Select the assets matching a platform, best match first",
		Long: `Select filters a list of release-asset names down to the ones matching
the target platform and orders them best match first.

Asset names come from the arguments, or from stdin (one per line) when no
arguments are given. With no match the command fails, so scripts can rely
on the exit code.

Examples:
  archpick select app-linux-x64 app-darwin-arm64
  gh release view --json assets -q '.assets[].name' | archpick select
  archpick select --os windows --arch arm64 < assets.txt
  archpick select --first < assets.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVar(&selectOS, "os", "", "Target OS instead of the running one (windows, macos, linux, freebsd)")
	cmd.Flags().StringVar(&selectArch, "arch", "", "Target architecture instead of the running one (x64, arm64, arm32, x86)")
	cmd.Flags().BoolVar(&selectFirst, "first", false, "Print only the best match")

	return cmd
}

// selection is the select command's structured output.
type selection struct {
	Platform string   `json:"platform" yaml:"platform"`
	Assets   []string `json:"assets" yaml:"assets"`
}

func runSelect(stdin io.Reader, stdout io.Writer, args []string) error {
	candidates := args
	if len(candidates) == 0 {
		var err error
		candidates, err = readCandidates(stdin)
		if err != nil {
			return err
		}
	}

	platform, err := resolvePlatform(selectOS, selectArch)
	if err != nil {
		return err
	}

	vocab, err := loadVocabulary(configPath)
	if err != nil {
		return err
	}

	matched := selector.NewSelector().
		WithPlatform(platform).
		WithVocabulary(vocab).
		Select(candidates)

	if len(matched) == 0 {
		return fmt.Errorf("no compatible asset found for %s", platform)
	}
	if selectFirst {
		matched = matched[:1]
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	writer := output.NewWriter(stdout, format)

	if format == output.FormatText {
		return writer.WriteLines(matched)
	}
	return writer.Write(selection{
		Platform: platform.String(),
		Assets:   matched,
	})
}

// readCandidates reads asset names from stdin, one per line, skipping
// blank lines.
func readCandidates(r io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read asset names: %w", err)
	}
	return candidates, nil
}
