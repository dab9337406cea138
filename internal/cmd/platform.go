package cmd

import (
	"github.com/spf13/cobra"

	"github.com/archpick/archpick/internal/output"
)

var (
	platformOS   string
	platformArch string
)

func newPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show the detected target platform",
		Long: `Platform prints the OS/architecture pair that select would match
against: the detected host platform, or the --os/--arch override.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatform(cmd)
		},
	}

	cmd.Flags().StringVar(&platformOS, "os", "", "Override the detected OS")
	cmd.Flags().StringVar(&platformArch, "arch", "", "Override the detected architecture")

	return cmd
}

// platformInfo is the platform command's structured output.
type platformInfo struct {
	OS       string `json:"os" yaml:"os"`
	Arch     string `json:"arch" yaml:"arch"`
	Platform string `json:"platform" yaml:"platform"`
	Known    bool   `json:"known" yaml:"known"`
}

func (p platformInfo) String() string {
	return p.Platform
}

func runPlatform(cmd *cobra.Command) error {
	platform, err := resolvePlatform(platformOS, platformArch)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	return output.NewWriter(cmd.OutOrStdout(), format).Write(platformInfo{
		OS:       platform.OS.String(),
		Arch:     platform.Arch.String(),
		Platform: platform.String(),
		Known:    platform.IsKnown(),
	})
}
