package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"screenlight/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration the light runs with as YAML: the built-in
defaults, overlaid by ~/.config/screenlight/config.yaml and then by
./.screenlight/config.yaml. Files that do not exist are skipped.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd.Flags())
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	writeSource(out, "user", config.UserConfigPath)
	writeSource(out, "project", config.ProjectConfigPath)
	_, err = out.Write(data)
	return err
}

// writeSource prints where a configuration layer is read from as a YAML
// comment.
func writeSource(out io.Writer, name string, path func() (string, error)) {
	p, err := path()
	if err != nil {
		fmt.Fprintf(out, "# %s config: unavailable (%v)\n", name, err)
		return
	}
	state := "loaded"
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		state = "not found"
	}
	fmt.Fprintf(out, "# %s config: %s (%s)\n", name, p, state)
}
