package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"screenlight/internal/capability"
	"screenlight/internal/color"
	"screenlight/internal/config"
	"screenlight/internal/light"
	"screenlight/internal/tui/controller"
	"screenlight/pkg/logging"
)

const cliSubsystem = "CLI"

// shutdownTimeout bounds releasing the wake lock after the light closes.
const shutdownTimeout = 3 * time.Second

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screenlight",
	Short: "Turn your terminal into an adjustable light panel",
	Long: `screenlight fills the terminal with a soft light whose color temperature
and brightness you control with the keyboard or the mouse.

Drag upwards or press space to show the controls, drag downwards or press
esc to hide them. Double-click toggles them. The controls can also keep the
screen from sleeping and switch between fullscreen and the normal screen.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage:      true,
	PersistentPreRunE: initCLILogging,
	RunE:              runLight,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "screenlight version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	addLightFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newColorCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// addLightFlags registers the flags that override the configured launch
// state of the light.
func addLightFlags(fs *pflag.FlagSet) {
	fs.IntP("temperature", "t", light.DefaultTemperature, "Color temperature in Kelvin (1000-6500)")
	fs.IntP("brightness", "b", light.DefaultBrightness, "Brightness in percent (0-100)")
	fs.Bool("fullscreen", true, "Start in fullscreen (the terminal's alternate screen)")
	fs.Bool("wake-lock", false, "Keep the screen on from launch")
}

// effectiveConfig loads the layered configuration and applies the flags the
// user set explicitly. Flags missing from fs are ignored.
func effectiveConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	if fs.Changed("temperature") {
		v, _ := fs.GetInt("temperature")
		cfg.Light.Temperature = config.IntPtr(v)
	}
	if fs.Changed("brightness") {
		v, _ := fs.GetInt("brightness")
		cfg.Light.Brightness = config.IntPtr(v)
	}
	if fs.Changed("fullscreen") {
		v, _ := fs.GetBool("fullscreen")
		cfg.Display.StartFullscreen = config.BoolPtr(v)
	}
	if fs.Changed("wake-lock") {
		v, _ := fs.GetBool("wake-lock")
		cfg.WakeLock.AcquireOnStart = config.BoolPtr(v)
	}
	if debugRequested(fs) {
		cfg.Log.Level = logging.LevelDebug.String()
	}
	return config.Normalize(cfg)
}

func debugRequested(fs *pflag.FlagSet) bool {
	if fs.Lookup("debug") == nil {
		return false
	}
	v, _ := fs.GetBool("debug")
	return v
}

// initCLILogging sends log output to stderr for commands that print results.
// The light itself switches to the TUI log channel in runLight.
func initCLILogging(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if debugRequested(cmd.Flags()) {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	return nil
}

func runLight(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd.Flags())
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	wakeLock, err := capability.NewWakeLock(cfg.WakeLock.Backend)
	if err != nil {
		return fmt.Errorf("failed to set up the wake lock: %w", err)
	}

	// Query the terminal before the program takes over stdin.
	color.Initialize(lipgloss.HasDarkBackground())

	logChannel := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()
	logging.Info(cliSubsystem, "Starting light at %s (wake lock backend %s)", cfg.Setting(), cfg.WakeLock.Backend)

	p, m := controller.NewProgram(controller.ProgramOptions{
		Config:     cfg,
		WakeLock:   wakeLock,
		LogChannel: logChannel,
		DebugMode:  debugRequested(cmd.Flags()),
	})
	_, runErr := p.Run()
	controller.Shutdown(m, shutdownTimeout)
	if runErr != nil {
		return fmt.Errorf("error running the light: %w", runErr)
	}
	if n := logging.Dropped(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d log entries were dropped while the light was on\n", n)
	}
	return nil
}
