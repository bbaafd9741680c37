package cmd

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"screenlight/internal/cli"
	"screenlight/internal/color"
	"screenlight/internal/light"
)

// ColorReport describes the color shown for one setting.
type ColorReport struct {
	Temperature int     `json:"temperature" yaml:"temperature"`
	Brightness  int     `json:"brightness" yaml:"brightness"`
	Hex         string  `json:"hex" yaml:"hex"`
	RGB         string  `json:"rgb" yaml:"rgb"`
	Luminance   float64 `json:"luminance" yaml:"luminance"`
	Ink         string  `json:"ink" yaml:"ink"`
}

func newColorReport(s light.LightSetting) ColorReport {
	rgb := light.ComputeColor(s)
	ink := "dark"
	if color.IsDark(rgb) {
		ink = "light"
	}
	return ColorReport{
		Temperature: s.TemperatureKelvin,
		Brightness:  s.BrightnessPercent,
		Hex:         rgb.Hex(),
		RGB:         rgb.CSS(),
		Luminance:   math.Round(color.Luminance(rgb)*1000) / 1000,
		Ink:         ink,
	}
}

var colorColumns = []string{"swatch", "temperature", "brightness", "hex", "rgb", "luminance", "ink"}

func (r ColorReport) row() []interface{} {
	rgb := light.ComputeColor(light.NewSetting(r.Temperature, r.Brightness))
	swatch := lipgloss.NewStyle().
		Background(color.Lipgloss(rgb)).
		Foreground(color.Foreground(rgb)).
		Render(" Aa ")
	return []interface{}{
		swatch,
		fmt.Sprintf("%dK", r.Temperature),
		fmt.Sprintf("%d%%", r.Brightness),
		r.Hex,
		r.RGB,
		fmt.Sprintf("%.3f", r.Luminance),
		r.Ink,
	}
}

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Print the light color for a setting",
		Long: `Computes the color the light shows for a color temperature and
brightness and prints it as a table, JSON or YAML.

Without --temperature or --brightness the configured launch setting is used.
With --scale N the full-brightness colors of N temperatures spread across
the range are printed instead.`,
		Args: cobra.NoArgs,
		RunE: runColor,
	}
	cmd.Flags().IntP("temperature", "t", light.DefaultTemperature, "Color temperature in Kelvin (1000-6500)")
	cmd.Flags().IntP("brightness", "b", light.DefaultBrightness, "Brightness in percent (0-100)")
	cmd.Flags().StringP("output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().Int("scale", 0, "Print N samples across the temperature range")
	return cmd
}

func runColor(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	printer, err := cli.NewPrinter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	scale, _ := cmd.Flags().GetInt("scale")
	if scale < 0 {
		return fmt.Errorf("--scale must not be negative, got %d", scale)
	}
	if scale > 0 {
		reports := make([]ColorReport, 0, scale)
		rows := make([][]interface{}, 0, scale)
		for _, k := range color.TemperatureSamples(scale) {
			r := newColorReport(light.NewSetting(k, light.MaxBrightness))
			reports = append(reports, r)
			rows = append(rows, r.row())
		}
		return printer.Print(colorColumns, rows, reports)
	}

	cfg, err := effectiveConfig(cmd.Flags())
	if err != nil {
		return err
	}
	r := newColorReport(cfg.Setting())
	return printer.Print(colorColumns, [][]interface{}{r.row()}, r)
}
