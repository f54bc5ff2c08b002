package commands

// Root command: loads configuration, starts logging and runs the
// interactive chart menu on stdin/stdout.

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csv-charts/internal/features/charts"
	"csv-charts/internal/infra/config"
	"csv-charts/internal/infra/log"
	"csv-charts/internal/shell"
)

var rootCmd = &cobra.Command{
	Use:   "csv-charts",
	Short: "Render bar, scatter, pie, line/area and radar charts from CSV files",
	Long: `csv-charts asks which chart to draw, which CSV files to read and where to
write the PNG, validates the input and renders the chart. Type 'q' or 'quit'
at any prompt to exit.`,
	Version:       "1.0.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := log.Init(cfg.App.LogDir); err != nil {
		return err
	}
	defer log.Sync()

	seed := cfg.App.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fsys := afero.NewOsFs()
	fonts := charts.NewFonts(cfg.App.FontPath)
	log.LogInfo("Starting chart shell",
		zap.String("font_path", fonts.Path()),
		zap.Int64("seed", seed))

	pipeline := charts.NewPipeline(fsys, fonts, rand.New(rand.NewSource(seed)))

	return shell.New(os.Stdin, os.Stdout, os.Stderr, fsys, pipeline).Run()
}
