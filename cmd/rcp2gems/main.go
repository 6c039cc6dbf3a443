// rcp2gems converts RaceCapture Pro telemetry logs into the normalized CSV
// form the GEMS Dlog99 analysis tool accepts.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/autosportlabs/RCP2GEMS/internal/clean"
	"github.com/autosportlabs/RCP2GEMS/internal/profile"
	"github.com/autosportlabs/RCP2GEMS/internal/rcplog"
)

const version = "1.0.0"

var (
	inputFile   string
	outputFile  string
	profilePath string
	minSats     int
	gpsCleanup  bool
	dryRun      bool
	showStats   bool
	statsJSON   bool
	verbose     bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "rcp2gems",
	Short: "Convert RaceCapture Pro logs to GEMS Dlog99 CSV",
	Long: `rcp2gems rewrites a RaceCapture Pro telemetry log into the normalized
CSV form GEMS Dlog99 accepts: zero-based strictly increasing timestamps,
fully populated cells, radian GPS coordinates, and no pre-lock noise.`,
	Example: `  rcp2gems -i session.csv
  rcp2gems -i session.csv -o cleaned.csv --min-sats 6
  rcp2gems -i session.csv --gps-cleanup=false`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input RaceCapture CSV log (required)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>_GEMS.csv)")
	rootCmd.Flags().StringVar(&profilePath, "config", "", "YAML conversion profile")
	rootCmd.Flags().IntVar(&minSats, "min-sats", 4, "minimum satellites for a usable GPS fix")
	rootCmd.Flags().BoolVar(&gpsCleanup, "gps-cleanup", true, "remove pre-lock rows (false backfills the first fix instead)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show statistics without writing output file")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "show detailed statistics")
	rootCmd.Flags().BoolVar(&statsJSON, "stats-json", false, "output statistics as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "show version information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("rcp2gems v%s - RaceCapture Pro to GEMS converter\n", version)
		return nil
	}
	if inputFile == "" {
		return fmt.Errorf("input file is required (-i)")
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if outputFile == "" {
		outputFile = strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + "_GEMS.csv"
	}

	fmt.Printf("📖 Reading log: %s\n", inputFile)
	table, err := rcplog.Parse(inputFile)
	if err != nil {
		return err
	}
	fmt.Printf("📊 Session: %d rows, %d channels\n", len(table.Rows), table.Width())

	stats, err := clean.New(cfg, logger).Run(table)
	if err != nil {
		return err
	}

	if showStats || statsJSON || dryRun {
		if statsJSON {
			jsonData, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal stats: %w", err)
			}
			fmt.Println(string(jsonData))
		} else {
			printStats(stats)
		}
	}

	if dryRun {
		fmt.Printf("🔍 Dry run completed - no files written\n")
		return nil
	}

	fmt.Printf("💾 Writing GEMS log: %s\n", outputFile)
	if err := table.Write(outputFile); err != nil {
		return err
	}

	fmt.Printf("✅ Conversion complete!\n")
	fmt.Printf("   %d → %d rows (%d removed), %.3f s of session data\n",
		stats.TotalRows, stats.KeptRows, stats.RemovedRows, stats.SessionSeconds)
	return nil
}

// buildConfig merges the profile file (if any) with the command-line flags.
// A flag explicitly set on the command line wins over the profile.
func buildConfig(cmd *cobra.Command) (clean.Config, error) {
	prof := profile.Default()
	if profilePath != "" {
		var err error
		prof, err = profile.Load(profilePath)
		if err != nil {
			return clean.Config{}, err
		}
	}

	cfg := clean.Config{
		MinSatellites: prof.MinSatellites,
		GPSCleanup:    prof.GPSCleanup,
	}
	if cmd.Flags().Changed("min-sats") {
		cfg.MinSatellites = minSats
	}
	if cmd.Flags().Changed("gps-cleanup") {
		cfg.GPSCleanup = gpsCleanup
	}
	if cfg.MinSatellites < 0 {
		return clean.Config{}, fmt.Errorf("min-sats must not be negative")
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func printStats(stats clean.Stats) {
	fmt.Printf("\n📊 Conversion Statistics:\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("📍 Rows: %d → %d (%d removed)\n", stats.TotalRows, stats.KeptRows, stats.RemovedRows)
	fmt.Printf("🔄 Cleaning Passes:\n")
	fmt.Printf("   • Junk rows removed: %d\n", stats.JunkRows)
	fmt.Printf("   • Low-satellite fixes blanked: %d\n", stats.LowSatRows)
	fmt.Printf("   • Pre-fix rows removed: %d\n", stats.PreFixRows)
	fmt.Printf("   • Pre-fix rows backfilled: %d\n", stats.BackfilledRows)
	fmt.Printf("   • Cells gap-filled: %d\n", stats.FilledCells)
	fmt.Printf("   • Timestamps interpolated: %d\n", stats.InterpolatedRows)
	fmt.Printf("   • Coordinate rows converted: %d\n", stats.ConvertedRows)
	fmt.Printf("⏱️  Session: %.3f s, processed in %v\n", stats.SessionSeconds, stats.ProcessingTime)
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
}
