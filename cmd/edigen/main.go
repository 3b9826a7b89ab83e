package main

import (
	"fmt"
	"os"

	"github.com/arcward/edigen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set via -ldflags at build time
var version = "dev"

var (
	flagType      string
	flagLOB       string
	flagClaims    int
	flagSeed      uint64
	flagPretty    bool
	flagOutput    string
	flagOutputDir string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "edigen",
	Short: "Generate sample EDI X12 5010 healthcare files for testing",
	Long: `edigen generates syntactically valid X12 5010 healthcare
transaction files (837P, 835, 270, 271, 278, 999) for use as parser
and importer test fixtures. Output is workers' compensation framed
and can be scoped to a single line of business. A seed makes output
byte-reproducible.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the edigen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(
		&flagType,
		"type",
		"t",
		"837P",
		"transaction type to generate (837P|835|270|271|278|999|all)",
	)
	rootCmd.Flags().StringVarP(
		&flagLOB,
		"lob",
		"l",
		"",
		"line of business (PT|OT|DC|DX|DME|HH|DENTAL|TRANSPORT|LANGUAGE)",
	)
	rootCmd.Flags().IntVarP(
		&flagClaims,
		"claims",
		"n",
		0,
		"record count: claims, subscribers, auth requests or acknowledged sets, per type (default: random per-type range)",
	)
	rootCmd.Flags().Uint64VarP(
		&flagSeed,
		"seed",
		"s",
		0,
		"random seed for reproducible output",
	)
	rootCmd.Flags().BoolVarP(
		&flagPretty,
		"pretty",
		"p",
		false,
		"add a line break after each segment terminator",
	)
	rootCmd.Flags().StringVarP(
		&flagOutput,
		"output",
		"o",
		"",
		"output file path (default: stdout; ignored with --type=all)",
	)
	rootCmd.Flags().StringVarP(
		&flagOutputDir,
		"output-dir",
		"d",
		"",
		"output directory for --type=all (default: current directory)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose,
		"verbose",
		"v",
		false,
		"enable debug logging",
	)
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := edigen.Options{
		LOB:    edigen.LineOfBusiness(flagLOB),
		Pretty: flagPretty,
	}
	if cmd.Flags().Changed("claims") {
		opts.Records = flagClaims
		opts.HasRecords = true
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = flagSeed
		opts.HasSeed = true
	}

	if flagType == "all" {
		return runAll(logger, opts)
	}

	opts.Type = edigen.TransactionType(flagType)
	text, err := edigen.Generate(opts)
	if err != nil {
		return err
	}

	if flagOutput == "" {
		fmt.Print(text)
		if flagPretty {
			fmt.Println()
		}
		return nil
	}
	if err := writeFile(flagOutput, text, flagPretty); err != nil {
		return err
	}
	logger.Info(
		"generated transaction file",
		zap.String("type", string(opts.Type)),
		zap.String("path", flagOutput),
		zap.Int("bytes", len(text)),
	)
	return nil
}

func runAll(logger *zap.Logger, opts edigen.Options) error {
	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	results, err := edigen.GenerateAll(opts)
	if err != nil {
		return err
	}
	for _, t := range edigen.TransactionTypes {
		path := fmt.Sprintf("%s/sample_%s.edi", outputDir, t)
		if err := writeFile(path, results[t], flagPretty); err != nil {
			return err
		}
		logger.Info(
			"generated transaction file",
			zap.String("type", string(t)),
			zap.String("path", path),
			zap.Int("bytes", len(results[t])),
		)
	}
	return nil
}

func writeFile(path string, text string, trailingNewline bool) error {
	if trailingNewline {
		text += "\n"
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
