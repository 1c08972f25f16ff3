// cgcalc analyzes a property sale for capital gains tax, Section
// 54/54EC/54F exemption strategies and reinvestment allocation.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cgcalc/capitalgains-calculator/internal/calculation"
	"github.com/cgcalc/capitalgains-calculator/internal/config"
	"github.com/cgcalc/capitalgains-calculator/internal/domain"
	"github.com/cgcalc/capitalgains-calculator/internal/logging"
	"github.com/cgcalc/capitalgains-calculator/internal/output"
	"github.com/cgcalc/capitalgains-calculator/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cgcalc",
		Short:         "Real estate capital gains and reinvestment planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "path to the input configuration file")
	root.PersistentFlags().String("format", "", "output format override (console, csv, json, html)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().String("store", ".cgcalc", "directory of the persisted state store")

	// Settings resolve flag > CGCALC_* environment > config file value.
	// Dashed flag keys map to underscored variables (CGCALC_LOG_LEVEL).
	_ = viper.BindPFlags(root.PersistentFlags())
	viper.SetEnvPrefix("CGCALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(newAnalyzeCmd(), newExampleConfigCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var save bool
	var outFile bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis for the configured property sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(viper.GetString("config"))
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(cfg.Logging, viper.GetString("log-level"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			st, err := store.Open(viper.GetString("store"))
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(logging.NewEngineLogger(logger))
			engine.SetSalaryProvider(store.NewSalaryBridge(st))

			analysis, err := engine.Analyze(cfg)
			if err != nil {
				return err
			}

			if save {
				session := &domain.SessionState{Property: cfg.Property, ActiveTab: "capital-gains"}
				if err := st.SaveSession(session); err != nil {
					logger.Warn("failed to persist session state", zap.Error(err))
				}
			}

			formatName := cfg.Output.Format
			if override := viper.GetString("format"); override != "" {
				formatName = override
			}
			if formatName == "" {
				formatName = "console"
			}
			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q (available: %v)",
					formatName, output.AvailableFormatterNames())
			}

			if outFile {
				filename, err := output.WriteFormatted(formatter, analysis)
				if err != nil {
					return err
				}
				logger.Info("report written", zap.String("file", filename))
				return nil
			}

			data, err := formatter.Format(analysis)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the property snapshot to the state store")
	cmd.Flags().BoolVar(&outFile, "out-file", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "config.example.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			if err := config.NewInputParser().WriteExampleConfiguration(filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", filename)
			return nil
		},
	}
}
