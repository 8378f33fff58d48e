package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/raksitnongbua/office-bot/configs"
	idgenerator "github.com/raksitnongbua/office-bot/internal/core/usecase/id_generator"
	"github.com/raksitnongbua/office-bot/internal/core/usecase/timer"
	"github.com/raksitnongbua/office-bot/protocol"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var statusStyle = lipgloss.NewStyle().Bold(true)

type cliFlags struct {
	envFile     string
	date        string
	dryRun      bool
	failOnError bool
	verbose     bool
}

// cliState is filled in by PersistentPreRunE for the command that runs.
type cliState struct {
	conf   configs.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	state := &cliState{}

	root := &cobra.Command{
		Use:   "officebot",
		Short: "Post today's office desk assignment to Slack",
		Long: `officebot looks up today's check-in on Pult, works out which room the
assigned desk belongs to using the room definition file, and posts the
result (with the room image when there is one) to a Slack channel.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := configs.Load(flags.envFile)
			if err != nil {
				return err
			}
			if err := conf.Validate(flags.dryRun); err != nil {
				return err
			}
			logger, err := newLogger(conf.LogLevel, flags.verbose)
			if err != nil {
				return err
			}
			state.conf = conf
			state.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, state)
		},
	}

	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "log what would be posted instead of posting to Slack")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&flags.date, "date", "", "check this date (YYYY-MM-DD) instead of today")
	root.Flags().BoolVar(&flags.failOnError, "fail-on-error", false, "exit non-zero when the check fails")

	root.AddCommand(newServeCmd(flags, state))
	return root
}

func newServeCmd(flags *cliFlags, state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run checks over HTTP (POST /api/v1/check)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(state.conf, flags.dryRun, state.logger)
			if err != nil {
				return err
			}
			return protocol.ServeREST(state.conf.ServeAddr, a.checker, a.today, a.ready, state.logger)
		},
	}
}

func runCheck(cmd *cobra.Command, flags *cliFlags, state *cliState) error {
	logger := state.logger
	a, err := newApp(state.conf, flags.dryRun, logger)
	if err != nil {
		return err
	}

	date := a.today()
	if flags.date != "" {
		if date, err = timer.ParseDate(flags.date); err != nil {
			return fmt.Errorf("--date: %w", err)
		}
	}

	ctx := cmd.Context()
	runID := idgenerator.GenerateRunID()
	report, err := a.checker.Run(ctx, runID, date)
	if err != nil {
		logger.Error("Error", zap.String("run_id", runID), zap.Error(err))
		a.checker.NotifyFailure(ctx, err)
		if flags.failOnError {
			return err
		}
		return nil
	}

	logger.Info(report.Message,
		zap.String("run_id", runID),
		zap.String("outcome", string(report.Outcome)),
		zap.String("delivery", string(report.Delivery)))
	fmt.Fprintln(cmd.OutOrStdout(), statusStyle.Render(report.Message))
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
