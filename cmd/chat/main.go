package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timesheet-assistant/config"
	"timesheet-assistant/internal/app"
	"timesheet-assistant/internal/timesheet/delivery/terminal"
	"timesheet-assistant/pkg/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "timesheet-chat",
		Short: "Terminal timesheet chatbot with Excel/PDF generation",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configPath, outputDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: search ./config, ., /etc/app/)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for timesheet.xlsx and timesheet.pdf (default: timesheet.output_dir)")

	return cmd
}

func run(cmd *cobra.Command, configPath, outputDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if outputDir != "" {
		cfg.Timesheet.OutputDir = outputDir
	}

	// stdout belongs to the conversation
	logger := log.Init(log.ZapConfig{
		Level:    log.LevelWarn,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Stderr:   true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	s := terminal.NewSession(logger, a.UseCase, a.Files, cfg.Timesheet.SheetName)
	if err := s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
