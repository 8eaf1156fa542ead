package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"leetcode-digest/internal/app"
	"leetcode-digest/internal/config"
	"leetcode-digest/internal/di"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	initApp := func(cmd *cobra.Command) (*app.App, error) {
		application, err := di.InitializeApp(cmd.Context(), config.FilePath(cfgFile))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize application: %w", err)
		}
		return application, nil
	}

	root := &cobra.Command{
		Use:           "digest",
		Short:         "Email a daily set of unsent LeetCode questions with AI hints",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := initApp(cmd)
			if err != nil {
				return err
			}
			return application.RunOnce(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file layered under environment variables")

	root.AddCommand(&cobra.Command{
		Use:   "schedule",
		Short: "Run the digest on SCHEDULE_CRON until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := initApp(cmd)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	})

	return root
}
