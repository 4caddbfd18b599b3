package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive conversion shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	if err := appCtx.History.Load(); err != nil {
		return err
	}
	logger.Debug("shell started", zap.Int("history", len(appCtx.History.Records())))
	return appCtx.Shell(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
