package main

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/shadcn/pkg/logging"
)

type rootFlags struct {
	logLevel string
	human    bool
	dir      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shadcn",
		Short:         "Overlay placement, rendering and demos for the shadcn widget set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyLogLevel(cmd, flags.logLevel, flags.human); err != nil {
				return newCommandError("start", "configuring logging", err, "Use one of trace, debug, info, warn or error.")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", true, "Human readable log output")
	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Directory holding shadcn.yaml")

	cmd.AddCommand(newPlaceCmd())
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// applyLogLevel installs the process logger writing to cmd's stderr.
func applyLogLevel(cmd *cobra.Command, level string, human bool) error {
	log, err := logging.New(logging.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logging.Set(log)
	return nil
}
