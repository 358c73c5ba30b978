package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Errorf("%s", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "forceplate",
		Short:         "Inspect and replay force plate data alongside an animation clip",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(debug)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every tick")
	root.AddCommand(inspectCmd(), velocityCmd(), playCmd())
	return root
}

func setLogLevel(debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
