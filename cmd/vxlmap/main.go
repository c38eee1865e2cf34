package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:           "vxlmap",
	Short:         "Inspect, convert, and stream voxlap VXL maps",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vxlmap: could not start logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	log = zapLogger.Sugar()

	rootCmd.AddCommand(
		decodeCmd,
		probeCmd,
		flattenCmd,
		kv6Cmd,
		streamCopyCmd,
		batchCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
