package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/goteleinfo/pkg/goteleinfo"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goteleinfo-analyze [record]",
		Short: "Decode Teleinfo meter groups",
		Long:  "goteleinfo-analyze decodes Teleinfo groups using the goteleinfo library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := goteleinfo.DecodeOptions{VerifyChecksum: verifyChecksum}
			if len(args) == 0 {
				return runInteractive(opts)
			}
			return runDecode(opts, args[0])
		},
	}

	verifyChecksum bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&verifyChecksum, "verify-checksum", false, "check the trailing control character of each group")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(opts goteleinfo.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("goteleinfo analyze mode. Paste a group and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if err := runDecode(opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode group")
		}
	}
	return scanner.Err()
}

func runDecode(opts goteleinfo.DecodeOptions, record string) error {
	message, err := goteleinfo.DecodeWithOptions(record, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(goteleinfo.Describe(message), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
