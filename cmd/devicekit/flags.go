package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

func newFlagsCmd() *cobra.Command {
	var (
		ua     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Print the flags detected in a user agent",
		Example: `  devicekit flags --ua "Mozilla/5.0 (Linux; Android 12; NOH-AN00) HuaweiBrowser/12.0"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			return writeFlags(cmd.OutOrStdout(), output, useragent.Detect(ua))
		},
	}

	cmd.Flags().StringVar(&ua, "ua", "", "User agent string")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")

	return cmd
}
