package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/remastershadhi/api/internal/model"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List accepted values for the enumerated fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printOptions(cmd.OutOrStdout())
	},
}

func printOptions(w io.Writer) error {
	for _, table := range model.OptionTables {
		if _, err := fmt.Fprintf(w, "%s:\n", table); err != nil {
			return err
		}
		for _, opt := range model.Options(table) {
			value := opt.Value
			if value == "" {
				value = `""`
			}
			if _, err := fmt.Fprintf(w, "  %-22s %s\n", value, opt.Label); err != nil {
				return err
			}
		}
	}
	return nil
}
