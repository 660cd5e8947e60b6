package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/klatka/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for the configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := schema.GenerateJSON(true)
		if err != nil {
			return errors.Wrap(err, "failed to generate schema")
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
