package main

import (
	"github.com/b71729/dcmtree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagFormat = "format"

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Prints the element tree of a DICOM file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString(flagFormat)
		render, ok := renderers[format]
		if !ok {
			return errors.Errorf("unknown format %q (choose text, table or yaml)", format)
		}
		tree := dcmtree.NewTree()
		if err := newParser().ParseFile(args[0], tree); err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), tree)
	},
}

func init() {
	dumpCmd.Flags().StringP(flagFormat, "f", "text", "Output format: text, table or yaml.")
	rootCmd.AddCommand(dumpCmd)
}
