package main

import (
	"fmt"

	"github.com/b71729/dcmtree"
	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var uidCmd = &cobra.Command{
	Use:   "uid <uid>",
	Short: "Looks up a well-known UID.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, found := dictionary.LookupUID(args[0])
		if !found {
			return errors.Errorf("unknown uid %q", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n  name: %s\n  type: %s\n", entry.UID, entry.NameHuman, entry.Type)
		if entry.Type == dictionary.UIDTypeTransferSyntax {
			syntax, native := dcmtree.LookupTransferSyntax(entry.UID)
			fmt.Fprintf(out, "  encoding: %s\n  native: %v\n  uncompressed: %v\n", syntax, native, dcmtree.IsUncompressed(entry.UID))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uidCmd)
}
