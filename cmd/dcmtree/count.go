package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/b71729/dcmtree"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <file>...",
	Short: "Counts the elements of DICOM files by VR.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := newParser()
		total := dcmtree.NewCounter()
		for _, path := range args {
			counter := dcmtree.NewCounter()
			if err := parser.ParseFile(path, counter); err != nil {
				return err
			}
			total.Add(counter)
		}
		writeCounts(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func writeCounts(w io.Writer, counter *dcmtree.Counter) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"VR", "Count"})
	for _, vr := range counter.VRs() {
		table.Append([]string{vr.Code(), strconv.Itoa(counter.ByVR[vr])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(counter.Total)})
	table.Render()
	fmt.Fprintf(w, "maximum nesting depth: %d\n", counter.MaxDepth)
}
