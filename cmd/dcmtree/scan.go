package main

import (
	"path/filepath"
	"sort"

	"github.com/b71729/dcmtree"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Parses every file below a directory concurrently and reports failures.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newParser().ScanDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

		total := dcmtree.NewCounter()
		errorCount := 0
		for _, res := range results {
			if res.Err != nil {
				dcmtree.Errorf(`error parsing "%s": %v`, filepath.Base(res.Path), res.Err)
				errorCount++
				continue
			}
			dcmtree.Debugf(`parsed "%s" (%d elements)`, filepath.Base(res.Path), res.Counter.Total)
			total.Add(res.Counter)
		}
		successCount := len(results) - errorCount
		if errorCount == 0 {
			dcmtree.Infof("parsed %d files without errors", successCount)
		} else {
			dcmtree.Infof("parsed %d files without errors, and failed to parse %d files", successCount, errorCount)
		}
		writeCounts(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
