package main

import (
	"fmt"

	"github.com/companionsite/snarf"
)

// Run executes the extract command. Files are processed strictly in
// argument order and the first extraction error aborts the run before any
// output is written.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	records := make([]*snarf.Record, 0, len(c.Files))
	for _, file := range c.Files {
		rec, err := deps.Extractor.ExtractFile(deps.Ctx, file)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", snarf.ErrorMessage(err))
			return err
		}
		records = append(records, rec)
	}

	if err := deps.Writer.WriteRecords(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snarf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(records), c.Out)
	return nil
}
