package main

import (
	"fmt"

	"github.com/companionsite/snarf"
)

// Run executes the usernames command, a debug aid for matching legacy
// author names against accounts on the new site.
func (c *UsernamesCmd) Run(deps *Dependencies) error {
	names, err := deps.Names.AuthorNames(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snarf.ErrorMessage(err))
		return err
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, snarf.Username(name))
	}
	return nil
}
