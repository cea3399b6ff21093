package main

import (
	"context"
	"io"

	"github.com/companionsite/snarf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor snarf.Extractor
	Names     snarf.NameLister
	Writer    snarf.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract   ExtractCmd   `cmd:"" help:"Extract metadata from saved pages into a JSON fixture"`
	Usernames UsernamesCmd `cmd:"" help:"Print username forms of the author names in one saved page"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files   []string `arg:"" help:"Saved legacy pages to scrape (e.g. 'site.do?siteId=62')"`
	Out     string   `short:"o" default:"results.json" help:"Output file, overwritten each run"`
	Verbose bool     `short:"v" help:"Log each file as it is processed"`
}

// UsernamesCmd is the "usernames" subcommand.
type UsernamesCmd struct {
	File string `arg:"" help:"Saved legacy page to read author names from"`
}
