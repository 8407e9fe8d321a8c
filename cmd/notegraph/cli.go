package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Version string

	DB    *sqlite.DB
	Pages notegraph.PageService
	State notegraph.SyncStateService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Create CreateCmd `cmd:"" help:"Create a page from markdown content"`
	Update UpdateCmd `cmd:"" help:"Add or replace content on an existing page"`
	Get    GetCmd    `cmd:"" help:"Print a page's content"`
	List   ListCmd   `cmd:"" help:"List pages in the graph"`
	Delete DeleteCmd `cmd:"" help:"Delete a page"`
	Search SearchCmd `cmd:"" help:"Search pages, blocks, and files"`
	Sync   SyncCmd   `cmd:"" help:"Push a directory of markdown files to the graph"`
	Diff   DiffCmd   `cmd:"" help:"Show the difference between a local file and its page"`
	Parse  ParseCmd  `cmd:"" help:"Parse markdown and print the resulting outline"`
	Serve  ServeCmd  `cmd:"" help:"Serve the tools over MCP on stdio"`
}

// CreateCmd is the "create" subcommand.
type CreateCmd struct {
	Title string `arg:"" help:"Title of the new page"`
	File  string `arg:"" optional:"" help:"Markdown file to read (defaults to stdin)"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	Name string `arg:"" help:"Page name"`
	File string `arg:"" optional:"" help:"Markdown file to read (defaults to stdin)"`
	Mode string `default:"append" enum:"append,replace" help:"append: add after existing content. replace: clear page first."`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Name     string `arg:"" help:"Page name"`
	Format   string `default:"text" enum:"text,json" help:"Output format"`
	MaxDepth int    `default:"-1" help:"Maximum nesting depth to display (-1 for unlimited)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Journals bool `help:"Include journal pages"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Page name"`
	Force bool   `help:"Confirm deletion"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query text"`
	Limit int    `default:"20" help:"Maximum number of results"`
	Files bool   `help:"Include file name results"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Dir     string `arg:"" help:"Directory of markdown files"`
	Workers int    `short:"c" default:"4" help:"Concurrent push limit"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Name string `arg:"" help:"Page name"`
	File string `arg:"" help:"Local markdown file to compare against"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" optional:"" help:"Markdown file to read (defaults to stdin)"`
	JSON bool   `help:"Print the parsed document as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}
