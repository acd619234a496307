package commands

import (
	"context"
	"fmt"

	"iconpack/internal/application"
	"iconpack/internal/ports"
)

// WritePackResult contains the result of writing the icon pack
type WritePackResult struct {
	Path             string
	PreviousChecksum string // Empty if there was no previous pack
	Checksum         string
	Replaced         bool
	Changed          bool
}

// WritePackCommand replaces the icon pack file and tells whether its content changed
type WritePackCommand struct {
	store    ports.PackStore
	reporter ports.Reporter
	Name     string
	Content  string
}

// NewWritePackCommand creates a new WritePackCommand
func NewWritePackCommand(store ports.PackStore, reporter ports.Reporter, name, content string) *WritePackCommand {
	return &WritePackCommand{
		store:    store,
		reporter: reporter,
		Name:     name,
		Content:  content,
	}
}

// Execute hashes and removes any previous pack, writes the new one and compares digests
func (c *WritePackCommand) Execute(ctx context.Context) (*WritePackResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &WritePackResult{Path: c.store.Path(c.Name)}

	previous, exists, err := c.store.Checksum(c.Name)
	if err != nil {
		return nil, &application.FileReadError{Path: result.Path, Err: err}
	}
	if exists {
		if err := c.store.Remove(c.Name); err != nil {
			return nil, &application.FileDeleteError{Path: result.Path, Err: err}
		}
		result.PreviousChecksum = previous
		result.Replaced = true
		c.reporter.OK("Removed existing %s Icon Pack", c.Name)
	}

	if err := c.store.Write(c.Name, []byte(c.Content)); err != nil {
		return nil, &application.FileWriteError{Path: result.Path, Err: err}
	}
	c.reporter.OK("つ ◕_◕ ༽つ Created %s Icon Pack", c.Name)

	current, _, err := c.store.Checksum(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to verify %s: %w", result.Path, err)
	}
	result.Checksum = current
	result.Changed = !exists || current != previous

	if result.Changed {
		c.reporter.New("つ ◕_◕ ༽つ %s is new!", c.Name)
	} else {
		c.reporter.OK("%s is unchanged", c.Name)
	}

	return result, nil
}
