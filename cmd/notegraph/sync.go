package main

import (
	"fmt"

	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/sync"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	syncer := sync.NewSyncer(deps.Pages, deps.State, deps.Logger, sync.WithWorkers(c.Workers))

	result, err := syncer.Sync(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notegraph.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Sync complete: %d created, %d updated, %d skipped, %d pruned (%v)\n",
		result.Created, result.Updated, result.Skipped, result.Pruned, result.Duration.Round(0))

	if len(result.Failed) > 0 {
		fmt.Fprintf(deps.Stderr, "%d file(s) failed:\n", len(result.Failed))
		for path, ferr := range result.Failed {
			fmt.Fprintf(deps.Stderr, "  %s: %v\n", path, ferr)
		}
		return notegraph.Errorf(notegraph.EINTERNAL, "%d file(s) failed to sync", len(result.Failed))
	}
	return nil
}
