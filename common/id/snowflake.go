// Package id hands out snowflake ids for every persisted entity
// (projects, designs, versions, suggestions, sessions). Ids are
// time-ordered, so version and suggestion listings sort naturally.
package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	generator *snowflake.Node
	initOnce  sync.Once
)

// Init configures the process-wide generator. Must be called once at
// startup before any New call; later calls are no-ops.
func Init(nodeID int64) error {
	var err error
	initOnce.Do(func() {
		generator, err = snowflake.NewNode(nodeID)
		if err != nil {
			err = fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
		}
	})
	return err
}

// New returns the next id. Panics if Init has not run.
func New() int64 {
	return generator.Generate().Int64()
}
