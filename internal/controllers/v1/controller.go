// Package v1 implements the v1 REST API. It is a thin presentation
// layer: all domain rules live in the store, handlers only translate
// between HTTP and store calls.
package v1

import (
	"github.com/hearthledger/backend/internal/storage"
	"github.com/hearthledger/backend/internal/store"
)

// Controller holds the dependencies of the v1 API handlers.
type Controller struct {
	Store     *store.Store
	Snapshots storage.Snapshots
}
