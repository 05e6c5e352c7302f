// Package query provides the interface for querying mongo. It is a thin
// wrap over the official mongo driver; read the driver docs for the
// semantics of each operation.
package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan flags a query that would walk the whole collection
	ErrCollScan = fmt.Errorf("collection scan")
)

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search sorts order by the `sort` argument ("field" ascending,
	// "-field" descending, "" skips sorting)
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Count returns the number of matched entries in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, inserting it when
	// missing
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Patch applies a $set patch to one entry.
	// Returns ErrNotFound if selector does not match any documents.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// CustomPatch patches an entry with a customized mongo update document.
	// Returns ErrNotFound if upsert is false and selector does not match
	// any documents.
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// FindOneAndPatch atomically applies a customized update to the first
	// entry matching selector and decodes the post-update document into
	// result. Returns ErrNotFound when nothing matches.
	FindOneAndPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, result interface{}) error

	// Increment increases a numeric field, inserting the entry when
	// missing
	Increment(context ctx.Ctx, table domain.Table, selector interface{}, field string, inc interface{}) error

	// Remove removes an entry from the table.
	// Returns ErrNotFound if selector does not match any documents.
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll removes all entries matching the selector from the table
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)
}
