package restkit

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// SQLConfig configures a SQLProvider for one resource's table.
type SQLConfig struct {
	// IDColumn is the primary key column. Defaults to "id".
	IDColumn string

	// NewModel returns a pointer to a zero value of the row model. The model
	// carries its table name in bun struct tags, as usual.
	NewModel func() any

	// NewSlice returns a pointer to an empty slice of the row model, used
	// for index queries.
	NewSlice func() any
}

// SQLProvider is a Provider backed by the database through dbkit. It serves
// a resource straight from its table: index and show as selects, create as
// an insert from the JSON request body, update and delete by primary key,
// and preload as a parent-row fetch advertised to nested routes.
//
// Database failures are mapped onto context error codes with dbkit's error
// classification; they are never returned across the provider boundary.
//
// Example:
//
//	provider, _ := restkit.NewSQLProvider(db, restkit.SQLConfig{
//	    NewModel: func() any { return &Order{} },
//	    NewSlice: func() any { return &[]Order{} },
//	})
//	orders := restkit.NewResource("order", "orders").ActivateAll().Provider(provider)
type SQLProvider struct {
	db  dbkit.IDB
	cfg SQLConfig
}

// NewSQLProvider creates a SQLProvider. Both model factories are required.
func NewSQLProvider(db dbkit.IDB, cfg SQLConfig) (*SQLProvider, error) {
	if cfg.NewModel == nil || cfg.NewSlice == nil {
		return nil, NewError(ErrInvalidConfig, "NewModel and NewSlice factories are required")
	}
	if db == nil {
		return nil, NewError(ErrInvalidConfig, "database is required")
	}
	if cfg.IDColumn == "" {
		cfg.IDColumn = "id"
	}
	return &SQLProvider{db: db, cfg: cfg}, nil
}

// HandleIndex lists rows, honoring the request's limit/offset/order query
// parameters.
func (p *SQLProvider) HandleIndex(ctx context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	f := QueryFilterFromRequest(rc.Request)
	slice := p.cfg.NewSlice()

	q := p.db.NewSelect().Model(slice).Limit(f.Limit)
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Order != "" {
		q = q.Order(f.Order)
	}

	if err := dbkit.WithErr1(q.Scan(ctx), "HandleIndex").Err(); err != nil {
		return rc.WithError(http.StatusInternalServerError, CodeStorageError, err.Error())
	}

	rc.Resources = expandSlice(slice)
	rc.Status = http.StatusOK
	return rc
}

// HandleShow fetches a single row by primary key.
func (p *SQLProvider) HandleShow(ctx context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	m, rc, ok := p.fetch(ctx, rc, rc.Param("id"), "HandleShow")
	if !ok {
		return rc
	}
	rc.Resource = m
	rc.Status = http.StatusOK
	return rc
}

// HandleCreate decodes the JSON request body into a fresh model and inserts
// it.
func (p *SQLProvider) HandleCreate(ctx context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	m := p.cfg.NewModel()
	if err := json.NewDecoder(rc.Request.Body).Decode(m); err != nil {
		return rc.WithError(http.StatusBadRequest, CodeInvalidPayload, err.Error())
	}

	result, err := p.db.NewInsert().Model(m).Exec(ctx)
	if err := dbkit.WithErr(result, err, "HandleCreate").Err(); err != nil {
		if dbkit.IsDuplicate(err) {
			return rc.WithError(http.StatusConflict, CodeConflict, err.Error())
		}
		return rc.WithError(http.StatusInternalServerError, CodeStorageError, err.Error())
	}

	rc.Resource = m
	rc.Status = http.StatusCreated
	return rc
}

// HandleUpdate decodes the JSON request body and updates the row by primary
// key.
func (p *SQLProvider) HandleUpdate(ctx context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	m := p.cfg.NewModel()
	if err := json.NewDecoder(rc.Request.Body).Decode(m); err != nil {
		return rc.WithError(http.StatusBadRequest, CodeInvalidPayload, err.Error())
	}

	result, err := p.db.NewUpdate().
		Model(m).
		Where("? = ?", bun.Ident(p.cfg.IDColumn), rc.Param("id")).
		Exec(ctx)
	if err := dbkit.WithErr(result, err, "HandleUpdate").Err(); err != nil {
		return rc.WithError(http.StatusInternalServerError, CodeStorageError, err.Error())
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return rc.WithError(http.StatusNotFound, CodeNotFound, "row not found")
	}

	rc.Resource = m
	rc.Status = http.StatusOK
	return rc
}

// HandleDelete fetches the row, deletes it, and leaves the deleted row as
// the current resource with a 204 so the delete event can fire.
func (p *SQLProvider) HandleDelete(ctx context.Context, rc Context, _ *Resource, _ map[string]any) Context {
	id := rc.Param("id")
	m, rc, ok := p.fetch(ctx, rc, id, "HandleDelete")
	if !ok {
		return rc
	}

	result, err := p.db.NewDelete().
		Model(m).
		Where("? = ?", bun.Ident(p.cfg.IDColumn), id).
		Exec(ctx)
	if err := dbkit.WithErr(result, err, "HandleDelete").Err(); err != nil {
		return rc.WithError(http.StatusInternalServerError, CodeStorageError, err.Error())
	}

	rc.Resource = m
	rc.Status = http.StatusNoContent
	return rc
}

// HandlePreload fetches the enclosing row for nested routes and advertises
// it to siblings. A missing parent terminates the pipeline with a 404.
func (p *SQLProvider) HandlePreload(ctx context.Context, rc Context, res *Resource, _ map[string]any) Context {
	if rc.PreloadID == "" {
		return rc
	}
	m, rc, ok := p.fetch(ctx, rc, rc.PreloadID, "HandlePreload")
	if !ok {
		return rc
	}
	return rc.AppendResourceFor(res, m)
}

// fetch selects one row by primary key, mapping failures onto the context.
func (p *SQLProvider) fetch(ctx context.Context, rc Context, id, op string) (any, Context, bool) {
	m := p.cfg.NewModel()
	err := dbkit.WithErr1(p.db.NewSelect().
		Model(m).
		Where("? = ?", bun.Ident(p.cfg.IDColumn), id).
		Limit(1).
		Scan(ctx), op).Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, rc.WithError(http.StatusNotFound, CodeNotFound, "row not found"), false
		}
		return nil, rc.WithError(http.StatusInternalServerError, CodeStorageError, err.Error()), false
	}
	return m, rc, true
}

// expandSlice converts a *[]T into []any for Context.Resources.
func expandSlice(slice any) []any {
	v := reflect.ValueOf(slice)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return []any{}
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}
