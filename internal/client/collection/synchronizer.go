// Package collection keeps the dashboard's page of users in step with the
// backend.
package collection

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Lister is the list endpoint.
type Lister interface {
	ListUsers(ctx context.Context, q models.PageQuery) (models.PageResult, error)
}

// Synchronizer loads pages into a view store.
type Synchronizer struct {
	lister Lister
	store  *viewstate.Store
	log    logging.Logger
}

func NewSynchronizer(l Lister, store *viewstate.Store, log logging.Logger) *Synchronizer {
	return &Synchronizer{lister: l, store: store, log: log}
}

// Load fetches page with the given filter. An empty text or FilterNone
// loads unfiltered. The result is applied to the store unless a newer load
// was issued meanwhile; Load returns it either way.
func (s *Synchronizer) Load(ctx context.Context, page int, field models.FilterField, text string) (res models.PageResult, err error) {
	q := models.PageQuery{Page: page, Field: field, Text: text}.Normalize()
	if !q.Filtered() {
		q.Field, q.Text = models.FilterNone, ""
	}

	gen := s.store.Dispatch(viewstate.LoadIssued{Query: q}).Generation
	log := s.log.With("generation", gen, "page", q.Page)

	settled := false
	defer func() {
		if settled {
			return
		}
		p := recover()
		s.store.Dispatch(viewstate.LoadFailed{Generation: gen, Err: fmt.Errorf("load aborted: %v", p)})
		if p != nil {
			panic(p)
		}
	}()

	res, err = s.lister.ListUsers(ctx, q)
	if err != nil {
		settled = true
		log.Warn(ctx, "load users failed", "error", err)
		s.store.Dispatch(viewstate.LoadFailed{Generation: gen, Err: err})
		return models.PageResult{}, err
	}
	if res.Page < 1 {
		res.Page = q.Page
	}

	settled = true
	st := s.store.Dispatch(viewstate.LoadSucceeded{Generation: gen, Result: res})
	if st.Generation != gen {
		log.Debug(ctx, "stale page discarded", "latest", st.Generation)
	} else {
		log.Debug(ctx, "users loaded", "count", len(res.Users), "total", res.Total)
	}
	return res, nil
}

// Reload repeats the load of the current page with the current filter.
func (s *Synchronizer) Reload(ctx context.Context) (models.PageResult, error) {
	st := s.store.State()
	return s.Load(ctx, st.CurrentPage, st.Query.Field, st.Query.Text)
}
