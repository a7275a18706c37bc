// Package dashboard composes the session resolver, the collection
// synchronizer and the mutation dispatcher into one users view.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/collection"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Dashboard is one activation of the users view. It owns its store; a new
// activation starts from Mount.
type Dashboard struct {
	store    *viewstate.Store
	resolver *session.Resolver
	sync     *collection.Synchronizer
	mut      *mutation.Dispatcher
	auth     session.AuthService
	log      logging.Logger
}

func New(c client.Client, auth session.AuthService, n nav.Navigator, log logging.Logger) *Dashboard {
	store := viewstate.NewStore()
	syncer := collection.NewSynchronizer(c, store, log)
	return &Dashboard{
		store:    store,
		resolver: session.NewResolver(c, n, log),
		sync:     syncer,
		mut:      mutation.NewDispatcher(c, store, syncer, n, log),
		auth:     auth,
		log:      log,
	}
}

// Mount resets the view, then resolves the session and loads the first
// page concurrently. It returns once both have settled.
func (d *Dashboard) Mount(ctx context.Context) viewstate.State {
	d.store.Dispatch(viewstate.Mounted{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s := d.resolver.Resolve(ctx)
		d.store.Dispatch(viewstate.SessionResolved{Session: s})
	}()
	go func() {
		defer wg.Done()
		_, _ = d.sync.Load(ctx, 1, models.FilterNone, "")
	}()
	wg.Wait()

	return d.store.State()
}

func (d *Dashboard) State() viewstate.State {
	return d.store.State()
}

// ChangePage loads page keeping the current filter.
func (d *Dashboard) ChangePage(ctx context.Context, page int) viewstate.State {
	q := d.store.State().Query
	_, _ = d.sync.Load(ctx, page, q.Field, q.Text)
	return d.store.State()
}

// NextPage is a no-op on the last page.
func (d *Dashboard) NextPage(ctx context.Context) viewstate.State {
	st := d.store.State()
	if st.CurrentPage >= st.TotalPages() {
		return st
	}
	return d.ChangePage(ctx, st.CurrentPage+1)
}

// PrevPage is a no-op on the first page.
func (d *Dashboard) PrevPage(ctx context.Context) viewstate.State {
	st := d.store.State()
	if st.CurrentPage <= 1 {
		return st
	}
	return d.ChangePage(ctx, st.CurrentPage-1)
}

// ChangeFilter applies a filter starting from the first page.
func (d *Dashboard) ChangeFilter(ctx context.Context, field models.FilterField, text string) viewstate.State {
	_, _ = d.sync.Load(ctx, 1, field, text)
	return d.store.State()
}

func (d *Dashboard) ClearFilter(ctx context.Context) viewstate.State {
	return d.ChangeFilter(ctx, models.FilterNone, "")
}

func (d *Dashboard) Reload(ctx context.Context) viewstate.State {
	_, _ = d.sync.Reload(ctx)
	return d.store.State()
}

// BeginEdit opens the edit dialog for a listed user.
func (d *Dashboard) BeginEdit(id int64) (models.User, error) {
	u, ok := d.store.State().Find(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %d is not on this page", id)
	}
	d.store.Dispatch(viewstate.EditStarted{User: u})
	return u, nil
}

func (d *Dashboard) CancelEdit() {
	d.store.Dispatch(viewstate.EditCancelled{})
}

func (d *Dashboard) SubmitEdit(ctx context.Context, patch models.Patch) models.Outcome {
	return d.mut.Update(ctx, patch)
}

func (d *Dashboard) Create(ctx context.Context, req models.CreateUserRequest) models.Outcome {
	return d.mut.Create(ctx, req)
}

func (d *Dashboard) Delete(ctx context.Context, id int64) models.Outcome {
	return d.mut.Delete(ctx, id)
}

func (d *Dashboard) DismissNotice() {
	d.store.Dispatch(viewstate.NoticeDismissed{})
}

// Logout ends the session. On failure the view stays and shows a notice.
func (d *Dashboard) Logout(ctx context.Context) models.Outcome {
	out := d.auth.Logout(ctx)
	if out.OK() {
		d.store.Dispatch(viewstate.LoggedOut{})
		return out
	}
	if out.Kind == models.OutcomeFailed {
		d.store.Dispatch(viewstate.NoticeRaised{Notice: viewstate.Notice{Level: viewstate.NoticeError, Text: out.Message}})
	}
	return out
}
