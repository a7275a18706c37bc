package viewstate

import (
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func users(ids ...int64) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.User{ID: id, FirstName: "U", LastName: "Ser"})
	}
	return out
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 1, s.Query.Page)
	assert.False(t, s.Loading)
	assert.False(t, s.View().CanCreate, "non-admin projection until resolved")
	assert.Equal(t, 1, s.TotalPages())
}

func TestLoad_SuccessReplacesTogether(t *testing.T) {
	s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 2}})
	require.True(t, s.Loading)
	require.Equal(t, uint64(1), s.Generation)

	s = Reduce(s, LoadSucceeded{Generation: 1, Result: models.PageResult{Users: users(11, 12), Total: 12, Page: 2}})

	assert.False(t, s.Loading)
	assert.Equal(t, users(11, 12), s.Items)
	assert.Equal(t, 12, s.Total)
	assert.Equal(t, 2, s.CurrentPage)
	assert.Equal(t, 2, s.TotalPages())
}

func TestLoad_PageFallsBackToRequested(t *testing.T) {
	s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 3}})
	s = Reduce(s, LoadSucceeded{Generation: s.Generation, Result: models.PageResult{Total: 30}})
	assert.Equal(t, 3, s.CurrentPage)
}

func TestLoad_FailureKeepsData(t *testing.T) {
	s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 1}})
	s = Reduce(s, LoadSucceeded{Generation: s.Generation, Result: models.PageResult{Users: users(1), Total: 1, Page: 1}})

	s = Reduce(s, LoadIssued{Query: models.PageQuery{Page: 2}})
	s = Reduce(s, LoadFailed{Generation: s.Generation, Err: errors.New("down")})

	assert.False(t, s.Loading)
	assert.Equal(t, users(1), s.Items)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 1, s.CurrentPage)
	require.NotNil(t, s.Notice)
	assert.Equal(t, MsgLoadFailed, s.Notice.Text)
}

func TestLoad_StaleResponsesDiscarded(t *testing.T) {
	s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 1, Field: models.FilterEmail, Text: "a"}})
	first := s.Generation
	s = Reduce(s, LoadIssued{Query: models.PageQuery{Page: 1, Field: models.FilterEmail, Text: "ab"}})
	latest := s.Generation

	// latest arrives first, the older one afterwards
	s = Reduce(s, LoadSucceeded{Generation: latest, Result: models.PageResult{Users: users(2), Total: 1, Page: 1}})
	s = Reduce(s, LoadSucceeded{Generation: first, Result: models.PageResult{Users: users(1, 2, 3), Total: 3, Page: 1}})
	assert.Equal(t, users(2), s.Items)
	assert.Equal(t, 1, s.Total)

	s = Reduce(s, LoadFailed{Generation: first})
	assert.Nil(t, s.Notice, "stale failure is ignored")
}

func TestLoad_StaleDoesNotClearLoading(t *testing.T) {
	s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 1}})
	old := s.Generation
	s = Reduce(s, LoadIssued{Query: models.PageQuery{Page: 2}})

	s = Reduce(s, LoadSucceeded{Generation: old, Result: models.PageResult{Page: 1}})
	assert.True(t, s.Loading)
}

func TestEditLifecycle(t *testing.T) {
	u := users(5)[0]
	s := Reduce(Initial(), EditStarted{User: u})
	require.NotNil(t, s.Editing)
	assert.Equal(t, u, *s.Editing)

	s = Reduce(s, UpdateRejected{Message: "Email already exists"})
	assert.NotNil(t, s.Editing)
	assert.Equal(t, "Email already exists", s.EditError)

	s = Reduce(s, UpdateFailed{Err: errors.New("down")})
	assert.NotNil(t, s.Editing, "dialog stays open on transport failure")
	assert.Equal(t, MsgUpdateFailed, s.Notice.Text)

	s = Reduce(s, UpdateSucceeded{})
	assert.Nil(t, s.Editing)
	assert.Empty(t, s.EditError)

	s = Reduce(s, EditStarted{User: u})
	s = Reduce(s, EditCancelled{})
	assert.Nil(t, s.Editing)
}

func TestDelete_RemovesRowAndDecrementsTotal(t *testing.T) {
	s := Initial()
	s.Items = users(1, 2, 3)
	s.Total = 3
	before := s.Items

	next := Reduce(s, DeleteSucceeded{ID: 2})
	assert.Equal(t, users(1, 3), next.Items)
	assert.Equal(t, 2, next.Total)
	assert.Equal(t, users(1, 2, 3), before, "previous slice untouched")

	absent := Reduce(next, DeleteSucceeded{ID: 42})
	assert.Equal(t, users(1, 3), absent.Items)
	assert.Equal(t, 2, absent.Total)

	failed := Reduce(next, DeleteFailed{ID: 1})
	assert.Equal(t, users(1, 3), failed.Items)
	assert.Equal(t, MsgDeleteFailed, failed.Notice.Text)
}

func TestNoticesAndLogout(t *testing.T) {
	s := Reduce(Initial(), NoticeRaised{Notice: Notice{Level: NoticeInfo, Text: "hi"}})
	assert.Equal(t, "hi", s.Notice.Text)
	s = Reduce(s, NoticeDismissed{})
	assert.Nil(t, s.Notice)

	s = Reduce(s, SessionResolved{Session: session.Authenticated(models.User{Role: models.RoleAdmin})})
	assert.True(t, s.View().CanDelete)

	s.Items = users(1)
	s = Reduce(s, LoggedOut{})
	assert.False(t, s.View().CanDelete, "projection follows the session")
	assert.Empty(t, s.Items)
}

func TestFind(t *testing.T) {
	s := Initial()
	s.Items = users(1, 2)
	u, ok := s.Find(2)
	assert.True(t, ok)
	assert.Equal(t, int64(2), u.ID)
	_, ok = s.Find(9)
	assert.False(t, ok)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(LoadIssued{Query: models.PageQuery{Page: 1}})
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), st.State().Generation)
	st.Dispatch(Mounted{})
	want := Initial()
	want.Generation = 50
	assert.Equal(t, want, st.State(), "mount resets the view but not the generation")
}

func TestRestart_KeepsGeneration(t *testing.T) {
	for _, reset := range []Event{Mounted{}, LoggedOut{}} {
		s := Reduce(Initial(), LoadIssued{Query: models.PageQuery{Page: 1}})
		inFlight := s.Generation

		s = Reduce(s, reset)
		s = Reduce(s, LoadIssued{Query: models.PageQuery{Page: 1}})
		require.NotEqual(t, inFlight, s.Generation)

		s = Reduce(s, LoadSucceeded{Generation: inFlight, Result: models.PageResult{Users: users(7), Total: 1, Page: 1}})
		assert.Empty(t, s.Items, "a load of the previous activation is discarded")
		assert.True(t, s.Loading)
	}
}
