package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/nav"
	"github.com/Happid/kepegawaian/internal/session"
)

func newStore(t *testing.T) session.Store {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_SetAndRead(t *testing.T) {
	store := newStore(t)

	assert.Empty(t, store.Token())
	assert.Empty(t, store.AdminID())

	assert.NoError(t, store.Set("token-123", "admin-1"))
	assert.Equal(t, "token-123", store.Token())
	assert.Equal(t, "admin-1", store.AdminID())
}

func TestFileStore_Clear(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.Set("token-123", "admin-1"))

	assert.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	// Clear tanpa sesi tidak boleh error.
	assert.NoError(t, store.Clear())
}

func TestFileStore_FreshReadAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := session.NewFileStore(path)
	second := session.NewFileStore(path)

	assert.Empty(t, second.Token())
	assert.NoError(t, first.Set("token-abc", "admin-9"))

	// Kredensial yang baru ditulis langsung terlihat tanpa reload.
	assert.Equal(t, "token-abc", second.Token())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := session.NewFileStore(path)
	assert.Empty(t, store.Token())
}

type fakeNavigator struct {
	replaced []nav.Route
	pushed   []nav.Route
}

func (f *fakeNavigator) Replace(r nav.Route) { f.replaced = append(f.replaced, r) }
func (f *fakeNavigator) Push(r nav.Route)    { f.pushed = append(f.pushed, r) }

func TestGate_Allow(t *testing.T) {
	t.Run("without token redirects to login", func(t *testing.T) {
		store := newStore(t)
		navigator := &fakeNavigator{}
		gate := session.NewGate(store, navigator, zap.NewNop())

		assert.False(t, gate.Allow())
		assert.Equal(t, []nav.Route{nav.RouteLogin}, navigator.replaced)
		assert.Empty(t, navigator.pushed)
	})

	t.Run("with token renders", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Set("token-123", "admin-1"))
		navigator := &fakeNavigator{}
		gate := session.NewGate(store, navigator, zap.NewNop())

		assert.True(t, gate.Allow())
		assert.Empty(t, navigator.replaced)
	})
}

func TestGate_Home(t *testing.T) {
	t.Run("with token goes to admin", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Set("token-123", "admin-1"))
		navigator := &fakeNavigator{}

		session.NewGate(store, navigator, zap.NewNop()).Home()
		assert.Equal(t, []nav.Route{nav.RouteAdmin}, navigator.replaced)
	})

	t.Run("without token goes to login", func(t *testing.T) {
		navigator := &fakeNavigator{}
		session.NewGate(newStore(t), navigator, zap.NewNop()).Home()
		assert.Equal(t, []nav.Route{nav.RouteLogin}, navigator.replaced)
	})
}

func TestGate_Logout(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.Set("token-123", "admin-1"))
	navigator := &fakeNavigator{}
	gate := session.NewGate(store, navigator, zap.NewNop())

	assert.NoError(t, gate.Logout())
	assert.Empty(t, store.Token())
	assert.Equal(t, []nav.Route{nav.RouteLogin}, navigator.replaced)
}
