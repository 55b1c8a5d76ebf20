package session

import (
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/nav"
)

// Gate menjaga layar yang butuh login.
type Gate struct {
	store  Store
	nav    nav.Navigator
	logger *zap.Logger
}

func NewGate(store Store, navigator nav.Navigator, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.L()
	}
	return &Gate{store: store, nav: navigator, logger: logger.Named("session.gate")}
}

// Allow dipanggil saat mount layar terproteksi. Jika token tidak ada,
// user dipindahkan ke layar login dengan replace (back tidak boleh
// kembali ke layar terproteksi tanpa token) dan layar tidak boleh
// merender apa pun.
func (g *Gate) Allow() bool {
	if g.store.Token() == "" {
		g.logger.Debug("no token, redirecting to login")
		g.nav.Replace(nav.RouteLogin)
		return false
	}
	return true
}

// Home meniru halaman root: token ada diarahkan ke layar admin,
// selain itu ke login. Keduanya replace.
func (g *Gate) Home() {
	if g.store.Token() != "" {
		g.nav.Replace(nav.RouteAdmin)
		return
	}
	g.nav.Replace(nav.RouteLogin)
}

// Logout mengosongkan sesi lalu kembali ke layar login.
func (g *Gate) Logout() error {
	if err := g.store.Clear(); err != nil {
		g.logger.Error("failed to clear session", zap.Error(err))
		return err
	}
	g.nav.Replace(nav.RouteLogin)
	return nil
}
