// Package app merangkai seluruh dependensi client menjadi satu graph:
// sesi, HTTP client, service per entity, dan controller layar.
package app

import (
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/admin"
	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/auth"
	"github.com/Happid/kepegawaian/internal/config"
	"github.com/Happid/kepegawaian/internal/cuti"
	"github.com/Happid/kepegawaian/internal/nav"
	"github.com/Happid/kepegawaian/internal/pegawai"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

type App struct {
	Session session.Store
	Notices *notice.Board
	Gate    *session.Gate

	Auth auth.Service

	AdminScreen   *admin.Screen
	ProfileScreen *admin.ProfileScreen
	PegawaiScreen *pegawai.Screen
}

// Build menyusun app dari config. Navigator disuntik dari luar karena
// mekanisme pindah layar milik shell yang menjalankan app (terminal,
// test, atau embedding lain).
func Build(cfg config.Config, navigator nav.Navigator, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.L()
	}

	sess := session.NewFileStore(cfg.SessionFile)
	board := notice.NewBoard(notice.DefaultTTL)
	factory := api.NewFactory(cfg.APIBaseURL, sess, cfg.HTTPTimeout, logger)
	gate := session.NewGate(sess, navigator, logger)

	adminSvc := admin.NewService(factory, logger)
	pegawaiSvc := pegawai.NewService(factory, logger)
	cutiSvc := cuti.NewService(factory, logger)

	return &App{
		Session:       sess,
		Notices:       board,
		Gate:          gate,
		Auth:          auth.NewService(factory, sess, navigator, board, logger),
		AdminScreen:   admin.NewScreen(adminSvc, factory, gate, board, logger),
		ProfileScreen: admin.NewProfileScreen(adminSvc, sess, gate, board, logger),
		PegawaiScreen: pegawai.NewScreen(pegawaiSvc, cutiSvc, factory, gate, board, logger),
	}
}
