package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/nav"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
	"github.com/Happid/kepegawaian/internal/shared/validate"
)

const fallbackLoginMessage = "Login gagal"

type Service interface {
	// Login menukar kredensial dengan token. Sukses menyimpan token +
	// id admin ke sesi lalu pindah ke layar admin; gagal menampilkan
	// pesan dari server di banner sementara.
	Login(ctx context.Context, req LoginRequest) error
	// Logout mengosongkan sesi dan kembali ke layar login.
	Logout() error
}

type service struct {
	factory *api.Factory
	session session.Store
	nav     nav.Navigator
	notices *notice.Board
	logger  *zap.Logger
}

func NewService(
	factory *api.Factory,
	sess session.Store,
	navigator nav.Navigator,
	board *notice.Board,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		factory: factory,
		session: sess,
		nav:     navigator,
		notices: board,
		logger:  logger.Named("auth"),
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		// gagal schema: tidak ada request keluar, error tampil per field
		return err
	}

	var resp LoginResponse
	if err := s.factory.Client().Post(ctx, "/auth/login", req, &resp); err != nil {
		msg := apperror.MessageOf(err)
		if msg == "" || msg == apperror.FallbackMessage {
			msg = fallbackLoginMessage
		}
		s.notices.Post(msg, true)
		s.logger.Warn("login rejected", zap.String("email", req.Email))
		return err
	}

	if err := s.session.Set(resp.Token, resp.Admin.ID); err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
		return err
	}

	s.logger.Info("login success", zap.String("admin_id", resp.Admin.ID))
	s.nav.Push(nav.RouteAdmin)
	return nil
}

func (s *service) Logout() error {
	if err := s.session.Clear(); err != nil {
		s.logger.Error("failed to clear session", zap.Error(err))
		return err
	}
	s.nav.Replace(nav.RouteLogin)
	return nil
}
