package admin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// ProfileScreen adalah layar profil admin yang sedang login: form diisi
// dari GET /admin/:id (id diambil dari sesi), submit mem-PATCH record
// yang sama.
type ProfileScreen struct {
	svc     Service
	session session.Store
	gate    *session.Gate
	notices *notice.Board
	logger  *zap.Logger

	mu   sync.Mutex
	form ProfileForm
}

func NewProfileScreen(
	svc Service,
	sess session.Store,
	gate *session.Gate,
	board *notice.Board,
	logger *zap.Logger,
) *ProfileScreen {
	if logger == nil {
		logger = zap.L()
	}
	return &ProfileScreen{
		svc:     svc,
		session: sess,
		gate:    gate,
		notices: board,
		logger:  logger.Named("profile.screen"),
	}
}

// Mount memuat data admin dari id yang tersimpan di sesi.
func (p *ProfileScreen) Mount(ctx context.Context) bool {
	if !p.gate.Allow() {
		return false
	}

	adminID := p.session.AdminID()
	record, err := p.svc.Get(ctx, adminID)
	if err != nil {
		p.logger.Error("failed to load profile", zap.String("admin_id", adminID), zap.Error(err))
		p.notices.Post(apperror.MessageOf(err), true)
		return true
	}

	p.mu.Lock()
	p.form = ProfileForm{
		NamaDepan:    record.NamaDepan,
		NamaBelakang: record.NamaBelakang,
		Email:        record.Email,
		TanggalLahir: record.TanggalLahir,
		JenisKelamin: record.JenisKelamin,
	}
	p.mu.Unlock()
	return true
}

func (p *ProfileScreen) Form() ProfileForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *ProfileScreen) SetForm(form ProfileForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Submit mem-PATCH seluruh form ke record admin milik sesi.
func (p *ProfileScreen) Submit(ctx context.Context) error {
	p.mu.Lock()
	form := p.form
	p.mu.Unlock()

	err := p.svc.UpdateProfile(ctx, p.session.AdminID(), form)
	if err != nil {
		if !apperror.IsValidation(err) {
			p.notices.Post(apperror.MessageOf(err), true)
		}
		return err
	}

	p.notices.Post("data berhasil diperbarui", false)
	return nil
}
