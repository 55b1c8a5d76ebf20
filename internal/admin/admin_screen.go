package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/dialog"
	"github.com/Happid/kepegawaian/internal/listing"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// Screen merangkai layar daftar admin: gate sesi, list berhalaman, dan
// tiga dialog. Semua dialog mengumumkan sukses lewat event yang
// di-subscribe ke refresh list.
type Screen struct {
	gate    *session.Gate
	notices *notice.Board
	logger  *zap.Logger

	List *listing.Controller[Admin]
	Add  *dialog.FormDialog[CreateAdminRequest]
	Edit *dialog.FormDialog[UpdateAdminForm]
	Del  *dialog.DeleteDialog
}

func NewScreen(
	svc Service,
	factory *api.Factory,
	gate *session.Gate,
	board *notice.Board,
	logger *zap.Logger,
) *Screen {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("admin.screen")

	s := &Screen{
		gate:    gate,
		notices: board,
		logger:  logger,
		List:    listing.NewController(svc.List, logger),
		Add: dialog.NewFormDialog(dialog.FormDialogConfig[CreateAdminRequest]{
			Submit:  svc.Create,
			Notices: board,
			Logger:  logger,
		}),
		Edit: dialog.NewFormDialog(dialog.FormDialogConfig[UpdateAdminForm]{
			Submit: func(ctx context.Context, form UpdateAdminForm) error {
				return svc.Update(ctx, form)
			},
			SuccessMessage: func(form UpdateAdminForm) string {
				return "Edit " + form.NamaDepan + " Berhasil"
			},
			Notices: board,
			Logger:  logger,
		}),
		Del: dialog.NewDeleteDialog(factory, "admin", board, logger),
	}

	refresh := func() { _ = s.List.Refresh(context.Background()) }
	s.Add.OnSuccess(refresh)
	s.Edit.OnSuccess(refresh)
	s.Del.OnSuccess(refresh)

	return s
}

// Mount dipanggil saat layar dibuka. Tanpa token tidak merender apa pun
// (gate sudah memindahkan ke login). Kegagalan load pertama tetap
// ditampilkan sebagai banner.
func (s *Screen) Mount(ctx context.Context) bool {
	if !s.gate.Allow() {
		return false
	}
	if err := s.List.Load(ctx); err != nil {
		s.notices.Post(apperror.MessageOf(err), true)
	}
	return true
}

// OpenEdit membuka modal edit dengan nilai dari baris yang terakhir
// di-fetch list (tanpa re-fetch jaringan).
func (s *Screen) OpenEdit(row Admin) {
	s.Edit.Open(UpdateAdminForm{
		ID:           row.ID,
		NamaDepan:    row.NamaDepan,
		NamaBelakang: row.NamaBelakang,
		Email:        row.Email,
		TanggalLahir: row.TanggalLahir,
		JenisKelamin: row.JenisKelamin,
	})
}

// OpenDelete membuka konfirmasi hapus untuk satu baris.
func (s *Screen) OpenDelete(row Admin) {
	s.Del.Open(row.ID, row.NamaDepan+" "+row.NamaBelakang)
}
