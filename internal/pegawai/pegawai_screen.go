package pegawai

import (
	"context"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/cuti"
	"github.com/Happid/kepegawaian/internal/dialog"
	"github.com/Happid/kepegawaian/internal/listing"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// Screen merangkai layar daftar pegawai. Edit tidak punya modal
// sendiri: form edit hidup di dalam dialog detail bersama tabel cuti.
type Screen struct {
	gate    *session.Gate
	notices *notice.Board
	logger  *zap.Logger

	List   *listing.Controller[Pegawai]
	Add    *dialog.FormDialog[CreatePegawaiRequest]
	Del    *dialog.DeleteDialog
	Detail *DetailDialog
}

func NewScreen(
	svc Service,
	cutiSvc cuti.Service,
	factory *api.Factory,
	gate *session.Gate,
	board *notice.Board,
	logger *zap.Logger,
) *Screen {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("pegawai.screen")

	s := &Screen{
		gate:    gate,
		notices: board,
		logger:  logger,
		List:    listing.NewController(svc.List, logger),
		Add: dialog.NewFormDialog(dialog.FormDialogConfig[CreatePegawaiRequest]{
			Submit:  svc.Create,
			Notices: board,
			Logger:  logger,
		}),
		Del:    dialog.NewDeleteDialog(factory, "pegawai", board, logger),
		Detail: NewDetailDialog(svc, cutiSvc, factory, board, logger),
	}

	refresh := func() { _ = s.List.Refresh(context.Background()) }
	s.Add.OnSuccess(refresh)
	s.Del.OnSuccess(refresh)
	// hanya edit data pegawai yang menyentuh list; mutasi cuti cukup
	// me-refetch detail di dalam dialog
	s.Detail.OnSaved(refresh)

	return s
}

// Mount dipanggil saat layar dibuka. Tanpa token tidak merender apa pun.
func (s *Screen) Mount(ctx context.Context) bool {
	if !s.gate.Allow() {
		return false
	}
	if err := s.List.Load(ctx); err != nil {
		s.notices.Post(apperror.MessageOf(err), true)
	}
	return true
}

// OpenDetail membuka dialog detail untuk satu baris; isinya selalu
// hasil fetch ulang, bukan salinan baris list.
func (s *Screen) OpenDetail(ctx context.Context, row Pegawai) error {
	return s.Detail.Open(ctx, row.ID)
}

func (s *Screen) OpenDelete(row Pegawai) {
	s.Del.Open(row.ID, row.NamaDepan+" "+row.NamaBelakang)
}
