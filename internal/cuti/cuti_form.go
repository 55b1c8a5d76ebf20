package cuti

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// Durasi banner error form cuti memang lebih lama dari toast lain.
const formNoticeTTL = 6 * time.Second

// Form adalah sub-form tambah cuti di dalam dialog detail pegawai.
// Berbeda dengan modal, form ini selalu tampil; sukses tidak memutasi
// state lokal melainkan memanggil subscriber yang me-refetch detail
// pegawai pemilik.
type Form struct {
	svc     Service
	notices *notice.Board
	logger  *zap.Logger

	mu        sync.Mutex
	alasan    string
	mulai     string
	selesai   string
	onSuccess []func()
}

func NewForm(svc Service, board *notice.Board, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.L()
	}
	return &Form{svc: svc, notices: board, logger: logger.Named("cuti.form")}
}

func (f *Form) OnSuccess(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onSuccess = append(f.onSuccess, fn)
}

func (f *Form) SetFields(alasan, tanggalMulai, tanggalSelesai string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alasan = alasan
	f.mulai = tanggalMulai
	f.selesai = tanggalSelesai
}

// Submit menempelkan id pegawai pemilik lalu POST /cuti. Gagal schema
// tidak mengirim apa pun; gagal API menampilkan pesan server.
func (f *Form) Submit(ctx context.Context, pegawaiID string) error {
	f.mu.Lock()
	req := CreateCutiRequest{
		Alasan:         f.alasan,
		TanggalMulai:   f.mulai,
		TanggalSelesai: f.selesai,
		PegawaiID:      pegawaiID,
	}
	subs := make([]func(), len(f.onSuccess))
	copy(subs, f.onSuccess)
	f.mu.Unlock()

	if err := f.svc.Create(ctx, req); err != nil {
		if !apperror.IsValidation(err) && f.notices != nil {
			f.notices.PostFor(apperror.MessageOf(err), true, formNoticeTTL)
		}
		return err
	}

	f.mu.Lock()
	f.alasan, f.mulai, f.selesai = "", "", ""
	f.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}
