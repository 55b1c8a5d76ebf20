package pegawai

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/cuti"
	"github.com/Happid/kepegawaian/internal/dialog"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// DetailDialog adalah modal detail pegawai: form edit plus tabel cuti
// dengan form tambah dan konfirmasi hapus cuti di dalamnya. Mutasi cuti
// me-refetch detail ini saja; list pegawai di belakangnya tidak ikut
// di-refresh karena barisnya tidak berubah.
type DetailDialog struct {
	svc     Service
	notices *notice.Board
	logger  *zap.Logger

	mu       sync.Mutex
	state    dialog.State
	id       string
	form     UpdatePegawaiForm
	cutiRows []cuti.Cuti
	lastErr  error
	onSaved  []func()

	CutiForm *cuti.Form
	CutiDel  *dialog.DeleteDialog
}

func NewDetailDialog(
	svc Service,
	cutiSvc cuti.Service,
	factory *api.Factory,
	board *notice.Board,
	logger *zap.Logger,
) *DetailDialog {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("pegawai.detail")

	d := &DetailDialog{
		svc:      svc,
		notices:  board,
		logger:   logger,
		CutiForm: cuti.NewForm(cutiSvc, board, logger),
		CutiDel:  dialog.NewDeleteDialog(factory, "cuti", board, logger),
	}

	reload := func() {
		if err := d.Reload(context.Background()); err != nil {
			d.logger.Warn("reload detail failed", zap.Error(err))
		}
	}
	d.CutiForm.OnSuccess(reload)
	d.CutiDel.OnSuccess(reload)

	return d
}

// OnSaved mendaftarkan subscriber untuk submit edit pegawai yang sukses.
func (d *DetailDialog) OnSaved(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSaved = append(d.onSaved, fn)
}

// Open mem-fetch detail by id lalu membuka dialog dengan form dan tabel
// cuti ter-seed. Gagal fetch menampilkan banner dan dialog tetap tertutup.
func (d *DetailDialog) Open(ctx context.Context, id string) error {
	p, err := d.svc.Get(ctx, id)
	if err != nil {
		if d.notices != nil {
			d.notices.Post(apperror.MessageOf(err), true)
		}
		return err
	}

	d.mu.Lock()
	d.id = id
	d.seedLocked(p)
	d.lastErr = nil
	d.state = dialog.StateOpen
	d.mu.Unlock()
	return nil
}

// Reload mem-fetch ulang detail yang sedang terbuka. Dipakai setelah
// tambah/hapus cuti; form ikut di-seed ulang dari server.
func (d *DetailDialog) Reload(ctx context.Context) error {
	d.mu.Lock()
	if d.state == dialog.StateClosed {
		d.mu.Unlock()
		return dialog.ErrNotOpen
	}
	id := d.id
	d.mu.Unlock()

	p, err := d.svc.Get(ctx, id)
	if err != nil {
		if d.notices != nil {
			d.notices.Post(apperror.MessageOf(err), true)
		}
		return err
	}

	d.mu.Lock()
	if d.state != dialog.StateClosed && d.id == id {
		d.seedLocked(p)
	}
	d.mu.Unlock()
	return nil
}

func (d *DetailDialog) seedLocked(p Pegawai) {
	d.form = UpdatePegawaiForm{
		ID:           p.ID,
		NamaDepan:    p.NamaDepan,
		NamaBelakang: p.NamaBelakang,
		Email:        p.Email,
		TanggalLahir: p.TanggalLahir,
		JenisKelamin: p.JenisKelamin,
		NoHp:         p.NoHp,
		Alamat:       p.Alamat,
	}
	d.cutiRows = p.Cuti
}

func (d *DetailDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id = ""
	d.form = UpdatePegawaiForm{}
	d.cutiRows = nil
	d.lastErr = nil
	d.state = dialog.StateClosed
}

func (d *DetailDialog) State() dialog.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *DetailDialog) Form() UpdatePegawaiForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

func (d *DetailDialog) SetForm(form UpdatePegawaiForm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == dialog.StateOpen {
		form.ID = d.id
		d.form = form
	}
}

func (d *DetailDialog) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// CutiRows mengembalikan daftar cuti hasil fetch terakhir.
func (d *DetailDialog) CutiRows() []cuti.Cuti {
	d.mu.Lock()
	defer d.mu.Unlock()
	rows := make([]cuti.Cuti, len(d.cutiRows))
	copy(rows, d.cutiRows)
	return rows
}

// SubmitCuti mengirim form tambah cuti untuk pegawai yang sedang terbuka.
func (d *DetailDialog) SubmitCuti(ctx context.Context) error {
	d.mu.Lock()
	if d.state != dialog.StateOpen {
		d.mu.Unlock()
		return dialog.ErrNotOpen
	}
	id := d.id
	d.mu.Unlock()

	return d.CutiForm.Submit(ctx, id)
}

// OpenDeleteCuti membuka konfirmasi hapus untuk satu baris cuti.
func (d *DetailDialog) OpenDeleteCuti(row cuti.Cuti) {
	d.CutiDel.Open(row.ID, row.Alasan)
}

// Submit mengirim PATCH data pegawai. Sukses menampilkan banner,
// memberi tahu subscriber (re-fetch list), dan menutup dialog.
func (d *DetailDialog) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.state != dialog.StateOpen {
		d.mu.Unlock()
		return dialog.ErrNotOpen
	}
	form := d.form
	d.state = dialog.StateSubmitting
	d.mu.Unlock()

	err := d.svc.Update(ctx, form)

	d.mu.Lock()
	if err != nil {
		d.state = dialog.StateOpen
		d.lastErr = err
		d.mu.Unlock()

		if !apperror.IsValidation(err) && d.notices != nil {
			d.notices.Post(apperror.MessageOf(err), true)
		}
		d.logger.Warn("update pegawai failed", zap.Error(err))
		return err
	}

	d.state = dialog.StateClosed
	d.id = ""
	d.form = UpdatePegawaiForm{}
	d.cutiRows = nil
	d.lastErr = nil
	subs := make([]func(), len(d.onSaved))
	copy(subs, d.onSaved)
	d.mu.Unlock()

	if d.notices != nil {
		d.notices.Post("Edit "+form.NamaDepan+" Berhasil", false)
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}
