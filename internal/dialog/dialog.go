// Package dialog berisi controller modal create/edit/delete. Setiap
// dialog memegang form-nya sendiri, lepas dari state list pemiliknya,
// dan mengumumkan keberhasilan lewat event OnSuccess yang di-subscribe
// layar (bukan lewat flag refresh implisit).
package dialog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

// State mengikuti siklus modal: closed -> open -> submitting ->
// closed saat sukses, atau kembali open dengan error saat gagal.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

var ErrNotOpen = errors.New("dialog is not open")

// FormDialogConfig menyusun perilaku satu dialog form (create atau edit).
type FormDialogConfig[F any] struct {
	// Submit memvalidasi lalu mengirim form; dipanggil sekali per attempt.
	Submit func(ctx context.Context, form F) error
	// SuccessMessage opsional; string kosong berarti tanpa banner sukses.
	SuccessMessage func(form F) string
	Notices        *notice.Board
	Logger         *zap.Logger
}

// FormDialog adalah modal dengan form tervalidasi schema. Dipakai untuk
// create (seed kosong) maupun edit (seed dari baris hasil fetch list).
type FormDialog[F any] struct {
	mu        sync.Mutex
	cfg       FormDialogConfig[F]
	state     State
	form      F
	lastErr   error
	onSuccess []func()
}

func NewFormDialog[F any](cfg FormDialogConfig[F]) *FormDialog[F] {
	if cfg.Logger == nil {
		cfg.Logger = zap.L()
	}
	cfg.Logger = cfg.Logger.Named("dialog")
	return &FormDialog[F]{cfg: cfg}
}

// OnSuccess mendaftarkan subscriber yang dipanggil setiap submit sukses.
func (d *FormDialog[F]) OnSuccess(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSuccess = append(d.onSuccess, fn)
}

// Open membuka dialog dengan nilai awal form.
func (d *FormDialog[F]) Open(seed F) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = seed
	d.lastErr = nil
	d.state = StateOpen
}

func (d *FormDialog[F]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero F
	d.form = zero
	d.lastErr = nil
	d.state = StateClosed
}

func (d *FormDialog[F]) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *FormDialog[F]) Form() F {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SetForm mengganti isi form selama dialog terbuka (user mengetik).
func (d *FormDialog[F]) SetForm(form F) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateOpen {
		d.form = form
	}
}

// Err mengembalikan error submit terakhir selama dialog masih terbuka.
func (d *FormDialog[F]) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Submit menjalankan satu attempt: validasi + satu panggilan HTTP lewat
// cfg.Submit. Sukses menutup dialog dan memanggil subscriber; gagal
// mengembalikan dialog ke state open dengan error tersimpan.
func (d *FormDialog[F]) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StateOpen {
		d.mu.Unlock()
		return ErrNotOpen
	}
	form := d.form
	d.state = StateSubmitting
	d.mu.Unlock()

	err := d.cfg.Submit(ctx, form)

	d.mu.Lock()
	if err != nil {
		d.state = StateOpen
		d.lastErr = err
		d.mu.Unlock()

		if !apperror.IsValidation(err) && d.cfg.Notices != nil {
			d.cfg.Notices.Post(apperror.MessageOf(err), true)
		}
		d.cfg.Logger.Warn("dialog submit failed", zap.Error(err))
		return err
	}

	d.state = StateClosed
	d.lastErr = nil
	var zero F
	d.form = zero
	subs := make([]func(), len(d.onSuccess))
	copy(subs, d.onSuccess)
	d.mu.Unlock()

	if d.cfg.SuccessMessage != nil && d.cfg.Notices != nil {
		if msg := d.cfg.SuccessMessage(form); msg != "" {
			d.cfg.Notices.Post(msg, false)
		}
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}
