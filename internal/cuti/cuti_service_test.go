package cuti_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/cuti"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
	"github.com/Happid/kepegawaian/internal/shared/notice"
)

func newService(t *testing.T, baseURL string) cuti.Service {
	t.Helper()
	sess := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, sess.Set("token-123", "admin-1"))
	return cuti.NewService(api.NewFactory(baseURL, sess, 0, zap.NewNop()), zap.NewNop())
}

func validRequest() cuti.CreateCutiRequest {
	return cuti.CreateCutiRequest{
		Alasan:         "Acara keluarga",
		TanggalMulai:   "2024-06-01",
		TanggalSelesai: "2024-06-03",
		PegawaiID:      "p1",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("payload includes owning pegawai id", func(t *testing.T) {
		var gotPath string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		svc := newService(t, srv.URL)
		assert.NoError(t, svc.Create(context.Background(), validRequest()))

		assert.Equal(t, "/cuti", gotPath)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(gotBody, &payload))
		assert.Equal(t, "p1", payload["pegawaiId"])
	})

	t.Run("empty fields never reach the network", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		svc := newService(t, srv.URL)

		for _, req := range []cuti.CreateCutiRequest{
			{TanggalMulai: "2024-06-01", TanggalSelesai: "2024-06-03", PegawaiID: "p1"},
			{Alasan: "Acara", TanggalSelesai: "2024-06-03", PegawaiID: "p1"},
			{Alasan: "Acara", TanggalMulai: "2024-06-01", PegawaiID: "p1"},
		} {
			err := svc.Create(context.Background(), req)
			assert.True(t, apperror.IsValidation(err))
		}
		assert.Zero(t, calls)
	})
}

func TestService_Delete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newService(t, srv.URL)
	assert.NoError(t, svc.Delete(context.Background(), "c9"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cuti/c9", gotPath)
}

type fakeCutiService struct {
	CreateFn func(ctx context.Context, req cuti.CreateCutiRequest) error
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeCutiService) Create(ctx context.Context, req cuti.CreateCutiRequest) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, req)
	}
	return nil
}

func (f *fakeCutiService) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func TestForm_Submit(t *testing.T) {
	t.Run("success fires detail refetch callback", func(t *testing.T) {
		var got cuti.CreateCutiRequest
		svc := &fakeCutiService{CreateFn: func(ctx context.Context, req cuti.CreateCutiRequest) error {
			got = req
			return nil
		}}

		refetched := 0
		form := cuti.NewForm(svc, notice.NewBoard(time.Minute), zap.NewNop())
		form.OnSuccess(func() { refetched++ })

		form.SetFields("Acara keluarga", "2024-06-01", "2024-06-03")
		assert.NoError(t, form.Submit(context.Background(), "p1"))

		assert.Equal(t, "p1", got.PegawaiID)
		assert.Equal(t, 1, refetched)
	})

	t.Run("api failure posts notice and keeps callback silent", func(t *testing.T) {
		svc := &fakeCutiService{CreateFn: func(ctx context.Context, req cuti.CreateCutiRequest) error {
			return apperror.New(apperror.CodeAPIRejected, "Tanggal bentrok", http.StatusConflict)
		}}

		refetched := 0
		board := notice.NewBoard(time.Minute)
		form := cuti.NewForm(svc, board, zap.NewNop())
		form.OnSuccess(func() { refetched++ })

		form.SetFields("Acara", "2024-06-01", "2024-06-03")
		err := form.Submit(context.Background(), "p1")

		assert.Error(t, err)
		assert.Zero(t, refetched)

		n, ok := board.Current()
		assert.True(t, ok)
		assert.Equal(t, "Tanggal bentrok", n.Message)
	})

	t.Run("validation failure stays local", func(t *testing.T) {
		// service betulan menghadap port mati: error jaringan akan beda kode
		svc := newService(t, "http://127.0.0.1:1")
		form := cuti.NewForm(svc, nil, zap.NewNop())
		form.SetFields("", "2024-06-01", "2024-06-03")

		err := form.Submit(context.Background(), "p1")
		assert.True(t, apperror.IsValidation(err))
	})
}
