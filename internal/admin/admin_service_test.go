package admin_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/admin"
	"github.com/Happid/kepegawaian/internal/api"
	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

type recordingServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
	srv      *httptest.Server
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()
	rs := &recordingServer{handler: handler}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rs.mu.Lock()
		rs.requests = append(rs.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   body,
		})
		rs.mu.Unlock()

		if rs.handler != nil {
			rs.handler(w, r)
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func (rs *recordingServer) count() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.requests)
}

func (rs *recordingServer) last() recordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.requests[len(rs.requests)-1]
}

func newService(t *testing.T, baseURL string) admin.Service {
	t.Helper()
	sess := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, sess.Set("token-123", "admin-1"))
	return admin.NewService(api.NewFactory(baseURL, sess, 0, zap.NewNop()), zap.NewNop())
}

func validCreate() admin.CreateAdminRequest {
	return admin.CreateAdminRequest{
		NamaDepan:    "Budi",
		NamaBelakang: "Santoso",
		Email:        "budi@mail.com",
		JenisKelamin: admin.GenderPria,
		TanggalLahir: "1990-01-02",
		Password:     "rahasia1",
	}
}

func TestService_List(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"a1","namaDepan":"Budi"}],"total":12}`))
	})
	svc := newService(t, rs.srv.URL)

	page, err := svc.List(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Rows, 1)
	assert.Equal(t, "Budi", page.Rows[0].NamaDepan)

	last := rs.last()
	assert.Equal(t, "/admin", last.path)
	assert.Contains(t, last.query, "page=2")
	assert.Contains(t, last.query, "limit=5")
}

func TestService_Get(t *testing.T) {
	rs := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"a1","namaDepan":"Budi","email":"budi@mail.com"}}`))
	})
	svc := newService(t, rs.srv.URL)

	record, err := svc.Get(context.Background(), "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", record.ID)
	assert.Equal(t, "/admin/a1", rs.last().path)
}

func TestService_Create(t *testing.T) {
	t.Run("payload has no pegawai-only fields", func(t *testing.T) {
		rs := newRecordingServer(t, nil)
		svc := newService(t, rs.srv.URL)

		assert.NoError(t, svc.Create(context.Background(), validCreate()))

		last := rs.last()
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/admin", last.path)

		var payload map[string]any
		assert.NoError(t, json.Unmarshal(last.body, &payload))
		assert.Contains(t, payload, "password")
		assert.Contains(t, payload, "tanggalLahir")
		assert.NotContains(t, payload, "noHp")
		assert.NotContains(t, payload, "alamat")
	})

	t.Run("invalid schema never issues a network call", func(t *testing.T) {
		rs := newRecordingServer(t, nil)
		svc := newService(t, rs.srv.URL)

		req := validCreate()
		req.Email = "bukan-email"
		err := svc.Create(context.Background(), req)

		assert.True(t, apperror.IsValidation(err))
		assert.Zero(t, rs.count())
	})

	t.Run("rejects unknown gender spelling", func(t *testing.T) {
		rs := newRecordingServer(t, nil)
		svc := newService(t, rs.srv.URL)

		req := validCreate()
		req.JenisKelamin = "laki-laki"
		err := svc.Create(context.Background(), req)

		assert.True(t, apperror.IsValidation(err))
		assert.Zero(t, rs.count())
	})
}

func TestService_Update(t *testing.T) {
	rs := newRecordingServer(t, nil)
	svc := newService(t, rs.srv.URL)

	form := admin.UpdateAdminForm{
		ID:           "a1",
		NamaDepan:    "Budi",
		NamaBelakang: "Santoso",
		Email:        "budi@mail.com",
		TanggalLahir: "1990-01-02",
		JenisKelamin: admin.GenderPerempuan,
	}
	assert.NoError(t, svc.Update(context.Background(), form))

	last := rs.last()
	assert.Equal(t, http.MethodPatch, last.method)
	assert.Equal(t, "/admin/a1", last.path)

	// ID hanya jadi segmen path, tidak ikut di body
	var payload map[string]any
	assert.NoError(t, json.Unmarshal(last.body, &payload))
	assert.NotContains(t, payload, "ID")
	assert.NotContains(t, payload, "id")
}

func TestService_UpdateProfile(t *testing.T) {
	t.Run("empty password omitted from payload", func(t *testing.T) {
		rs := newRecordingServer(t, nil)
		svc := newService(t, rs.srv.URL)

		form := admin.ProfileForm{
			NamaDepan:    "Budi",
			NamaBelakang: "Santoso",
			Email:        "budi@mail.com",
			JenisKelamin: admin.GenderPria,
		}
		assert.NoError(t, svc.UpdateProfile(context.Background(), "admin-1", form))

		var payload map[string]any
		assert.NoError(t, json.Unmarshal(rs.last().body, &payload))
		assert.NotContains(t, payload, "password")
	})

	t.Run("filled password included", func(t *testing.T) {
		rs := newRecordingServer(t, nil)
		svc := newService(t, rs.srv.URL)

		form := admin.ProfileForm{
			NamaDepan:    "Budi",
			NamaBelakang: "Santoso",
			Email:        "budi@mail.com",
			JenisKelamin: admin.GenderPria,
			Password:     "baru-rahasia",
		}
		assert.NoError(t, svc.UpdateProfile(context.Background(), "admin-1", form))

		var payload map[string]any
		assert.NoError(t, json.Unmarshal(rs.last().body, &payload))
		assert.Equal(t, "baru-rahasia", payload["password"])
	})
}
