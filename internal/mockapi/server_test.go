package mockapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/mockapi"
)

func newTestServer(t *testing.T) (*httptest.Server, *mockapi.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, store, err := mockapi.NewRouter(mockapi.Config{
		Secret:       "test-secret",
		SeedEmail:    "admin@mail.com",
		SeedPassword: "rahasia123",
	}, zap.NewNop())
	assert.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func login(t *testing.T, baseURL string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]string{
		"email":    "admin@mail.com",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("valid credentials return token and admin id", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
			"email":    "admin@mail.com",
			"password": "rahasia123",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["token"])

		admin, _ := body["admin"].(map[string]any)
		assert.NotEmpty(t, admin["id"])
	})

	t.Run("wrong password returns message body", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
			"email":    "admin@mail.com",
			"password": "salah",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Email atau password salah", body["message"])
	})
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, body["message"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/admin", "token-ngawur", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv.URL)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/admin", token, map[string]string{
		"namaDepan":    "Budi",
		"namaBelakang": "Santoso",
		"email":        "budi@mail.com",
		"jenisKelamin": "pria",
		"password":     "sandi-budi",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := body["data"].(map[string]any)
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id)

	// detail admin dibungkus amplop data
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/admin/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "Budi", data["namaDepan"])
	assert.NotContains(t, data, "password")

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/admin?page=1&limit=5", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["total"]) // seed + Budi

	// admin baru langsung bisa login
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"email":    "budi@mail.com",
		"password": "sandi-budi",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/admin/"+id, token, map[string]string{
		"namaDepan": "Budiman",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, body = doJSON(t, http.MethodGet, srv.URL+"/admin/"+id, token, nil)
	data, _ = body["data"].(map[string]any)
	assert.Equal(t, "Budiman", data["namaDepan"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/admin/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/admin/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Data tidak ditemukan", body["message"])
}

func TestPegawaiPagination(t *testing.T) {
	srv, store := newTestServer(t)
	token := login(t, srv.URL)

	for i := 0; i < 12; i++ {
		store.CreatePegawai(mockapi.Pegawai{NamaDepan: "Pegawai", Email: "p@mail.com"})
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/pegawai?page=3&limit=5", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(12), body["total"])
	rows, _ := body["data"].([]any)
	assert.Len(t, rows, 2) // halaman terakhir sisa 2
}

func TestCutiLifecycle(t *testing.T) {
	srv, store := newTestServer(t)
	token := login(t, srv.URL)

	pid := store.CreatePegawai(mockapi.Pegawai{NamaDepan: "Siti", Email: "siti@mail.com"})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cuti", token, map[string]string{
		"alasan":         "Acara keluarga",
		"tanggalMulai":   "2024-06-01",
		"tanggalSelesai": "2024-06-03",
		"pegawaiId":      pid,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cid, _ := body["id"].(string)
	assert.NotEmpty(t, cid)

	// detail pegawai datang flat dengan cuti tertanam
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/pegawai/"+pid, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Siti", body["namaDepan"])
	cuti, _ := body["cuti"].([]any)
	assert.Len(t, cuti, 1)

	t.Run("cuti for unknown pegawai is rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cuti", token, map[string]string{
			"alasan":         "Acara",
			"tanggalMulai":   "2024-06-01",
			"tanggalSelesai": "2024-06-03",
			"pegawaiId":      "tidak-ada",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/cuti/"+cid, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// hapus pegawai ikut menghapus cuti miliknya
	_, _ = doJSON(t, http.MethodPost, srv.URL+"/cuti", token, map[string]string{
		"alasan": "Lagi", "tanggalMulai": "2024-07-01", "tanggalSelesai": "2024-07-02", "pegawaiId": pid,
	})
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/pegawai/"+pid, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, store.CutiOf(pid))
}
