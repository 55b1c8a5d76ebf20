// Package api membangun HTTP client ke REST API kepegawaian.
// Client dibuat ulang di setiap call site: keputusan pakai bearer atau
// tidak dievaluasi ulang setiap kali, sehingga token hasil login
// langsung terpakai oleh panggilan berikutnya tanpa reload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/session"
	"github.com/Happid/kepegawaian/internal/shared/apperror"
)

// Factory memproduksi Client dengan base URL tetap.
type Factory struct {
	baseURL string
	session session.Store
	http    *http.Client
	logger  *zap.Logger
}

func NewFactory(baseURL string, sess session.Store, timeout time.Duration, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.L()
	}
	return &Factory{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sess,
		// Timeout 0 = tunggu tanpa batas, mengikuti default transport.
		http:   &http.Client{Timeout: timeout},
		logger: logger.Named("api"),
	}
}

// Client membaca kredensial tersimpan saat ini. Ada token berarti semua
// request membawa bearer; tidak ada berarti request tanpa autentikasi.
func (f *Factory) Client() *Client {
	token := ""
	if f.session != nil {
		token = f.session.Token()
	}
	return &Client{
		baseURL: f.baseURL,
		token:   token,
		http:    f.http,
		logger:  f.logger,
	}
}

// Client mengeksekusi request JSON terhadap satu base URL.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.FromTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := apperror.FromResponse(resp.StatusCode, resp.Body)
		c.logger.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", appErr.Message),
		)
		return appErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
