package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Délai borné par requête amont : une requête qui traîne échoue avec
// ErrTimeout au lieu de bloquer indéfiniment le handler appelant.
const requestTimeout = 10 * time.Second

// Client consomme l'API REST du système commerce (le backend de vérité
// pour le stock, les prix et les commandes).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NewClientFromEnv lit BACKEND_API_URL (défaut : l'instance de dev locale).
func NewClientFromEnv() *Client {
	baseURL := os.Getenv("BACKEND_API_URL")
	if baseURL == "" {
		baseURL = "https://localhost:7112/api"
	}
	return NewClient(baseURL)
}

// do exécute une requête JSON et décode la réponse dans out (si non nil).
// Toute réponse non-2xx devient un *APIError ; les échecs transport sont
// classés ErrTimeout ou ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encodage requête: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
			return fmt.Errorf("%w (%s %s)", ErrTimeout, method, path)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr) // corps d'erreur optionnel
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("décodage réponse %s: %w", path, err)
		}
	}
	return nil
}
