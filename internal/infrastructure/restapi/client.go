// Package restapi implementa la fachada de consulta contra la API REST
// remota. Es un envoltorio de transporte tipado sin lógica de negocio: el
// servidor remoto resuelve filtrado, paginación y agregados; aquí solo se
// serializan parámetros y se clasifican fallos.
package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/leadscope-api/internal/domain"
	"github.com/jhoicas/leadscope-api/pkg/config"
)

// Client cliente HTTP contra el backend REST.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient construye el cliente. BaseURL sin slash final.
func NewClient(cfg config.RESTConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    http.DefaultClient,
	}
}

// doJSON ejecuta una petición JSON y decodifica la respuesta en out (si out
// no es nil). Un 404 se traduce a ErrNotFound; cualquier otro no-2xx o un
// cuerpo malformado se reporta como TransportError con el status adjunto.
func (c *Client) doJSON(method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return domain.NewTransportError(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewTransportError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.NewTransportError(resp.StatusCode,
			fmt.Errorf("%s %s: %s", method, path, strings.TrimSpace(string(raw))))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewTransportError(resp.StatusCode, fmt.Errorf("respuesta malformada: %w", err))
	}
	return nil
}
