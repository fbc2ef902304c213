// Package bff implementa el passthrough /api/bff → /v2/hierarchy del servicio
// de jerarquía. JSON pasa tal cual en ambas direcciones; los GET concurrentes
// idénticos se colapsan en una sola llamada upstream (singleflight).
package bff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Result respuesta upstream lista para reenviar al cliente.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

// Proxy cliente del servicio de jerarquía con deduplicación de GETs en vuelo.
type Proxy struct {
	baseURL string
	client  *http.Client
	group   singleflight.Group
}

// NewProxy construye el proxy. baseURL sin slash final (ej. http://hierarchy:8080).
func NewProxy(baseURL string, timeout time.Duration) *Proxy {
	return &Proxy{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Forward reenvía la petición al upstream. Los GET se deduplican por URL y
// credencial: mientras una llamada está en vuelo, las idénticas esperan su
// resultado en lugar de abrir otra conexión. No hay caché más allá de eso.
func (p *Proxy) Forward(ctx context.Context, method, pathAndQuery, authorization string, body []byte) (*Result, error) {
	url := p.baseURL + pathAndQuery
	if method != http.MethodGet {
		return p.do(ctx, method, url, authorization, body)
	}

	// La credencial forma parte de la clave: dos tenants nunca comparten respuesta.
	key := authorization + " " + url
	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		return p.do(ctx, method, url, authorization, nil)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (p *Proxy) do(ctx context.Context, method, url, authorization string, body []byte) (*Result, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("bff: construir petición: %w", err)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bff: llamada upstream: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bff: leer respuesta upstream: %w", err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	return &Result{Status: resp.StatusCode, ContentType: ct, Body: data}, nil
}
