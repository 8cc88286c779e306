// Package client es el SDK del servicio: operaciones HTTP contra la API
// y un store local de listas (ver store.go) que mantiene el estado del
// lado cliente después de cada mutación.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/httpclient"
)

// Pet es la vista cliente de una mascota (espejo del JSON de la API).
type Pet struct {
	ID          string     `json:"id" yaml:"id"`
	OwnerUserID string     `json:"owner_user_id" yaml:"owner_user_id"`
	Name        string     `json:"name" yaml:"name"`
	Species     string     `json:"species" yaml:"species"`
	Breed       string     `json:"breed" yaml:"breed"`
	Sex         string     `json:"sex" yaml:"sex"`
	BirthDate   *time.Time `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	Microchip   string     `json:"microchip,omitempty" yaml:"microchip,omitempty"`
	Notes       string     `json:"notes" yaml:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
}

type CreatePetInput struct {
	Name      string `json:"name"`
	Species   string `json:"species,omitempty"`
	Breed     string `json:"breed,omitempty"`
	Sex       string `json:"sex,omitempty"`
	BirthDate string `json:"birth_date,omitempty"` // YYYY-MM-DD
	Microchip string `json:"microchip,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// APIError es un error devuelto por la API con mensaje legible.
// Error() retorna solo el mensaje: es lo que el store guarda como
// estado de error y lo que la UI/CLI muestra.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	http *httpclient.Client
}

type Options struct {
	BaseURL string
	Timeout time.Duration

	// Token manda Authorization: Bearer <token>.
	Token string
	// DebugUserID manda X-Debug-User-ID (modo dev, sin verifier).
	DebugUserID string

	Transport http.RoundTripper // inyectable para tests
}

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("client: base url required")
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   opts.BaseURL,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, err
	}

	if t := strings.TrimSpace(opts.Token); t != "" {
		hc.SetDefaultHeader("Authorization", "Bearer "+t)
	}
	if uid := strings.TrimSpace(opts.DebugUserID); uid != "" {
		hc.SetDefaultHeader(middleware.DebugUserHeader, uid)
	}

	return &Client{http: hc}, nil
}

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets", nil, &out); err != nil {
		return nil, asAPIError(err)
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, petID string) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/"+petID, nil, &out); err != nil {
		return Pet{}, asAPIError(err)
	}
	return out, nil
}

func (c *Client) CreatePet(ctx context.Context, in CreatePetInput) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", in, &out); err != nil {
		return Pet{}, asAPIError(err)
	}
	return out, nil
}

// DeletePet emite el DELETE remoto. No toca estado local: eso es
// responsabilidad del ListStore, y solo después de que esto resuelva.
func (c *Client) DeletePet(ctx context.Context, petID string) error {
	if err := c.http.DoJSON(ctx, http.MethodDelete, "/pets/"+petID, nil, nil); err != nil {
		return asAPIError(err)
	}
	return nil
}

// asAPIError convierte respuestas no-2xx en *APIError con el mensaje
// del payload {"error": "..."}. Si el body no trae eso, cae al texto
// del status. Errores de transporte pasan tal cual.
func asAPIError(err error) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	msg := ""
	var payload struct {
		Error string `json:"error"`
	}
	if jsonErr := json.Unmarshal([]byte(httpErr.Body), &payload); jsonErr == nil {
		msg = strings.TrimSpace(payload.Error)
	}
	if msg == "" {
		msg = http.StatusText(httpErr.StatusCode)
	}

	return &APIError{
		StatusCode: httpErr.StatusCode,
		Message:    msg,
	}
}
