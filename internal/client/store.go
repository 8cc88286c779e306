package client

import (
	"context"
	"sync"
)

// Filter es un predicado puro sobre la lista fuente.
type Filter func(Pet) bool

// ListStore mantiene el estado local de la lista de mascotas:
// - source: la colección autoritativa (lo último que confirmó el server)
// - filter: proyección opcional aplicada para mostrar
// - displayed: siempre derivada como filter(source), nunca se pisa a mano
// - lastErr: mensaje de la última mutación fallida ("" = sin error)
//
// Regla central: toda mutación toca source y re-deriva displayed con el
// filtro vigente. Así el criterio de filtrado sobrevive a los borrados
// en vez de perderse al colapsar displayed contra source.
type ListStore struct {
	mu sync.Mutex

	api *Client

	source    []Pet
	filter    Filter
	displayed []Pet
	lastErr   string
}

func NewListStore(api *Client) *ListStore {
	return &ListStore{api: api}
}

// Load trae la lista del server y la fija como fuente.
func (s *ListStore) Load(ctx context.Context) error {
	items, err := s.api.ListPets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = err.Error()
		return err
	}

	s.source = items
	s.lastErr = ""
	s.project()
	return nil
}

// SetFilter fija el predicado de la vista. nil = sin filtro.
func (s *ListStore) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = f
	s.project()
}

// Delete emite el borrado remoto sin bloquear al caller. El canal
// devuelto recibe el resultado cuando la respuesta resuelve (buffered:
// ignorarlo no filtra goroutines).
//
// Recién cuando el server confirma se saca el pet de source y se
// re-deriva displayed. Sin mutación optimista: si falla, las listas
// quedan intactas y lastErr guarda el mensaje. Borrados concurrentes
// de ids distintos convergen ambos porque cada éxito muta source bajo
// lock en vez de recalcular desde un snapshot viejo.
func (s *ListStore) Delete(ctx context.Context, petID string) <-chan error {
	done := make(chan error, 1)

	go func() {
		err := s.api.DeletePet(ctx, petID)

		s.mu.Lock()
		if err != nil {
			s.lastErr = err.Error()
		} else {
			next := make([]Pet, 0, len(s.source))
			for _, p := range s.source {
				if p.ID != petID {
					next = append(next, p)
				}
			}
			s.source = next
			s.lastErr = ""
			s.project()
		}
		s.mu.Unlock()

		done <- err
	}()

	return done
}

// Pets devuelve una copia de la vista filtrada.
func (s *ListStore) Pets() []Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPets(s.displayed)
}

// All devuelve una copia de la fuente sin filtrar.
func (s *ListStore) All() []Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPets(s.source)
}

// Err devuelve el mensaje de la última mutación fallida ("" = ok).
func (s *ListStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// project re-deriva displayed desde source. Llamar con lock tomado.
func (s *ListStore) project() {
	if s.filter == nil {
		s.displayed = copyPets(s.source)
		return
	}

	out := make([]Pet, 0, len(s.source))
	for _, p := range s.source {
		if s.filter(p) {
			out = append(out, p)
		}
	}
	s.displayed = out
}

func copyPets(in []Pet) []Pet {
	out := make([]Pet, len(in))
	copy(out, in)
	return out
}
