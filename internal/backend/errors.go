package backend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrTimeout : la requête amont a dépassé le délai imparti.
	ErrTimeout = errors.New("délai dépassé en contactant l'API amont")
	// ErrUnavailable : échec transport (connexion refusée, DNS, etc.).
	ErrUnavailable = errors.New("API amont injoignable")
)

// APIError porte une réponse non-2xx de l'amont. Le corps peut contenir
// {message|title|errors} selon l'endpoint.
type APIError struct {
	StatusCode int
	Message    string              `json:"message"`
	Title      string              `json:"title"`
	Fields     map[string][]string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			parts = append(parts, e.Fields[k]...)
		}
		return "erreurs de validation: " + strings.Join(parts, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("erreur %d de l'API amont", e.StatusCode)
}
