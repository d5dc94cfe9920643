package control

import (
	"errors"
	"net/http"

	"github.com/netsim-dev/netsim/internal/graph"
)

// statusFor maps a core error to the HTTP status its error kind
// deserves. Unrecognized errors are treated as invariant
// failures (500) since the core should never return anything the
// control surface doesn't know how to classify.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, graph.ErrNodeNotFound),
		errors.Is(err, graph.ErrEdgeNotFound),
		errors.Is(err, graph.ErrDisconnected),
		errors.Is(err, graph.ErrNotCloudGroup):
		return http.StatusNotFound
	case errors.Is(err, graph.ErrNodeExists):
		return http.StatusConflict
	case errors.Is(err, graph.ErrEmptyName),
		errors.Is(err, graph.ErrSelfConnect),
		errors.Is(err, graph.ErrInvalidDelay),
		errors.Is(err, graph.ErrInvalidBandwidth),
		errors.Is(err, graph.ErrInvalidLoss),
		errors.Is(err, graph.ErrInvalidRange),
		errors.Is(err, graph.ErrUnknownKind),
		errors.Is(err, graph.ErrNotIoT):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
