package api

import "net/http"

// ActionHeaders are the CORS and action protocol headers every action
// response carries, errors included.
type ActionHeaders struct {
	Version      string // X-Action-Version
	BlockchainID string // X-Blockchain-Ids
}

const (
	allowMethods  = "GET,POST,PUT,OPTIONS"
	allowHeaders  = "Content-Type, Authorization, Content-Encoding, Accept-Encoding, X-Accept-Action-Version, X-Accept-Blockchain-Ids"
	exposeHeaders = "X-Action-Version, X-Blockchain-Ids"
)

// actionHeadersMiddleware sets the headers before the handler runs so they
// survive http.Error and early returns. OPTIONS is not short-circuited: the
// handler answers it with the full document.
func actionHeadersMiddleware(h ActionHeaders) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", allowMethods)
			header.Set("Access-Control-Allow-Headers", allowHeaders)
			header.Set("Access-Control-Expose-Headers", exposeHeaders)
			header.Set("X-Action-Version", h.Version)
			header.Set("X-Blockchain-Ids", h.BlockchainID)
			header.Set("Content-Type", "application/json")

			next.ServeHTTP(w, r)
		})
	}
}
