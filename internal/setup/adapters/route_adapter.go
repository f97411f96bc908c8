package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute bridges a controller into net/http: it packs the request into
// the presentation protocol and streams the response body back out.
func AdaptRoute(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		contentType := response.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
