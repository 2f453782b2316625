package handler

import "net/http"

// HelloMessage is the static greeting returned by /hello.
const HelloMessage = "Hello from the API"

// HelloResponse is the body of GET /api/hello.
// NextPublicAPIURL serializes as null when the variable is unset.
type HelloResponse struct {
	Message          string  `json:"message"`
	APIPrefix        string  `json:"apiPrefix"`
	NextPublicAPIURL *string `json:"nextPublicApiUrl"`
}

// HelloHandler serves a static greeting plus the advertised API URL.
type HelloHandler struct {
	resp HelloResponse
}

func NewHelloHandler(apiPrefix string, nextPublicAPIURL *string) *HelloHandler {
	return &HelloHandler{resp: HelloResponse{
		Message:          HelloMessage,
		APIPrefix:        apiPrefix,
		NextPublicAPIURL: nextPublicAPIURL,
	}}
}

// Hello handles GET /api/hello
//
// @Summary  Static greeting
// @Tags     system
// @Produce  json
// @Success  200  {object}  HelloResponse
// @Router   /api/hello [get]
func (h *HelloHandler) Hello(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resp)
}
