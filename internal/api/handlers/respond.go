// Package handlers содержит общие помощники HTTP слоя.
// Все ответы идут в конверте {data, error}: клиент проверяет поле error,
// исключения через публичную поверхность не летают.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/Glow-BookingService/pkg/ptr"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type envelope struct {
	Data  interface{} `json:"data"`
	Error *string     `json:"error"`
}

// DecodeJSON читает JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondData пишет успешный ответ {data: ..., error: null}
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Data: data})
}

// RespondError пишет ответ с ошибкой {data: null, error: "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: ptr.Ptr(message)})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict пишет 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError пишет 500 с нейтральным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "An unknown error occurred")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
