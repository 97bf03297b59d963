package server

import (
	"encoding/json"
	"net/http"
)

// Envelope codes kept wire-compatible with the previous generation of the
// service: clients inspect the code field, not the HTTP status.
const (
	codeSuccess = 200
	codeFail    = 201

	msgSuccess = "success"
	msgFail    = "fail"
)

type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Code: codeSuccess, Msg: msgSuccess, Data: data})
}

// writeFail reports an application-level failure. The HTTP status stays 200;
// the envelope carries the error text in data.
func writeFail(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusOK, envelope{Code: codeFail, Msg: msgFail, Data: err.Error()})
}

func writeFailMsg(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, envelope{Code: codeFail, Msg: msgFail, Data: msg})
}
