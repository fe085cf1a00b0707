package api

import "net/http"

// Fixed human-readable messages per error code. Clients match on these
// strings, so the exact text (including the capitalization of the 500
// message) is part of the API contract.
var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "Internal Server error",
}

// Message returns the canonical message for a supported error status.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return messages[http.StatusInternalServerError]
}
