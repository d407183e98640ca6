// Package dyndns implements the dyndns2 update protocol against a DNS
// provider: it parses update requests, compares the requested address with
// the zone's current record and applies the change when needed.
package dyndns

import "net/http"

// Status is a dyndns2 response token. The token itself is the response body;
// clients such as ddclient parse it to decide whether to retry.
type Status string

const (
	// StatusGood means the record was created or updated.
	StatusGood Status = "good"
	// StatusNoChange means the record already holds the requested address.
	StatusNoChange Status = "nochg"
	// StatusBadAuth means the request carried missing or wrong credentials.
	StatusBadAuth Status = "badauth"
	// StatusNoHost means the hostname is not one this service manages.
	StatusNoHost Status = "nohost"
	// StatusBadAgent means the request was malformed, e.g. an unparseable
	// address.
	StatusBadAgent Status = "badagent"
	// StatusError is the dyndns2 "911" token for server-side failures.
	StatusError Status = "911"
)

// HTTPStatus maps a token to the HTTP status code sent alongside it.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusGood, StatusNoChange:
		return http.StatusOK
	case StatusBadAuth:
		return http.StatusUnauthorized
	case StatusNoHost:
		return http.StatusNotFound
	case StatusBadAgent:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s Status) String() string {
	return string(s)
}
