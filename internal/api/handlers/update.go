package handlers

import (
	"github.com/gin-gonic/gin"
)

// Update handles a dyndns2 update request. The response body is a single
// status token ("good", "nochg", "badauth", "nohost", "badagent" or "911")
// followed by a newline, which is what clients such as ddclient parse.
//
// Only the hostname and myip query parameters are evaluated. The other
// dyndns2 parameters (system, url, wildcard, mx, backmx, offline) are
// accepted and ignored.
func (h *Handler) Update(c *gin.Context) {
	hostname := c.Query("hostname")
	myip := c.Query("myip")

	res := h.updater.Apply(c.Request.Context(), hostname, myip)
	c.String(res.Status.HTTPStatus(), "%s\n", res.Status)
}
