package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "skylift/pkg/errors"
)

// archives above this size are refused at the edge.
const maxArchiveSize = 256 << 20

// processUpReq extracts the source archive from the request: multipart
// field "archive" when present, otherwise the raw body.
func (h *handler) processUpReq(c *gin.Context) (io.Reader, func(), error) {
	if file, err := c.FormFile("archive"); err == nil {
		if file.Size > maxArchiveSize {
			return nil, nil, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "archive too large")
		}
		f, err := file.Open()
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxArchiveSize)
	return body, func() { body.Close() }, nil
}
