package uploads

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 5 << 20

var (
	// ErrNotMultipart means the request body is not multipart/form-data.
	ErrNotMultipart = errors.New("expected multipart/form-data")
	// ErrMissingFile means the form has no file under the expected field.
	ErrMissingFile = errors.New("file field is required")
	// ErrTooLarge means the upload exceeds the in-memory size cap.
	ErrTooLarge = errors.New("file exceeds 5MB limit")
)

// File is an upload read fully into memory. Nothing is written to disk or
// object storage; the bytes live for the request only.
type File struct {
	Name string
	Mime string
	Data []byte
}

// FromRequest reads the named multipart file field out of the request.
func FromRequest(c *gin.Context, field string) (File, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return File{}, ErrNotMultipart
	}

	header, err := c.FormFile(field)
	if err != nil {
		return File{}, ErrMissingFile
	}
	if header.Size > maxUploadBytes {
		return File{}, ErrTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return File{}, ErrMissingFile
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return File{}, err
	}
	if len(data) > maxUploadBytes {
		return File{}, ErrTooLarge
	}

	return File{
		Name: header.Filename,
		Mime: header.Header.Get("Content-Type"),
		Data: data,
	}, nil
}
