package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

// maxBodyBytes caps create and update bodies at 1 MiB.
const maxBodyBytes = 1 << 20

var (
	errInvalidBody  = errors.New("invalid request body")
	errBodyTooLarge = errors.New("request body too large")
)

// parseID reads the leading integer of s the way clients of this API
// expect: surrounding space and a sign are allowed, trailing garbage is
// ignored. ok is false when s has no leading digits.
func parseID(s string) (id int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindInput decodes the project body. An empty body or a JSON value that
// is not an object yields an input with every member absent.
// Content-Type is not checked; every body is read as JSON.
func bindInput(c *gin.Context) (domain.ProjectInput, error) {
	var in domain.ProjectInput
	if c.Request.Body == nil {
		return in, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return in, errBodyTooLarge
		}
		return in, errInvalidBody
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return in, nil
	}
	if trimmed[0] != '{' {
		if !json.Valid([]byte(trimmed)) {
			return in, errInvalidBody
		}
		return in, nil
	}
	if err := binding.JSON.BindBody([]byte(trimmed), &in); err != nil {
		return domain.ProjectInput{}, errInvalidBody
	}
	return in, nil
}
