// Package cataastest runs an in-process stand-in for the cataas /cat endpoint.
package cataastest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// Server answers GET /cat with a fixed status and body and records every
// request URI it sees.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	status      int
	body        []byte
	contentType string
	requests    []string
}

type Option func(*Server)

// WithStatus makes the endpoint reply with code instead of 200.
func WithStatus(code int) Option {
	return func(s *Server) { s.status = code }
}

func WithContentType(ct string) Option {
	return func(s *Server) { s.contentType = ct }
}

// New starts a server serving body and closes it when the test ends.
func New(t testing.TB, body []byte, opts ...Option) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		status:      http.StatusOK,
		body:        body,
		contentType: "image/png",
	}
	for _, o := range opts {
		o(s)
	}

	r := gin.New()
	r.GET("/cat", s.catHandler)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// CatURL is the base URL a fetcher should be pointed at.
func (s *Server) CatURL() string {
	return s.URL + "/cat"
}

// Requests returns the raw request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) catHandler(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.RequestURI)
	status, body, ct := s.status, s.body, s.contentType
	s.mu.Unlock()

	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Data(status, ct, body)
}
