package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/astjson"
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
	"github.com/leapstack-labs/sqlparser/pkg/format"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
)

// ParseRequest is the body of POST /v1/parse.
type ParseRequest struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect,omitempty"`
	Spans   bool   `json:"spans,omitempty"`
}

// ParseResponse is a successful parse.
type ParseResponse struct {
	Dialect    string   `json:"dialect"`
	Statements []string `json:"statements"`
	AST        []any    `json:"ast"`
}

// ErrorBody describes a failed request. Position fields are set for
// tokenize and parse errors.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Offset  *int   `json:"offset,omitempty"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name        string `json:"name"`
	Flag        string `json:"flag"`
	Quote       string `json:"quote"`
	Placeholder string `json:"placeholder,omitempty"`
}

type parseOutcome struct {
	stmts []core.Stmt
	err   error
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDialects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Dialects())
}

// Dialects describes the built-in dialects in flag order.
func Dialects() []DialectInfo {
	out := make([]DialectInfo, len(all.Dialects))
	for i, d := range all.Dialects {
		out[i] = DialectInfo{
			Name:        d.Name,
			Flag:        "--" + d.Flag,
			Quote:       d.Identifiers.Quote + d.Identifiers.QuoteEnd,
			Placeholder: d.FormatPlaceholder(1),
		}
	}
	return out
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req ParseRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorBody{Kind: "request", Message: err.Error()})
			return
		}
		writeError(w, http.StatusBadRequest, ErrorBody{Kind: "request", Message: "invalid request body: " + err.Error()})
		return
	}

	d, err := s.resolveDialect(req.Dialect)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorBody{Kind: "dialect", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ParseTimeout)
	defer cancel()

	done := make(chan parseOutcome, 1)
	go func() {
		stmts, err := parser.ParseStatements(req.SQL, d)
		done <- parseOutcome{stmts: stmts, err: err}
	}()

	var res parseOutcome
	select {
	case <-ctx.Done():
		s.logger.Warn("parse timed out", "dialect", d.Name, "bytes", len(req.SQL), "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusServiceUnavailable, ErrorBody{
			Kind:    "timeout",
			Message: fmt.Sprintf("parse did not finish within %s", s.cfg.ParseTimeout),
		})
		return
	case res = <-done:
	}

	if res.err != nil {
		writeError(w, http.StatusUnprocessableEntity, parseErrorBody(res.err))
		return
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		Dialect:    d.Name,
		Statements: format.Statements(res.stmts, d),
		AST:        astjson.Trees(res.stmts, astjson.Options{Spans: req.Spans}),
	})
}

func (s *Server) resolveDialect(name string) (*dialect.Dialect, error) {
	if strings.TrimSpace(name) == "" && s.cfg.DefaultDialect != nil {
		return s.cfg.DefaultDialect, nil
	}
	return all.ByFlag(name)
}

func parseErrorBody(err error) ErrorBody {
	body := ErrorBody{Kind: "parse", Message: err.Error()}

	var te *parser.TokenizeError
	var pe *parser.ParseError
	switch {
	case errors.As(err, &te):
		body.Kind = "tokenize"
		body.Message = te.Message
	case errors.As(err, &pe):
		body.Message = pe.Message
	}
	if pos, ok := parser.ErrorPosition(err); ok {
		offset := pos.Offset
		body.Line = pos.Line
		body.Column = pos.Column
		body.Offset = &offset
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body ErrorBody) {
	writeJSON(w, status, ErrorResponse{Error: body})
}
