package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spektr-org/plotfit/engine"
	"github.com/spektr-org/plotfit/render"
)

// requestFromQuery reads title, x, y and kind from URL query values.
func requestFromQuery(r *http.Request) engine.PlotRequest {
	q := r.URL.Query()
	return engine.PlotRequest{
		Title: q.Get("title"),
		X:     q.Get("x"),
		Y:     q.Get("y"),
		Kind:  q.Get("kind"),
	}
}

func (s *Server) execute(req engine.PlotRequest) (*engine.Result, error) {
	return engine.Execute(req, engine.WithLogger(s.logger))
}

func (s *Server) renderOptions() []render.Option {
	return []render.Option{render.WithSize(s.cfg.ChartWidth, s.cfg.ChartHeight)}
}

// handleIndex serves the form. A request carrying x or y is plotted inline.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := requestFromQuery(r)
	data := pageData{
		Request: req,
		Kinds:   engine.ChartKinds,
	}
	if data.Request.Kind == "" {
		data.Request.Kind = string(engine.KindScatter)
	}

	status := http.StatusOK
	if q.Has("x") || q.Has("y") {
		result, err := s.execute(req)
		if err == nil {
			var img []byte
			img, err = render.Bytes(result.ChartConfig, render.FormatSVG, s.renderOptions()...)
			if err == nil {
				data.ChartURI = template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(img))
				data.Equation = result.Regression.Equation
			}
		}
		if err != nil {
			s.logger.Info("plot rejected", zap.Error(err))
			data.Error = engine.UserMessage(err)
			status = http.StatusUnprocessableEntity
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("page render failed", zap.Error(err))
	}
}

// handlePlot accepts a JSON PlotRequest and answers with a JSON Result.
func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req engine.PlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, engine.Failure(req, errors.New("request body too large")))
			return
		}
		writeJSON(w, http.StatusBadRequest, engine.Failure(req, errors.New("malformed JSON body")))
		return
	}

	result, err := s.execute(req)
	if err != nil {
		s.logger.Info("plot rejected", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, engine.Failure(req, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleChart renders the image named by the path extension.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	format := render.FormatPNG
	if strings.HasSuffix(r.URL.Path, ".svg") {
		format = render.FormatSVG
	}

	req := requestFromQuery(r)
	result, err := s.execute(req)
	if err != nil {
		s.logger.Info("chart rejected", zap.Error(err))
		http.Error(w, engine.UserMessage(err), http.StatusUnprocessableEntity)
		return
	}

	img, err := render.Bytes(result.ChartConfig, format, s.renderOptions()...)
	if err != nil {
		s.logger.Error("chart render failed", zap.Error(err))
		http.Error(w, engine.UserMessage(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(img)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON marshals before touching the response so a failure can still
// be reported with a proper status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, engine.UserMessage(fmt.Errorf("encoding response: %w", err)), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
