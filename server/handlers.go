package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"ops_prompt_library/generator"
	"ops_prompt_library/render"
)

// Shown to the user for any generation failure; the cause goes to the log.
const generationFailedMsg = "Ocurrió un error al generar los prompts operativos. Por favor, intenta de nuevo."

const invalidSelectionMsg = "La selección no es válida. Elige una opción de cada lista."

// A selection is two short names; anything larger is rejected unread.
const maxBodyBytes = 4 << 10

type option struct {
	Value    string
	Selected bool
}

type pageData struct {
	Solutions []option
	Sectors   []option
	Library   *generator.Library
	Error     string
	Year      int
}

func (s *Server) newPage(sel generator.Selection) pageData {
	d := pageData{Year: s.now().Year()}
	for _, v := range generator.Solutions {
		d.Solutions = append(d.Solutions, option{Value: string(v), Selected: v == sel.Solution})
	}
	for _, v := range generator.Sectors {
		d.Sectors = append(d.Sectors, option{Value: string(v), Selected: v == sel.Sector})
	}
	return d
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.newPage(generator.DefaultSelection()))
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		d := s.newPage(generator.DefaultSelection())
		d.Error = invalidSelectionMsg
		s.renderPage(w, http.StatusBadRequest, d)
		return
	}
	sel, err := generator.NewSelection(r.PostForm.Get("solution"), r.PostForm.Get("sector"))
	if err != nil {
		d := s.newPage(generator.DefaultSelection())
		d.Error = invalidSelectionMsg
		s.renderPage(w, http.StatusBadRequest, d)
		return
	}

	d := s.newPage(sel)
	lib, err := s.gen.Generate(r.Context(), sel)
	if err != nil {
		s.log.Error("generation failed", "request_id", requestIDFrom(r.Context()), "error", err)
		d.Error = generationFailedMsg
		s.renderPage(w, http.StatusBadGateway, d)
		return
	}
	d.Library = &lib
	s.renderPage(w, http.StatusOK, d)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, d pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, d); err != nil {
		s.log.Error("render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// --- API ---

type catalogResp struct {
	Solutions []generator.SolutionType `json:"solutions"`
	Sectors   []generator.SectorType   `json:"sectors"`
}

type libraryReq struct {
	Solution string `json:"solution"`
	Sector   string `json:"sector"`
}

type libraryResp struct {
	Selection generator.Selection `json:"selection"`
	Library   generator.Library   `json:"library"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResp{Solutions: generator.Solutions, Sectors: generator.Sectors})
}

func (s *Server) handleLibraryJSON(w http.ResponseWriter, r *http.Request) {
	sel, lib, ok := s.generateFromJSON(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, libraryResp{Selection: sel, Library: lib})
}

func (s *Server) handleLibraryMarkdown(w http.ResponseWriter, r *http.Request) {
	sel, lib, ok := s.generateFromJSON(w, r)
	if !ok {
		return
	}
	name := fmt.Sprintf("biblioteca-%s-%s.md", sel.Solution, sel.Sector)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	_, _ = w.Write([]byte(render.LibraryMarkdown(sel, lib)))
}

func (s *Server) generateFromJSON(w http.ResponseWriter, r *http.Request) (generator.Selection, generator.Library, bool) {
	var req libraryReq
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "body_too_large", err)
			return generator.Selection{}, generator.Library{}, false
		}
		respondError(w, http.StatusBadRequest, "invalid_body", err)
		return generator.Selection{}, generator.Library{}, false
	}
	sel, err := generator.NewSelection(req.Solution, req.Sector)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_selection", err)
		return generator.Selection{}, generator.Library{}, false
	}
	lib, err := s.gen.Generate(r.Context(), sel)
	if err != nil {
		s.log.Error("generation failed", "request_id", requestIDFrom(r.Context()), "error", err)
		respondError(w, http.StatusBadGateway, "generation_failed", errors.New(generationFailedMsg))
		return generator.Selection{}, generator.Library{}, false
	}
	return sel, lib, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}
