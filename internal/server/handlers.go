package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/readme-generator/internal/generator"
	"github.com/jonathan/readme-generator/internal/registry"
	"github.com/jonathan/readme-generator/internal/types"
)

// generateProfileRequest is the body of POST /generate/profile. Template is
// optional; unknown ids fall back to the default template.
type generateProfileRequest struct {
	State    types.ProfileState `json:"state"`
	Template string             `json:"template" validate:"omitempty,max=64"`
}

// generateProjectRequest is the body of POST /generate/project.
type generateProjectRequest struct {
	State    types.ProjectState `json:"state"`
	Template string             `json:"template" validate:"omitempty,max=64"`
}

// generateResponse is the result of a generation request. Template reports the
// template id that was actually applied after fallback.
type generateResponse struct {
	Markdown string `json:"markdown"`
	Template string `json:"template"`
}

// handleGenerateProfile renders a profile README from a form-state snapshot.
func (s *Server) handleGenerateProfile(w http.ResponseWriter, r *http.Request) {
	var req generateProfileRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	template := registry.ProfileTemplateByID(req.Template)
	s.generateResult(w, r, generator.Profile(req.State), template.ID)
}

// handleGenerateProject renders a project README from a form-state snapshot.
func (s *Server) handleGenerateProject(w http.ResponseWriter, r *http.Request) {
	var req generateProjectRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	template := registry.ProjectTemplateByID(req.Template)
	s.generateResult(w, r, generator.Project(req.State), template.ID)
}

// generateResult writes the generation result, either as the JSON envelope or
// as the bare document when the client asked for format=raw.
func (s *Server) generateResult(w http.ResponseWriter, r *http.Request, markdown, templateID string) {
	if r.URL.Query().Get("format") == "raw" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(markdown)); err != nil {
			log.Printf("Error writing markdown response: %v", err)
		}
		return
	}
	s.jsonResponse(w, http.StatusOK, generateResponse{Markdown: markdown, Template: templateID})
}

// handleListProfileTemplates returns the profile template catalog.
func (s *Server) handleListProfileTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": registry.ProfileTemplates})
}

// handleListProjectTemplates returns the project template catalog.
func (s *Server) handleListProjectTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": registry.ProjectTemplates})
}

// handleListSkills returns the predefined skill catalog, optionally filtered
// by the category query parameter.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.jsonResponse(w, http.StatusOK, map[string]any{"skills": registry.Skills})
		return
	}

	skills := registry.SkillsByCategory(category)
	if len(skills) == 0 {
		s.errorResponse(w, http.StatusNotFound, "unknown skill category: "+category)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// decodeAndValidate decodes the request body into dst and runs struct
// validation on it. Unknown body fields are rejected so typos in snapshot
// field names surface as errors instead of silently dropped data.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return &ErrMalformedBody{Cause: err}
	}

	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return &ErrValidation{Field: first.Field(), Message: "failed " + first.Tag() + " validation"}
		}
		return err
	}
	return nil
}
