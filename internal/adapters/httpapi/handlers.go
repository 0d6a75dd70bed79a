package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.trai.ch/pacforge/internal/adapters/remote"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxBodySize = 1 << 20

func (s *Server) handleServiceAdd(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	repository := domain.RepositoryID{Name: query.Get("repository"), Architecture: query.Get("architecture")}
	if repository != s.repository {
		s.writeError(w, http.StatusBadRequest, "unknown repository "+repository.String())
		return
	}

	var req remote.AddRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Packages) == 0 {
		s.writeError(w, http.StatusBadRequest, "no packages requested")
		return
	}

	packages, err := s.queuePackages(r, req.Packages)
	if errors.Is(err, domain.ErrPackageNotFound) {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.logger.Error(err)
		s.writeError(w, http.StatusInternalServerError, "failed to queue packages")
		return
	}

	id := s.spawn(packages, req.Options())
	s.writeJSON(w, http.StatusOK, remote.AddResponse{ProcessID: id})
}

// queuePackages resolves bases against the catalog and inserts them into the
// build queue. Nothing is queued when a base is missing from the catalog.
func (s *Server) queuePackages(r *http.Request, bases []string) ([]domain.Package, error) {
	known, err := s.storage.PackageGet(r.Context(), s.repository, bases...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load packages")
	}
	byBase := make(map[string]domain.Package, len(known))
	for _, pkg := range known {
		byBase[pkg.Base] = pkg
	}

	packages := make([]domain.Package, 0, len(bases))
	seen := make(map[string]struct{}, len(bases))
	var missing []string
	for _, base := range bases {
		if _, dup := seen[base]; dup {
			continue
		}
		seen[base] = struct{}{}

		pkg, ok := byBase[base]
		if !ok {
			missing = append(missing, base)
			continue
		}
		packages = append(packages, pkg)
	}
	if len(missing) > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown packages "+strings.Join(missing, ", ")),
			"repository", s.repository.String())
	}

	for i := range packages {
		if err := s.storage.BuildQueueInsert(r.Context(), s.repository, &packages[i]); err != nil {
			return nil, zerr.Wrap(err, "failed to queue package")
		}
	}
	return packages, nil
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if !s.IsAlive(r.PathValue("id")) {
		s.writeError(w, http.StatusNotFound, "no such process")
		return
	}
	s.writeJSON(w, http.StatusOK, remote.ProcessResponse{IsAlive: true})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body domain.Worker
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid worker: "+err.Error())
		return
	}
	worker := domain.NewWorker(body.Address, body.Identifier)
	if worker.Address == "" {
		s.writeError(w, http.StatusBadRequest, "worker address is required")
		return
	}

	s.registry.Update(worker)
	if err := s.storage.WorkersInsert(r.Context(), worker); err != nil {
		s.logger.Error(err)
	}
	s.refreshWorkerGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorkers(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.registry.Workers())
}

func (s *Server) handleRemoveAll(w http.ResponseWriter, r *http.Request) {
	s.registry.Remove()
	if err := s.storage.WorkersRemove(r.Context(), ""); err != nil {
		s.logger.Error(err)
	}
	s.refreshWorkerGauge()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.registry.RemoveOne(id)
	if err := s.storage.WorkersRemove(r.Context(), id); err != nil {
		s.logger.Error(err)
	}
	s.refreshWorkerGauge()
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON encodes v before writing so that encoding failures never send
// a partial response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to encode response"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, remote.ErrorResponse{Error: message})
}
