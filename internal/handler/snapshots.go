package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/item"
	"github.com/TavstalDev/MineCoreLib/internal/logger"
	"github.com/TavstalDev/MineCoreLib/internal/repository"
	"github.com/TavstalDev/MineCoreLib/internal/snapshot"
)

// SaveSnapshotRequest represents the body of the save snapshot request
type SaveSnapshotRequest struct {
	Name  string        `json:"name" validate:"required,min=1,max=100,snapshotname"`
	Items []domain.Item `json:"items" validate:"required"`
}

// SaveSnapshotResponse represents the save snapshot response body
type SaveSnapshotResponse struct {
	Name        string       `json:"name"`
	ItemCount   int          `json:"item_count"`
	YAML        string       `json:"yaml"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// LoadSnapshotResponse represents the load snapshot response body
type LoadSnapshotResponse struct {
	Name        string        `json:"name"`
	Items       []domain.Item `json:"items"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
}

// ListSnapshotsResponse represents the snapshot listing response body
type ListSnapshotsResponse struct {
	Snapshots []repository.SnapshotListEntry `json:"snapshots"`
}

// HandleSaveSnapshot stores a named item loadout
// @Summary Save snapshot
// @Description Encodes the items and stores them under the given name, replacing any existing snapshot.
// @Tags snapshots
// @Accept json
// @Produce json
// @Param request body SaveSnapshotRequest true "Snapshot name and items"
// @Success 200 {object} SaveSnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/snapshots [post]
func HandleSaveSnapshot(svc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SaveSnapshotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, DataResponse{
				Message: ErrMsgInvalidRequestError,
				Data:    FormatValidationError(err),
			})
			return
		}

		for i := range req.Items {
			item.NormalizeTags(&req.Items[i])
		}

		snap, diags, err := svc.Save(r.Context(), req.Name, req.Items)
		if err != nil {
			log.Error("Failed to save snapshot", "name", req.Name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SaveSnapshotResponse{
			Name:        snap.Name,
			ItemCount:   snap.ItemCount,
			YAML:        snap.YAML,
			Diagnostics: diagnosticViews(diags),
		})
	}
}

// HandleLoadSnapshot restores a named item loadout
// @Summary Load snapshot
// @Description Decodes the stored binary blob of the named snapshot back into items.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} LoadSnapshotResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/snapshots/{name} [get]
func HandleLoadSnapshot(svc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := chi.URLParam(r, "name")

		items, diags, err := svc.Load(r.Context(), name)
		if err != nil {
			log.Error("Failed to load snapshot", "name", name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, LoadSnapshotResponse{
			Name:        name,
			Items:       items,
			Diagnostics: diagnosticViews(diags),
		})
	}
}

// HandleListSnapshots lists stored snapshots
// @Summary List snapshots
// @Description Lists all stored snapshots without their payloads, newest first.
// @Tags snapshots
// @Produce json
// @Success 200 {object} ListSnapshotsResponse
// @Router /api/v1/snapshots [get]
func HandleListSnapshots(svc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		entries, err := svc.List(r.Context())
		if err != nil {
			log.Error("Failed to list snapshots", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if entries == nil {
			entries = []repository.SnapshotListEntry{}
		}
		respondJSON(w, http.StatusOK, ListSnapshotsResponse{Snapshots: entries})
	}
}

// HandleDeleteSnapshot removes a named snapshot
// @Summary Delete snapshot
// @Description Removes the named snapshot.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/snapshots/{name} [delete]
func HandleDeleteSnapshot(svc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := chi.URLParam(r, "name")

		if err := svc.Delete(r.Context(), name); err != nil {
			log.Error("Failed to delete snapshot", "name", name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Snapshot deleted"})
	}
}
