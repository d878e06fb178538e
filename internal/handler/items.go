package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/item"
	"github.com/TavstalDev/MineCoreLib/internal/logger"
)

// Encoding format names accepted by the encode/decode endpoints
const (
	FormatYAML   = "yaml"
	FormatBinary = "binary"
)

// Diagnostic is the API view of one isolated handler failure
type Diagnostic struct {
	Variant string `json:"variant"`
	Message string `json:"message"`
}

func diagnosticViews(diags []item.Diagnostic) []Diagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, Diagnostic{Variant: d.Variant, Message: d.Err.Error()})
	}
	return out
}

// EncodeItemsRequest represents the body of the encode request
type EncodeItemsRequest struct {
	Format string        `json:"format" validate:"required,oneof=yaml binary"`
	Items  []domain.Item `json:"items" validate:"required"`
}

// EncodeItemsResponse represents the encode response body
type EncodeItemsResponse struct {
	Format      string       `json:"format"`
	YAML        string       `json:"yaml,omitempty"`
	Blob        []byte       `json:"blob,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// DecodeItemsRequest represents the body of the decode request. Exactly one
// of YAML or Blob must be set.
type DecodeItemsRequest struct {
	YAML string `json:"yaml,omitempty"`
	Blob []byte `json:"blob,omitempty"`
}

// DecodeItemsResponse represents the decode response body
type DecodeItemsResponse struct {
	Items       []domain.Item `json:"items"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
}

// HandleEncodeItems encodes a list of items into the requested format
// @Summary Encode items
// @Description Encodes items into a YAML document or a binary blob. Variant handler failures are reported as diagnostics, not errors.
// @Tags items
// @Accept json
// @Produce json
// @Param request body EncodeItemsRequest true "Items and target format"
// @Success 200 {object} EncodeItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/encode [post]
func HandleEncodeItems(codec item.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EncodeItemsRequest
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

		resp := EncodeItemsResponse{Format: req.Format}
		var diags []item.Diagnostic
		var err error

		switch req.Format {
		case FormatYAML:
			resp.YAML, diags, err = codec.SerializeItemListToYAML(req.Items)
		case FormatBinary:
			resp.Blob, diags, err = codec.SerializeItemListToBytes(req.Items)
		}
		if err != nil {
			log.Error("Failed to encode items", "format", req.Format, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		resp.Diagnostics = diagnosticViews(diags)
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleDecodeItems decodes a YAML document or binary blob back into items
// @Summary Decode items
// @Description Decodes a YAML document or a binary blob into items. Items that fail to decode are dropped and reported as diagnostics.
// @Tags items
// @Accept json
// @Produce json
// @Param request body DecodeItemsRequest true "Encoded payload, exactly one of yaml or blob"
// @Success 200 {object} DecodeItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/decode [post]
func HandleDecodeItems(codec item.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DecodeItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if (req.YAML == "") == (len(req.Blob) == 0) {
			respondError(w, http.StatusBadRequest, "Exactly one of yaml or blob must be provided")
			return
		}

		var items []domain.Item
		var diags []item.Diagnostic
		var err error

		if req.YAML != "" {
			items, diags, err = codec.DeserializeItemListFromYAML(req.YAML)
		} else {
			items, diags, err = codec.DeserializeItemListFromBytes(req.Blob)
		}
		if err != nil {
			log.Error("Failed to decode items", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, DecodeItemsResponse{
			Items:       items,
			Diagnostics: diagnosticViews(diags),
		})
	}
}
