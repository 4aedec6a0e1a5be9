package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"

	"github.com/gorilla/mux"
)

var (
	errEmptyBody    = errors.New("request body is required")
	errInvalidID    = errors.New("id must be a positive integer")
	errTrailingData = errors.New("request body must contain a single JSON object")
)

// parseID reads the {id} path variable. Ids are SERIAL columns, so anything
// but a positive 32-bit integer is rejected.
func parseID(r *http.Request) (int, error) {
	return parsePositiveID(mux.Vars(r)["id"])
}

func parsePositiveID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return int(id), nil
}

// parseOptionalID treats an empty value as absent
func parseOptionalID(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return parsePositiveID(raw)
}

// decodeAndValidate decodes a JSON body into req, rejecting unknown fields,
// then runs the struct validation. It writes the 400 response itself and
// reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			response.BadRequest(w, errEmptyBody.Error())
			return false
		}
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", errTrailingData.Error())
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// writeInputError maps the input errors shared by every resource. It reports
// whether err was handled.
func writeInputError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, usecase.ErrEmptyUpdate):
		response.BadRequest(w, "No fields to update")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case errors.Is(err, usecase.ErrInvalidEnumValue):
		response.BadRequest(w, "Invalid status, role or gender value")
	default:
		return false
	}
	return true
}
