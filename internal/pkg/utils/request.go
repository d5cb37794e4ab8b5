package utils

import (
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseIDParam reads a numeric backend id from the chi URL params.
func ParseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constvars.URLParamID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return id, nil
}

// DecodeJSONBody decodes a JSON request body into dst without validating it.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// DecodeRequestBody decodes and validates a JSON request body into dst.
func DecodeRequestBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
