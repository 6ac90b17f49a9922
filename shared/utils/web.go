package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes {"status":"success","data":data}. A nil data omits the field.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.SuccessResponse{Status: api.StatusSuccess, Data: data})
}

func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, api.ErrorResponse{Status: api.StatusFail, Message: message})
}

// WriteErrorAndStatusCode maps err to a status code and a fail envelope.
// Errors without a known kind become a 500 and are logged.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if v, ok := internal_errors.AsValidation(err); ok {
		WriteFail(w, http.StatusBadRequest, TranslateValidation(v))
		return
	}
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		WriteFail(w, e.StatusCode, e.Message)
		return
	}
	// default error is 500
	logger.Log.Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{
		Status:  api.StatusError,
		Message: "internal server error",
	})
}

// TranslateValidation turns a validation code into a message for API clients.
func TranslateValidation(v *internal_errors.ValidationError) string {
	subject := strings.ToLower(strings.ReplaceAll(v.Entity, "_", " "))
	switch v.Reason {
	case internal_errors.NotContainNeededProperty:
		return "cannot process " + subject + " because required properties are missing"
	case internal_errors.NotMeetDataTypeSpecification:
		return "cannot process " + subject + " because a property has the wrong data type"
	case internal_errors.UsernameLimitChar:
		return "cannot register user because the username exceeds the character limit"
	case internal_errors.UsernameContainRestrictedCharacter:
		return "cannot register user because the username contains restricted characters"
	case internal_errors.NotContainRefreshToken:
		return "refresh token is required"
	case internal_errors.PayloadNotMeetDataTypeSpecification:
		return "refresh token must be a string"
	}
	return v.Code()
}

// DecodePayload reads a JSON object body. An empty body yields an empty payload
// so that schema validation reports the missing properties.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	defer r.Close()

	payload := domain.Payload{}
	dec := json.NewDecoder(io.LimitReader(r, MaxBodyBytes))
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, nil
		}
		logger.Log.Debug("invalid request body", "error", err)
		return nil, internal_errors.Invariant("body is invalid json")
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
