package domain

import (
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

var newAuthSchema = newSchema("NEW_AUTH", required("accessToken"), required("refreshToken"))

type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func ParseNewAuth(p Payload) (NewAuth, error) {
	if err := newAuthSchema.validate(p); err != nil {
		return NewAuth{}, err
	}
	return NewAuth{AccessToken: p.str("accessToken"), RefreshToken: p.str("refreshToken")}, nil
}

// TokenPayload is what access and refresh tokens carry.
type TokenPayload struct {
	Id       UserId
	Username string
}

// ParseRefreshToken extracts the refreshToken field for the use case named by
// useCase, e.g. REFRESH_AUTHENTICATION_USE_CASE.
func ParseRefreshToken(useCase string, p Payload) (string, error) {
	v, ok := p["refreshToken"]
	if !ok || isBlank(v) {
		return "", &internal_errors.ValidationError{Entity: useCase, Reason: internal_errors.NotContainRefreshToken}
	}
	token, ok := v.(string)
	if !ok {
		return "", &internal_errors.ValidationError{Entity: useCase, Reason: internal_errors.PayloadNotMeetDataTypeSpecification}
	}
	return token, nil
}
