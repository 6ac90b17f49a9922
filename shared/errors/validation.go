package errors

import "errors"

type ValidationReason string

const (
	NotContainNeededProperty            ValidationReason = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification        ValidationReason = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	UsernameLimitChar                   ValidationReason = "USERNAME_LIMIT_CHAR"
	UsernameContainRestrictedCharacter  ValidationReason = "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	NotContainRefreshToken              ValidationReason = "NOT_CONTAIN_REFRESH_TOKEN"
	PayloadNotMeetDataTypeSpecification ValidationReason = "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError is returned when an input payload does not match an entity schema.
// Entity is the upper snake case entity name, e.g. NEW_REPLY.
type ValidationError struct {
	Entity string
	Reason ValidationReason
}

func (e *ValidationError) Code() string {
	return e.Entity + "." + string(e.Reason)
}

func (e *ValidationError) Error() string {
	return e.Code()
}

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
