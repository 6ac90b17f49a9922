package domain

import (
	"regexp"
	"unicode/utf8"

	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

const MaxUsernameLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

var (
	registerUserSchema   = newSchema("REGISTER_USER", required("username"), required("password"), required("fullname"))
	registeredUserSchema = newSchema("REGISTERED_USER", required("id"), required("username"), required("fullname"))
	userLoginSchema      = newSchema("USER_LOGIN", required("username"), required("password"))
)

type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func ParseRegisterUser(p Payload) (RegisterUser, error) {
	if err := registerUserSchema.validate(p); err != nil {
		return RegisterUser{}, err
	}
	username := p.str("username")
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return RegisterUser{}, registerUserSchema.fail(internal_errors.UsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, registerUserSchema.fail(internal_errors.UsernameContainRestrictedCharacter)
	}
	return RegisterUser{Username: username, Password: p.str("password"), Fullname: p.str("fullname")}, nil
}

// RegisteredUser never carries the password.
type RegisteredUser struct {
	Id       UserId `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func ParseRegisteredUser(p Payload) (RegisteredUser, error) {
	if err := registeredUserSchema.validate(p); err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{Id: p.str("id"), Username: p.str("username"), Fullname: p.str("fullname")}, nil
}

type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p Payload) (UserLogin, error) {
	if err := userLoginSchema.validate(p); err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: p.str("username"), Password: p.str("password")}, nil
}
