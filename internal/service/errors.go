package service

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong username or password")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrNotAuthorized    = errors.New("session is not authorized")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("weak password")

	ErrUserNotFound    = errors.New("user not found")
	ErrYardNotFound    = errors.New("pet yard not found")
	ErrPetNotFound     = errors.New("pet not found")
	ErrYardNameTaken   = errors.New("you already have a yard of this name")
	ErrPetNameTaken    = errors.New("there is already a pet with this name in this yard")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrUnknownSpecies  = errors.New("must be an available species")
	ErrAttachPetFailed = errors.New("failed to place pet into yard, pet not created")
)
