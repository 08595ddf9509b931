package service

import "errors"

var (
	// ErrMalformedAuthResponse is the cause attached when login or signup
	// reported success without both a token and a user.
	ErrMalformedAuthResponse = errors.New("malformed auth response")

	// ErrAuthRejected is the cause attached when the backend answered 2xx
	// with success=false.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrExpiredToken is the cause attached when login or signup returned a
	// token whose exp claim is already in the past.
	ErrExpiredToken = errors.New("auth token already expired")

	// ErrPersistSession is returned when a successful login could not be
	// written to durable storage. The session stays unauthenticated.
	ErrPersistSession = errors.New("failed to persist session")

	ErrNotAuthenticated = errors.New("not authenticated")

	ErrEmptyProfile    = errors.New("profile response carries no user")
	ErrEmptyAnswer     = errors.New("answer response carries no data")
	ErrEmptyReport     = errors.New("report response carries no data")
	ErrEmptyResume     = errors.New("resume response carries no data")
	ErrEmptyQuestionID = errors.New("empty question id")
	ErrEmptyResumeID   = errors.New("empty resume id")
	ErrEmptyResumeText = errors.New("empty resume text")
	ErrNoFileProvided  = errors.New("no file provided")
)
