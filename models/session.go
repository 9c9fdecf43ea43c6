// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the in-memory state of an authenticated user. It lives only as
// long as the session loop that created it and is never written to disk.
type Session struct {
	Username string
	UserID   string
	Token    string
}

// Authenticated reports whether the session carries both a user id and a token.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
