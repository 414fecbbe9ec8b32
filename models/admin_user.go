// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdminUser is an operator allowed to log into the admin gateway.
//
// PasswordHash has the form "<salt>:<hash>" where both parts are standard
// base64 and hash is an argon2id digest of the password.
type AdminUser struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
