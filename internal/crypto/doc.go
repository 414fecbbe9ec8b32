// Package crypto hashes and verifies admin passwords with argon2id.
package crypto
