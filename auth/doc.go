// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin API and hashes client addresses for logs.

# Admin Keys

The admin API is protected by a single configured key sent in the
X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Comparison is constant time. An empty configured key never validates.

# IP Hashing

Vote log lines carry a hashed client address instead of the raw IP:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
