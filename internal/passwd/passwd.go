// Package passwd generates and verifies Werkzeug-compatible password hashes.
//
// The encoded form is "pbkdf2:sha256:<iterations>$<salt>$<hexdigest>", the
// format produced by Werkzeug's generate_password_hash. Deployments migrating
// from a Flask-era dyndns endpoint can keep their existing DYNDNS_PASSWORD
// value unchanged.
package passwd

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 round count used for newly generated
// hashes. Matches the current Werkzeug default for pbkdf2:sha256.
const DefaultIterations = 600000

const (
	saltLength = 16
	saltChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate derives a salted hash of password. iterations <= 0 selects
// DefaultIterations.
func Generate(password string, iterations int) (string, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	salt, err := genSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key)), nil
}

// Verify reports whether password matches the encoded hash. Malformed or
// unsupported encodings verify as false. The digest comparison is
// constant-time.
func Verify(encoded, password string) bool {
	method, salt, digest, ok := splitEncoded(encoded)
	if !ok {
		return false
	}
	iterations, ok := parseMethod(method)
	if !ok {
		return false
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	computed := hex.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToLower(digest))) == 1
}

// splitEncoded splits "method$salt$digest". All three parts must be non-empty.
func splitEncoded(encoded string) (method, salt, digest string, ok bool) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// parseMethod accepts "pbkdf2:sha256" and "pbkdf2:sha256:<iterations>".
// A missing round count means the hash predates explicit counts; Werkzeug's
// historical default applies.
func parseMethod(method string) (iterations int, ok bool) {
	fields := strings.Split(method, ":")
	if len(fields) < 2 || len(fields) > 3 || fields[0] != "pbkdf2" || fields[1] != "sha256" {
		return 0, false
	}
	if len(fields) == 2 {
		return DefaultIterations, true
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// genSalt returns n characters drawn from saltChars, the same alphabet
// Werkzeug uses.
func genSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(out), nil
}
