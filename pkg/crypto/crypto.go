package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomString returns a url-safe random string suitable as an api
// key. Reading from crypto/rand only fails when the OS entropy source is
// broken, in which case there is nothing sensible to do but stop.
func GenerateRandomString() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return base64.URLEncoding.EncodeToString(b)
}
