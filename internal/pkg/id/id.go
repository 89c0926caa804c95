package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a ULID string. ULIDs sort lexicographically by creation
// time and work as DynamoDB partition keys and S3 object key segments.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
