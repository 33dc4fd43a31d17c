package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Magic-link slugs are short opaque capability tokens; possession grants
// access to the client portal.
const slugLength = 10

func NewSlug() (string, error) {
	return gonanoid.New(slugLength)
}
