package utils

import "github.com/google/uuid"

// GenerateUUID returns a random (version 4) UUID in canonical lowercase form
func GenerateUUID() string {
	return uuid.NewString()
}
