package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project hosting the identity provider and document store.
	ProjectID string

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool

	CtxKeys struct {
		UID    string
		Email  string
		Name   string
		Role   string
		Claims string
	}
)

func init() {
	initEnvVariables()
	initContextKeys()
}

func initEnvVariables() {
	// Validated on startup by cmd/main; left empty under `go test`.
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	IsLocalhost = gin.Mode() != gin.ReleaseMode

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}
}

func initContextKeys() {
	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.Role = "role"
	CtxKeys.Claims = "claims"
}

// GetEnv returns the env variable value of key, or fallback if not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
