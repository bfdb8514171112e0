// Package main is the command line client for the Store 2070 core: it signs
// in against the GraphQL endpoint and keeps the session in the OS keyring or
// a profile file.
package main

import (
	"os"

	"github.com/ManuelReschke/Store2070/internal/pkg/env"
)

func main() {
	env.SetupEnvFile()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
