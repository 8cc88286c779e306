// Package cli implementa los comandos de petctl sobre el SDK (internal/client).
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pet-registry/internal/client"
)

var (
	// Flags persistentes de todos los subcomandos
	serverURL string
	token     string
	debugUser string
	output    string

	// Version se inyecta en el build
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "petctl",
	Short: "petctl manages pets in a pet-registry server",
	Long: `petctl is the command line client for pet-registry.

Authentication: pass --token for a real server, or --debug-user against
a server running in dev mode (no JWT secret configured).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

// Execute corre el comando raíz. Lo llama main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", envOr("PETCTL_SERVER_URL", "http://localhost:8080"), "pet-registry base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("PETCTL_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().StringVar(&debugUser, "debug-user", os.Getenv("PETCTL_DEBUG_USER"), "dev-mode user id (X-Debug-User-ID)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text|json|yaml")
}

func newClient() (*client.Client, error) {
	return client.New(client.Options{
		BaseURL:     serverURL,
		Token:       token,
		DebugUserID: debugUser,
	})
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
