package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"eventbook/shared/password"

	"github.com/rs/zerolog/log"
)

// Prints a bcrypt hash for APP_ADMIN_PASSWORD_HASH. The password is read from the
// first argument, or from stdin when no argument is given.
func main() {
	secret, err := readPassword()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}

	hash, err := password.Hash(secret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	fmt.Println(hash) //nolint:forbidigo
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
