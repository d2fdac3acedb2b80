// Command hash-generator prints bcrypt hashes for seeding the accounts table
// of the PostgreSQL backend.
//
// Passwords are read one per line from stdin. With --email, an INSERT
// statement for a single account is printed instead of the bare hash.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cmd := newCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var (
		cost  int
		email string
	)
	cmd := &cobra.Command{
		Use:           "hash-generator",
		Short:         "Hash passwords read from stdin with bcrypt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(stdin, stdout, auth.NewBcrypt(cost), email)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
	cmd.Flags().StringVar(&email, "email", "", "emit an accounts INSERT for this email")
	return cmd
}

func run(stdin io.Reader, stdout io.Writer, hasher auth.PasswordHasher, email string) error {
	scanner := bufio.NewScanner(stdin)
	n := 0
	for scanner.Scan() {
		password := strings.TrimRight(scanner.Text(), "\r")
		if password == "" {
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("line %d: %w", n+1, err)
		}
		n++

		if email == "" {
			fmt.Fprintln(stdout, hash)
			continue
		}
		if n > 1 {
			return fmt.Errorf("--email takes exactly one password")
		}
		fmt.Fprintf(stdout,
			"INSERT INTO accounts (id, email, password_hash) VALUES ('%s', '%s', '%s');\n",
			uuid.NewString(), strings.ReplaceAll(strings.ToLower(strings.TrimSpace(email)), "'", "''"), hash)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read passwords: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no passwords on stdin")
	}
	return nil
}
