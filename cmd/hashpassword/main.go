// Command hashpassword reads a password from stdin and prints the bcrypt
// hash expected in AUTH_ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/org-service/internal/auth"
)

var errEmptyPassword = errors.New("empty password")

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *cost); err != nil {
		log.Fatalf("hash password: %v", err)
	}
}

func run(in io.Reader, out io.Writer, cost int) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errEmptyPassword
	}

	hashed, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hashed)
	return err
}
