// Command passhash generates and checks password hashes for the
// DYNDNS_PASSWORD environment variable.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/driftdns/driftdns/internal/passwd"
)

func main() {
	var (
		iterations = flag.Int("iterations", passwd.DefaultIterations, "PBKDF2 iteration count")
		check      = flag.String("check", "", "Verify the password against this encoded hash instead of generating")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: passhash [-iterations n] [-check hash] password\n")
		os.Exit(2)
	}
	password := flag.Arg(0)

	if *check != "" {
		if !passwd.Verify(*check, password) {
			fmt.Fprintln(os.Stderr, "password does not match hash")
			os.Exit(1)
		}
		fmt.Println("ok")
		return
	}

	hash, err := passwd.Generate(password, *iterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
