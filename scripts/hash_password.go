package main

import (
	"fmt"
	"os"

	"inkwell/internal/security"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/hash_password.go <password>")
		os.Exit(1)
	}

	hash, err := security.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Password hash generated successfully!")
	fmt.Println()
	fmt.Printf("%s\n", hash)
}
