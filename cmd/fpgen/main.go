package main

import (
	"fmt"
	"os"

	"github.com/ghostgate/ghostseal/internal/audit"
	"github.com/ghostgate/ghostseal/internal/snapshot"
)

func main() {
	canonical := snapshot.Canonicalize(snapshot.Current)
	hash := snapshot.Digest(canonical)

	fmt.Printf("Canonical snapshot: %s\n", canonical)
	fmt.Printf("Snapshot hash: %s\n", hash)

	if len(os.Args) < 4 {
		fmt.Println("\nUsage: go run cmd/fpgen/main.go <prompt> <template-version> <secret>")
		fmt.Println("Computes the decision fingerprint for the current snapshot,")
		fmt.Println("for producing regression vectors and manual verification.")
		os.Exit(0)
	}

	prompt, templateVersion, secret := os.Args[1], os.Args[2], os.Args[3]

	fingerprint, err := audit.Fingerprint(prompt, templateVersion, hash, secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Normalized prompt: %q\n", audit.Normalize(prompt))
	fmt.Printf("Template version: %s\n", templateVersion)
	fmt.Printf("Fingerprint: %s\n", fingerprint)
}
