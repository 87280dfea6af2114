package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

func main() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("SECRET_KEY=%s\n", hex.EncodeToString(key))
	fmt.Println()
	fmt.Println("Add this to your environment before starting the worker.")
}
