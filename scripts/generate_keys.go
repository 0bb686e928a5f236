//go:build ignore

// generate_keys prints fresh secrets for a .env file.
//
//	go run scripts/generate_keys.go >> .env
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

type secret struct {
	env   string
	bytes int
}

var secrets = []secret{
	{"JWT_SECRET_KEY", 32},
	{"JWT_REFRESH_SECRET_KEY", 32},
	{"API_KEYS", 24},
}

func main() {
	fmt.Println("# storefront secrets. Generate a separate set per environment and keep them out of git.")
	for _, s := range secrets {
		buf := make([]byte, s.bytes)
		if _, err := rand.Read(buf); err != nil {
			fmt.Fprintf(os.Stderr, "generate %s: %v\n", s.env, err)
			os.Exit(1)
		}
		fmt.Printf("%s=%s\n", s.env, base64.RawURLEncoding.EncodeToString(buf))
	}
}
