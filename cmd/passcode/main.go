package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/angelmondragon/skb-upsell-backend/pkg/config"
	"github.com/angelmondragon/skb-upsell-backend/pkg/security"
)

// Hashes the shared agent passcode for SKB_PASSCODE_HASH, or checks a
// passcode against an existing hash with -verify.
func main() {
	passcode := flag.String("passcode", "", "passcode to hash (read from stdin when empty)")
	verify := flag.String("verify", "", "existing argon2id hash to check the passcode against")
	memory := flag.Int("memory-kb", 64*1024, "argon2 memory in KiB")
	iterations := flag.Int("time", 3, "argon2 iterations")
	parallelism := flag.Int("parallelism", 2, "argon2 parallelism")
	flag.Parse()

	value := strings.TrimSpace(*passcode)
	if value == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "missing passcode: pass -passcode or pipe it on stdin")
			os.Exit(1)
		}
		value = strings.TrimSpace(line)
	}

	if *verify != "" {
		ok, err := security.VerifyPasscode(value, *verify)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("passcode does not match")
			os.Exit(2)
		}
		fmt.Println("passcode matches")
		return
	}

	hash, err := security.HashPasscode(value, config.PasscodeConfig{
		ArgonMemoryKB:    *memory,
		ArgonTime:        *iterations,
		ArgonParallelism: *parallelism,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s=%s\n", config.EnvPasscodeHash, hash)
}
