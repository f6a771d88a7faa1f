// Package main walks through point arithmetic on the configured curve.
//
// The curve comes from the build tag, an optional YAML file and ECC_CURVE:
//
//	go run -tags ecc_secp256k1 ./cmd/examples/point-arithmetic
//	ECC_CURVE=P-521 go run ./cmd/examples/point-arithmetic -config ecc.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/Caqil/ecc/pkg/config"
	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/crypto/hash"
	"github.com/Caqil/ecc/pkg/crypto/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	c, err := cfg.SelectCurve()
	if err != nil {
		log.Fatalf("No usable curve (build with -tags ecc_p256|ecc_secp256k1|ecc_p521 or set %s): %v",
			config.EnvCurve, err)
	}

	fmt.Printf("=== Point Arithmetic on %s ===\n\n", c.Name)
	fmt.Printf("p = %s\n", c.P().Text(16))
	fmt.Printf("n = %s\n\n", c.N().Text(16))

	g := c.Generator()
	fmt.Println("Generator G:")
	mustPrint(g)

	// Part 1: group operations
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("PART 1: GROUP OPERATIONS")
	fmt.Println(strings.Repeat("=", 60))

	g2 := must(g.Double())
	fmt.Println("\n2G = G + G:")
	mustPrint(g2)

	g3 := must(g2.Add(g))
	fmt.Println("\n3G = 2G + G:")
	mustPrint(g3)

	negG := must(g.Negate())
	zero := must(g.Add(negG))
	fmt.Printf("\nG + (-G) = %s\n", zero)

	back := must(g3.Sub(g2))
	fmt.Printf("3G - 2G == G: %v\n", back.IsEqual(g))

	// Part 2: scalar multiplication
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("PART 2: SCALAR MULTIPLICATION")
	fmt.Println(strings.Repeat("=", 60))

	k3 := must(g.ScalarMult(big.NewInt(3)))
	fmt.Printf("\n3·G == 2G + G: %v\n", k3.IsEqual(g3))

	nG := must(g.ScalarMult(c.N()))
	fmt.Printf("n·G = %s\n", nG)

	p, k, err := rand.RandomPoint(c)
	if err != nil {
		log.Fatalf("Failed to sample point: %v", err)
	}
	ladder := must(g.ScalarMultLadder(k))
	fmt.Printf("random k: double-and-add == ladder: %v\n", p.IsEqual(ladder))

	scalars := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), k}
	batch, err := curve.ScalarMultBatch(context.Background(), g, scalars, curve.DefaultBatchWorkers)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}
	fmt.Printf("batch [1,2,3,k]·G matches: %v\n",
		batch[0].IsEqual(g) && batch[1].IsEqual(g2) && batch[2].IsEqual(g3) && batch[3].IsEqual(p))

	// Part 3: encoding and hashing
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("PART 3: ENCODING AND HASHING")
	fmt.Println(strings.Repeat("=", 60))

	enc := must(g2.Marshal())
	fmt.Printf("\n2G compressed: %x\n", enc)
	decoded := must(c.Unmarshal(enc))
	fmt.Printf("round trip: %v\n", decoded.IsEqual(g2))

	h := must(hash.HashToCurve([]byte("point-arithmetic demo"), nil, c))
	fmt.Println("\nHashToCurve(\"point-arithmetic demo\"):")
	mustPrint(h)

	fmt.Println("\n=== Done ===")
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("Operation failed: %v", err)
	}
	return v
}

func mustPrint(p *curve.Point) {
	if err := p.Print(os.Stdout); err != nil {
		log.Fatalf("Print failed: %v", err)
	}
}
