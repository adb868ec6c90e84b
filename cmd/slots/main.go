package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slot_machine/internal/app"
)

func main() {
	envPath := flag.String("env", ".env", "path to dotenv file")
	seed := flag.String("seed", "", "rng seed, overrides SLOTS_SEED")
	flag.Parse()

	a := app.NewApp(app.Options{
		EnvPath: *envPath,
		Seed:    *seed,
	})
	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
