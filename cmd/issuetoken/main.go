// Command issuetoken prints a bearer token for a profile, signed with the
// same secret the server validates against.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/gigledger/pkg/auth"
)

type options struct {
	Secret string        `env:"JWT_SECRET" envDefault:"gigledger-secret"`
	TTL    time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := options{}
	if err := env.Parse(&opts); err != nil {
		log.Fatal().Err(err).Msg("can't parse environment")
	}

	profileID := flag.Int("p", 0, "profile id the token is issued for")
	flag.StringVar(&opts.Secret, "s", opts.Secret, "secret used to sign the token")
	flag.DurationVar(&opts.TTL, "ttl", opts.TTL, "token lifetime")
	flag.Parse()

	if *profileID <= 0 {
		log.Fatal().Int("profile_id", *profileID).Msg("profile id must be positive")
	}

	token, err := auth.NewJWTService(opts.Secret).GenerateJWT(*profileID, time.Now().Add(opts.TTL))
	if err != nil {
		log.Fatal().Err(err).Msg("can't sign token")
	}

	fmt.Println(token)
}
