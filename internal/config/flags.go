package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local account store (default from Config)
//	-s string   password scheme: plain or bcrypt
//	-e string   environment name (controls log formatting)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local account store")
	fs.StringVar(&cfg.PasswordScheme, "s", cfg.PasswordScheme, "password scheme (plain|bcrypt)")
	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
