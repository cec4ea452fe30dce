package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vivault/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., "127.0.0.1:50051")
//	-D string   database driver: sqlite or postgres
//	-d string   database DSN
//	-s string   caller token secret key
//	-t int      session lifetime, minutes
//	-k string   key derivation algorithm for new vaults
//	-n uint     key derivation iterations for new vaults
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so that -c/-config and
// unknown flags do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-D", "-d", "-s", "-t", "-k", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key for caller tokens")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")

	fs.StringVar(&config.KDFAlgorithm, "k", config.KDFAlgorithm, "key derivation algorithm for new vaults")
	iterations := fs.Uint("n", uint(config.KDFIterations), "key derivation iterations for new vaults (0 = algorithm default)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.KDFIterations = uint32(*iterations)
}
