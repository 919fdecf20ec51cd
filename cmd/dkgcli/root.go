// Command dkgcli is a thin CLI shim over the tiac/dkg package: each
// subcommand reads positional hex/decimal arguments, runs one DKG
// operation, and writes a single JSON object to stdout. Failures go to
// stderr as {"error": "..."} with a non-zero exit code: 1 for a
// user/parse error, 2 for a cryptographic failure (§6).
package main

import (
	"fmt"
	"os"

	"github.com/KereMath/tiac"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	log        zerolog.Logger
	paramsPath string
	params     *tiac.Params
)

const (
	exitOK         = 0
	exitUserError  = 1
	exitCryptoFail = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dkgcli",
		Short: "Distributed key generation operations for the threshold credential committee",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			viper.SetEnvPrefix("DKGCLI")
			viper.AutomaticEnv()
			if viper.GetString("params") != "" {
				paramsPath = viper.GetString("params")
			}

			var err error
			params, err = tiac.LoadOrGenerate(paramsPath)
			if err != nil {
				return wrapUserError(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&paramsPath, "params", "crypto_params.json", "path to the shared pairing parameters file")
	viper.BindPFlag("params", root.PersistentFlags().Lookup("params"))

	root.AddCommand(
		newGeneratePolynomialsCmd(),
		newEvaluatePolynomialCmd(),
		newVerifyShareCmd(),
		newAggregateMVKCmd(),
		newComputeSigningKeyCmd(),
		newComputeVerificationKeysCmd(),
	)
	return root
}

// cliError carries the exit code a failure should map to, alongside the
// message written to stderr as {"error": "..."}.
type cliError struct {
	err      error
	exitCode int
}

func (e *cliError) Error() string { return e.err.Error() }

func wrapUserError(err error) error   { return &cliError{err: err, exitCode: exitUserError} }
func wrapCryptoError(err error) error { return &cliError{err: err, exitCode: exitCryptoFail} }

func exitCodeFor(err error) int {
	if ce, ok := err.(*cliError); ok {
		fmt.Fprintf(os.Stderr, "{\"error\": %q}\n", ce.Error())
		return ce.exitCode
	}
	fmt.Fprintf(os.Stderr, "{\"error\": %q}\n", err.Error())
	return exitUserError
}
