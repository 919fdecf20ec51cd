package main

import (
	"encoding/json"
	"os"
)

// writeJSON emits v as a single JSON object to stdout, the success
// contract every subcommand shares.
func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(v)
}

func atoi(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, wrapUserError(errMissingArg(i))
	}
	n, err := parseInt(args[i])
	if err != nil {
		return 0, wrapUserError(err)
	}
	return n, nil
}
