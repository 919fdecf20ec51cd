package main

import (
	"strconv"

	"github.com/pkg/errors"
)

func errMissingArg(i int) error {
	return errors.Errorf("dkgcli: missing positional argument %d", i)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "dkgcli: parsing integer %q", s)
	}
	return n, nil
}
