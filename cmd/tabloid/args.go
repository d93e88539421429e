package main

import (
	"fmt"
	"strconv"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/sqlerr"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}

// storeError turns a repository failure into something an operator can read,
// keeping the original error in the chain.
func storeError(err error) error {
	if sqlerr.Convert(err) == nil && !sqlerr.IsConnectivity(err) {
		return err
	}
	return fmt.Errorf("%s (%s): %w", sqlerr.Message(err), sqlerr.MachineCode(err), err)
}
