// Package cliutil holds small helpers shared by the CLI commands.
package cliutil

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	derrors "github.com/saucesteals/silk/internal/errors"
)

// PrintJSON renders a command result to stdout.
func PrintJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to encode result")
	}

	fmt.Fprintln(os.Stdout, string(encoded))

	return nil
}

// ParsePoint parses "x,y" into integer coordinates.
func ParsePoint(raw string) (x, y int, err error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, derrors.Newf(derrors.CodeInvalidInput, "expected x,y but got %q", raw)
	}

	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, derrors.Newf(derrors.CodeInvalidInput, "invalid x coordinate in %q", raw)
	}

	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, derrors.Newf(derrors.CodeInvalidInput, "invalid y coordinate in %q", raw)
	}

	return x, y, nil
}
