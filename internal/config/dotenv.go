// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv exports variables from the given .env files (or ./.env when no
// path is given) into the process environment. Variables that are already
// set are left untouched, so the real environment always wins over the file.
//
// A missing file is not an error: .env files are a development convenience.
func loadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading .env file: %w", err)
}
