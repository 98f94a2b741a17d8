// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package common holds the locations of the files quoridor keeps between
// runs: paused tests and tournaments, and saved games.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// Directory is the root of quoridor's data.
var Directory = filepath.Join(xdg.DataHome, "quoridor")

// PausedSPRTs holds the state of unfinished tests, one file per test name.
func PausedSPRTs() string {
	return filepath.Join(Directory, "paused", "sprt")
}

// PausedTournaments holds the state of unfinished tournaments.
func PausedTournaments() string {
	return filepath.Join(Directory, "paused", "tour")
}

// Games holds the logs of played games.
func Games() string {
	return filepath.Join(Directory, "games")
}

// EnsureDirectories creates every data directory which doesn't exist yet.
func EnsureDirectories() error {
	for _, dir := range []string{PausedSPRTs(), PausedTournaments(), Games()} {
		if err := tryMkdir(dir); err != nil {
			return err
		}
	}

	return nil
}

func tryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}
