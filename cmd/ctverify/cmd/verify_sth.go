// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     fmt.Sprintf("verify-sth %s sth.json...", keyFlags),
		Aliases: []string{"sth"},
		Short:   "Verify the signatures on tree heads in get-sth JSON form",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runVerifySTH(cmd.OutOrStdout(), mustLogVerifier(), args); err != nil {
				exitWithDetails(err)
			}
		},
	})
}

// runVerifySTH runs the verify-sth command. Every file is checked; the
// first failure is returned.
func runVerifySTH(w io.Writer, v *verifier.LogVerifier, files []string) error {
	var firstErr error
	for _, f := range files {
		sth, err := readSTH(f)
		if err == nil {
			err = v.VerifySTH(sth)
		}
		if err != nil {
			fmt.Fprintf(w, "%s: FAILED: %v\n", f, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		when := ct.TimestampToTime(sth.Timestamp)
		fmt.Fprintf(w, "%s: OK: %v (timestamp %d): size=%d, hash %x\n", f, when, sth.Timestamp, sth.TreeSize, sth.SHA256RootHash)
	}
	return firstErr
}

func readSTH(filename string) (*ct.SignedTreeHead, error) {
	if filename == "" {
		return nil, errors.New("no tree head file given")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var sth ct.SignedTreeHead
	if err := json.Unmarshal(data, &sth); err != nil {
		var encErr *ct.EncodingError
		if errors.As(err, &encErr) {
			return nil, err
		}
		return nil, &ct.EncodingError{Msg: fmt.Sprintf("%s is not a get-sth response", filename), Err: err}
	}
	return &sth, nil
}
