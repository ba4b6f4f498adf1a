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

package server

import (
	ct "github.com/google/ctverify"
)

const (
	// HTTPGetLogs is the path of the URL listing the logs the server knows.
	HTTPGetLogs = "/ct-verify/v1/logs"
	// HTTPVerifySTH is the path of the URL to verify a tree head. The
	// placeholder is for the log name.
	HTTPVerifySTH = "/ct-verify/v1/logs/%s/verify-sth"
	// HTTPVerifySCT is the path of the URL to verify an SCT against a chain.
	HTTPVerifySCT = "/ct-verify/v1/logs/%s/verify-sct"
	// HTTPVerifyEmbeddedSCTs is the path of the URL to verify the SCTs
	// embedded in a certificate.
	HTTPVerifyEmbeddedSCTs = "/ct-verify/v1/logs/%s/verify-embedded-scts"
	// HTTPCheckConsistency is the path of the URL to check two tree heads
	// and the proof between them.
	HTTPCheckConsistency = "/ct-verify/v1/logs/%s/check-consistency"
	// HTTPMetrics serves Prometheus metrics.
	HTTPMetrics = "/metrics"
)

// VerifySTHRequest carries a tree head in get-sth form.
type VerifySTHRequest struct {
	STH ct.SignedTreeHead `json:"sth"`
}

// VerifySCTRequest carries an SCT and the chain it was issued for, leaf
// first. Exactly one of SCT and AddChainResponse is set.
type VerifySCTRequest struct {
	// SCT is a TLS-encoded SignedCertificateTimestamp.
	SCT              []byte               `json:"sct,omitempty"`
	AddChainResponse *ct.AddChainResponse `json:"add_chain_response,omitempty"`
	// Chain holds DER certificates.
	Chain [][]byte `json:"chain"`
}

// VerifyEmbeddedSCTsRequest carries a DER chain, leaf first.
type VerifyEmbeddedSCTsRequest struct {
	Chain [][]byte `json:"chain"`
}

// CheckConsistencyRequest carries two tree heads of one log, the older
// first, and an optional consistency proof between them.
type CheckConsistencyRequest struct {
	OldSTH ct.SignedTreeHead `json:"old_sth"`
	NewSTH ct.SignedTreeHead `json:"new_sth"`
	Proof  [][]byte          `json:"proof,omitempty"`
}

// VerifyResponse reports the outcome of a verification. ErrorKind is one
// of the names returned by ct.ErrorKind.
type VerifyResponse struct {
	Valid     bool   `json:"valid"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
	// LogIDMatches reports whether an SCT names the configured log key. It
	// does not affect Valid.
	LogIDMatches *bool `json:"log_id_matches,omitempty"`
}

// EmbeddedSCTResult is the outcome for one embedded SCT.
type EmbeddedSCTResult struct {
	LogID        string `json:"log_id"`
	Timestamp    uint64 `json:"timestamp"`
	Valid        bool   `json:"valid"`
	LogIDMatches bool   `json:"log_id_matches"`
}

// VerifyEmbeddedSCTsResponse reports every embedded SCT. Valid is set when
// there is at least one SCT and all of them verify.
type VerifyEmbeddedSCTsResponse struct {
	VerifyResponse
	SCTs []EmbeddedSCTResult `json:"scts"`
}
