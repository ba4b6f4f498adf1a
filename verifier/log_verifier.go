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

// Package verifier checks the signed statements a Certificate Transparency
// log makes: tree heads, consistency between tree heads, and certificate
// timestamps, whether delivered alongside a chain or embedded in it.
package verifier

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/certificate-transparency-go/asn1"
	"github.com/google/certificate-transparency-go/x509"
	ct "github.com/google/ctverify"
	"k8s.io/klog/v2"
)

//go:generate mockgen -package mockverifier -destination mockverifier/mock_verifier.go github.com/google/ctverify/verifier ConsistencyChecker

// ErrNoConsistencyChecker is returned by VerifySTHConsistency when the
// LogVerifier was built without a ConsistencyChecker.
var ErrNoConsistencyChecker = errors.New("verifier: no consistency checker configured")

// Certificate is the view of an X.509 certificate that a LogVerifier needs
// in order to rebuild the entry a log signed.
type Certificate interface {
	// Raw returns the complete DER certificate.
	Raw() []byte
	// TBSDER returns the DER TBSCertificate.
	TBSDER() []byte
	// SubjectPublicKeyInfo returns the DER SubjectPublicKeyInfo.
	SubjectPublicKeyInfo() []byte
	// RawIssuer returns the DER issuer name.
	RawIssuer() []byte
	// RawSubject returns the DER subject name.
	RawSubject() []byte
	// Extension returns the value of the extension with the given OID.
	Extension(oid asn1.ObjectIdentifier) ([]byte, bool)
	// WithoutExtension returns the TBSCertificate with the extension
	// removed.
	WithoutExtension(oid asn1.ObjectIdentifier) ([]byte, error)
	// WithIssuer returns the TBSCertificate of a precertificate issued by
	// the precertificate signing certificate preIssuer, with the poison
	// extension removed and the issuer replaced by preIssuer's issuer.
	WithIssuer(preIssuer Certificate) ([]byte, error)
	// IsPrecertSigningCert reports whether the certificate carries the
	// Certificate Transparency extended key usage.
	IsPrecertSigningCert() bool
}

// ConsistencyChecker checks Merkle consistency proofs.
type ConsistencyChecker interface {
	// VerifyConsistency returns whether proof links the two tree states.
	// Malformed proofs give a *ct.ConsistencyError.
	VerifyConsistency(oldSize, newSize uint64, oldRoot, newRoot []byte, proof [][]byte) (bool, error)
}

// EmbeddedSCTResult is the outcome of checking one SCT found in a
// certificate's SCT list extension.
type EmbeddedSCTResult struct {
	SCT   ct.SignedCertificateTimestamp
	Valid bool
}

// Option configures a LogVerifier.
type Option func(*options)

type options struct {
	checker   ConsistencyChecker
	strictDER bool
	metrics   *Metrics
}

// WithConsistencyChecker sets the checker used by VerifySTHConsistency.
func WithConsistencyChecker(c ConsistencyChecker) Option {
	return func(o *options) { o.checker = c }
}

// WithStrictDER requires ECDSA signatures to be canonical DER.
func WithStrictDER() Option {
	return func(o *options) { o.strictDER = true }
}

// WithMetrics records the outcome and latency of every operation in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// LogVerifier verifies the statements signed by a single log. It holds no
// mutable state and is safe for concurrent use, provided its
// ConsistencyChecker is.
type LogVerifier struct {
	key     *ct.KeyDescriptor
	sv      *ct.SignatureVerifier
	checker ConsistencyChecker
	metrics *Metrics
}

// New returns a LogVerifier for the log with the given key, which must not
// be nil; New panics otherwise.
func New(key *ct.KeyDescriptor, opts ...Option) *LogVerifier {
	if key == nil {
		panic("verifier: New called with nil key")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	var svOpts []ct.SignatureVerifierOption
	if o.strictDER {
		svOpts = append(svOpts, ct.WithStrictDER())
	}
	return &LogVerifier{
		key:     key,
		sv:      key.Verifier(svOpts...),
		checker: o.checker,
		metrics: o.metrics,
	}
}

// Key returns the log's key.
func (v *LogVerifier) Key() *ct.KeyDescriptor { return v.key }

// VerifySTH checks the signature on sth. It returns a *ct.EncodingError if
// the signature cannot be decoded and a *ct.SignatureError if it does not
// verify.
func (v *LogVerifier) VerifySTH(sth *ct.SignedTreeHead) (err error) {
	defer v.metrics.observe(opVerifySTH, time.Now(), &err)
	if sth == nil {
		return fmt.Errorf("nil tree head: %w", ct.ErrInvalidArgument)
	}
	if err := v.sv.VerifySTHSignature(*sth); err != nil {
		klog.V(1).Infof("STH %v failed verification: %v", sth, err)
		return err
	}
	return nil
}

// VerifySTHConsistency passes the sizes and roots of the two tree heads and
// proof to the ConsistencyChecker, and returns its result unchanged.
func (v *LogVerifier) VerifySTHConsistency(oldSTH, newSTH *ct.SignedTreeHead, proof [][]byte) (ok bool, err error) {
	defer v.metrics.observe(opVerifyConsistency, time.Now(), &err)
	if v.checker == nil {
		return false, ErrNoConsistencyChecker
	}
	if oldSTH == nil || newSTH == nil {
		return false, fmt.Errorf("nil tree head: %w", ct.ErrInvalidArgument)
	}
	return v.checker.VerifyConsistency(oldSTH.TreeSize, newSTH.TreeSize, oldSTH.SHA256RootHash[:], newSTH.SHA256RootHash[:], proof)
}

// VerifySTHTemporalConsistency checks that a log's tree did not shrink
// between the tree heads a and b, where a is the earlier of the two. Tree
// heads with equal timestamps must have equal sizes. Root hashes are not
// compared. Passing a later than b is a caller error that wraps
// ct.ErrInvalidArgument.
func (v *LogVerifier) VerifySTHTemporalConsistency(a, b *ct.SignedTreeHead) (err error) {
	defer v.metrics.observe(opVerifyTemporal, time.Now(), &err)
	if a == nil || b == nil {
		return fmt.Errorf("nil tree head: %w", ct.ErrInvalidArgument)
	}
	switch {
	case a.Timestamp > b.Timestamp:
		return fmt.Errorf("tree heads out of order: timestamp %d is after %d: %w", a.Timestamp, b.Timestamp, ct.ErrInvalidArgument)
	case a.Timestamp == b.Timestamp:
		if a.TreeSize != b.TreeSize {
			return &ct.ConsistencyError{Msg: fmt.Sprintf("tree heads at timestamp %d have sizes %d and %d", a.Timestamp, a.TreeSize, b.TreeSize)}
		}
	case a.TreeSize > b.TreeSize:
		return &ct.ConsistencyError{Msg: fmt.Sprintf("tree size shrank from %d at %d to %d at %d", a.TreeSize, a.Timestamp, b.TreeSize, b.Timestamp)}
	}
	return nil
}

// CheckConsistency verifies the signatures on both tree heads and their
// order, then checks proof between them. A nil proof skips the last step.
func (v *LogVerifier) CheckConsistency(oldSTH, newSTH *ct.SignedTreeHead, proof [][]byte) (bool, error) {
	if err := v.VerifySTH(oldSTH); err != nil {
		return false, fmt.Errorf("old tree head: %w", err)
	}
	if err := v.VerifySTH(newSTH); err != nil {
		return false, fmt.Errorf("new tree head: %w", err)
	}
	if err := v.VerifySTHTemporalConsistency(oldSTH, newSTH); err != nil {
		return false, err
	}
	if proof == nil {
		return true, nil
	}
	return v.VerifySTHConsistency(oldSTH, newSTH, proof)
}

// VerifySCT checks sct against chain, which lists the leaf first followed
// by its issuers. A leaf carrying the precertificate poison extension is
// checked as a precertificate entry, which needs the leaf's issuer and, if
// that issuer is a precertificate signing certificate, the issuer above it.
// A missing certificate, or an issuer whose subject does not match the
// issuer name of the certificate before it, gives a
// *ct.IncompleteChainError.
func (v *LogVerifier) VerifySCT(sct *ct.SignedCertificateTimestamp, chain []Certificate) (err error) {
	defer v.metrics.observe(opVerifySCT, time.Now(), &err)
	if sct == nil {
		return fmt.Errorf("nil SCT: %w", ct.ErrInvalidArgument)
	}
	entry, err := logEntryForChain(sct.Timestamp, chain)
	if err != nil {
		return err
	}
	if err := v.sv.VerifySCTSignature(*sct, *entry); err != nil {
		klog.V(1).Infof("SCT %v failed verification: %v", sct, err)
		return err
	}
	return nil
}

// VerifyEmbeddedSCTs checks every SCT in the leaf's SCT list extension
// against the precertificate the leaf was built from. The results follow
// the order of the list; a leaf without the extension yields none. An SCT
// whose signature does not verify is reported as invalid, while any other
// failure aborts the whole call.
func (v *LogVerifier) VerifyEmbeddedSCTs(chain []Certificate) (results []EmbeddedSCTResult, err error) {
	defer v.metrics.observe(opVerifyEmbedded, time.Now(), &err)
	if len(chain) == 0 || chain[0] == nil {
		return nil, &ct.IncompleteChainError{Msg: "chain has no leaf certificate"}
	}
	leaf := chain[0]
	extValue, ok := leaf.Extension(x509.OIDExtensionCTSCT)
	if !ok {
		return []EmbeddedSCTResult{}, nil
	}
	scts, err := ct.ParseSCTList(extValue)
	if err != nil {
		return nil, err
	}
	if len(chain) < 2 || chain[1] == nil {
		return nil, &ct.IncompleteChainError{Msg: "certificate with embedded SCTs has no issuer in chain"}
	}
	if !issuedBy(leaf, chain[1]) {
		return nil, &ct.IncompleteChainError{Msg: "issuer of certificate with embedded SCTs is not next in chain"}
	}
	tbs, err := leaf.WithoutExtension(x509.OIDExtensionCTSCT)
	if err != nil {
		return nil, err
	}
	issuerKeyHash := sha256.Sum256(chain[1].SubjectPublicKeyInfo())

	results = make([]EmbeddedSCTResult, 0, len(scts))
	for i, sct := range scts {
		entry := ct.LogEntry{Leaf: *ct.CreatePrecertMerkleTreeLeaf(issuerKeyHash, tbs, sct.Timestamp)}
		err := v.sv.VerifySCTSignature(sct, entry)
		var sigErr *ct.SignatureError
		switch {
		case err == nil:
			results = append(results, EmbeddedSCTResult{SCT: sct, Valid: true})
		case errors.As(err, &sigErr):
			klog.V(1).Infof("embedded SCT %d (%v) failed verification: %v", i, sct, err)
			results = append(results, EmbeddedSCTResult{SCT: sct, Valid: false})
		default:
			return nil, err
		}
		v.metrics.observeEmbeddedSCT(err)
	}
	return results, nil
}

// logEntryForChain builds the log entry an SCT for chain[0] covers.
func logEntryForChain(timestamp uint64, chain []Certificate) (*ct.LogEntry, error) {
	if len(chain) == 0 || chain[0] == nil {
		return nil, &ct.IncompleteChainError{Msg: "chain has no leaf certificate"}
	}
	leaf := chain[0]
	if _, isPrecert := leaf.Extension(x509.OIDExtensionCTPoison); !isPrecert {
		return &ct.LogEntry{Leaf: *ct.CreateX509MerkleTreeLeaf(ct.ASN1Cert{Data: leaf.Raw()}, timestamp)}, nil
	}

	if len(chain) < 2 || chain[1] == nil {
		return nil, &ct.IncompleteChainError{Msg: "precertificate has no issuer in chain"}
	}
	issuer := chain[1]
	if !issuedBy(leaf, issuer) {
		return nil, &ct.IncompleteChainError{Msg: "issuer of precertificate is not next in chain"}
	}
	var (
		tbs []byte
		err error
	)
	if issuer.IsPrecertSigningCert() {
		if len(chain) < 3 || chain[2] == nil {
			return nil, &ct.IncompleteChainError{Msg: "precertificate signing certificate has no issuer in chain"}
		}
		if !issuedBy(issuer, chain[2]) {
			return nil, &ct.IncompleteChainError{Msg: "issuer of precertificate signing certificate is not next in chain"}
		}
		tbs, err = leaf.WithIssuer(issuer)
		issuer = chain[2]
	} else {
		tbs, err = leaf.WithoutExtension(x509.OIDExtensionCTPoison)
	}
	if err != nil {
		return nil, err
	}
	return &ct.LogEntry{Leaf: *ct.CreatePrecertMerkleTreeLeaf(sha256.Sum256(issuer.SubjectPublicKeyInfo()), tbs, timestamp)}, nil
}

// issuedBy reports whether cert names issuer as its issuer. Only the names
// are compared; signatures are not checked.
func issuedBy(cert, issuer Certificate) bool {
	return bytes.Equal(cert.RawIssuer(), issuer.RawSubject())
}
