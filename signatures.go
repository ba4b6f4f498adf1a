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

package ct

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/pem"
	"flag"
	"fmt"

	"github.com/google/certificate-transparency-go/tls"
	"github.com/google/certificate-transparency-go/x509"
	"k8s.io/klog/v2"
)

var allowVerificationWithNonCompliantKeys = flag.Bool("allow_verification_with_non_compliant_keys", false,
	"Allow a SignatureVerifier to use keys which are technically non-compliant with RFC6962.")

// KeyAlgorithm is the signature family of a log key.
type KeyAlgorithm int

// Supported key algorithms.
const (
	UnknownKeyAlgorithm KeyAlgorithm = iota
	RSAKey
	ECDSAKey
)

func (a KeyAlgorithm) String() string {
	switch a {
	case RSAKey:
		return "RSA"
	case ECDSAKey:
		return "ECDSA"
	default:
		return fmt.Sprintf("UnknownKeyAlgorithm(%d)", int(a))
	}
}

func (a KeyAlgorithm) signatureAlgorithm() tls.SignatureAlgorithm {
	switch a {
	case RSAKey:
		return tls.RSA
	case ECDSAKey:
		return tls.ECDSA
	default:
		return tls.Anonymous
	}
}

// KeyDescriptor is a log public key tagged with its algorithm. Exactly one
// of the key fields is set, matching the algorithm. A KeyDescriptor is
// immutable once built.
type KeyDescriptor struct {
	algorithm KeyAlgorithm
	rsaKey    *rsa.PublicKey
	ecdsaKey  *ecdsa.PublicKey
	logID     LogID
}

// Algorithm returns the key's signature family.
func (k *KeyDescriptor) Algorithm() KeyAlgorithm { return k.algorithm }

// PublicKey returns the key material.
func (k *KeyDescriptor) PublicKey() crypto.PublicKey {
	if k.algorithm == RSAKey {
		return k.rsaKey
	}
	return k.ecdsaKey
}

// LogID returns the RFC 6962 log ID for the key: the SHA-256 hash of its DER
// SubjectPublicKeyInfo.
func (k *KeyDescriptor) LogID() LogID { return k.logID }

// NewKeyDescriptor checks that pk can verify CT signatures and wraps it.
// RSA keys must have at least 2048 bits and ECDSA keys must be on P-256,
// unless --allow_verification_with_non_compliant_keys is set.
func NewKeyDescriptor(pk crypto.PublicKey) (*KeyDescriptor, error) {
	var kd KeyDescriptor
	switch pkType := pk.(type) {
	case *rsa.PublicKey:
		if pkType.N.BitLen() < 2048 {
			e := fmt.Errorf("public key is RSA with < 2048 bits (size:%d)", pkType.N.BitLen())
			if !*allowVerificationWithNonCompliantKeys {
				return nil, &KeyError{Msg: "non-compliant key", Err: e}
			}
			klog.Warningf("%v", e)
		}
		kd.algorithm, kd.rsaKey = RSAKey, pkType
	case *ecdsa.PublicKey:
		params := *(pkType.Params())
		if params != *elliptic.P256().Params() {
			e := fmt.Errorf("public key is ECDSA, but not on the P256 curve")
			if !*allowVerificationWithNonCompliantKeys {
				return nil, &KeyError{Msg: "non-compliant key", Err: e}
			}
			klog.Warningf("%v", e)
		}
		kd.algorithm, kd.ecdsaKey = ECDSAKey, pkType
	default:
		return nil, &KeyError{Msg: fmt.Sprintf("unsupported public key type %T", pk)}
	}
	der, err := x509.MarshalPKIXPublicKey(pk)
	if err != nil {
		return nil, &KeyError{Msg: "failed to marshal public key", Err: err}
	}
	kd.logID = LogID{KeyID: sha256.Sum256(der)}
	return &kd, nil
}

// KeyDescriptorFromDER parses a DER SubjectPublicKeyInfo.
func KeyDescriptorFromDER(der []byte) (*KeyDescriptor, error) {
	pk, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, &KeyError{Msg: "failed to parse public key", Err: err}
	}
	return NewKeyDescriptor(pk)
}

// KeyDescriptorFromPEM parses the first PEM block in b as a public key.
func KeyDescriptorFromPEM(b []byte) (*KeyDescriptor, error) {
	pk, _, _, err := PublicKeyFromPEM(b)
	if err != nil {
		return nil, err
	}
	return NewKeyDescriptor(pk)
}

// PublicKeyFromPEM parses a PEM formatted block and returns the public key
// contained within, the SHA-256 hash of its DER form, and any remaining
// unread bytes.
func PublicKeyFromPEM(b []byte) (crypto.PublicKey, SHA256Hash, []byte, error) {
	p, rest := pem.Decode(b)
	if p == nil {
		return nil, SHA256Hash{}, rest, &KeyError{Msg: "no PEM block found"}
	}
	k, err := x509.ParsePKIXPublicKey(p.Bytes)
	if err != nil {
		return nil, SHA256Hash{}, rest, &KeyError{Msg: "failed to parse public key", Err: err}
	}
	return k, sha256.Sum256(p.Bytes), rest, nil
}

// SignatureVerifier verifies signatures on SCTs and STHs with one log key.
// It is safe for concurrent use.
type SignatureVerifier struct {
	key       *KeyDescriptor
	strictDER bool
}

// SignatureVerifierOption configures a SignatureVerifier.
type SignatureVerifierOption func(*SignatureVerifier)

// WithStrictDER makes the verifier reject ECDSA signatures that are not
// canonical DER. By default an INTEGER or SEQUENCE length that overstates
// the bytes available is tolerated.
func WithStrictDER() SignatureVerifierOption {
	return func(s *SignatureVerifier) { s.strictDER = true }
}

// NewSignatureVerifier creates a new SignatureVerifier using the passed in
// PublicKey.
func NewSignatureVerifier(pk crypto.PublicKey, opts ...SignatureVerifierOption) (*SignatureVerifier, error) {
	kd, err := NewKeyDescriptor(pk)
	if err != nil {
		return nil, err
	}
	return kd.Verifier(opts...), nil
}

// Verifier returns a SignatureVerifier for k.
func (k *KeyDescriptor) Verifier(opts ...SignatureVerifierOption) *SignatureVerifier {
	s := &SignatureVerifier{key: k}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the verifier's key.
func (s SignatureVerifier) Key() *KeyDescriptor { return s.key }

// VerifySignature checks that sig is a signature over data by the
// verifier's key. The hash must be SHA-256 and the signature algorithm must
// match the key's family; otherwise an *EncodingError is returned. A
// signature that decodes but does not verify gives a *SignatureError.
func (s SignatureVerifier) VerifySignature(data []byte, sig tls.DigitallySigned) error {
	if sig.Algorithm.Hash != tls.SHA256 {
		return encodingErrorf(nil, "unsupported HashAlgorithm in signature: %v", sig.Algorithm.Hash)
	}
	if want := s.key.algorithm.signatureAlgorithm(); sig.Algorithm.Signature != want {
		return encodingErrorf(nil, "signature algorithm %v does not match %v key", sig.Algorithm.Signature, s.key.algorithm)
	}
	digest := sha256.Sum256(data)

	switch s.key.algorithm {
	case RSAKey:
		if err := rsa.VerifyPKCS1v15(s.key.rsaKey, crypto.SHA256, digest[:], sig.Signature); err != nil {
			return &SignatureError{Msg: "failed to verify RSA signature", Err: err}
		}
	case ECDSAKey:
		r, sv, err := parseECDSASignature(sig.Signature, s.strictDER)
		if err != nil {
			return encodingErrorf(err, "failed to unmarshal ECDSA signature")
		}
		if !ecdsa.Verify(s.key.ecdsaKey, digest[:], r, sv) {
			return &SignatureError{Msg: "failed to verify ECDSA signature"}
		}
	default:
		return &KeyError{Msg: fmt.Sprintf("unsupported key algorithm %v", s.key.algorithm)}
	}
	return nil
}

// VerifyEnvelope decodes a TLS-encoded DigitallySigned and checks it over
// data.
func (s SignatureVerifier) VerifyEnvelope(data, envelope []byte) error {
	ds, err := UnmarshalDigitallySigned(envelope)
	if err != nil {
		return err
	}
	return s.VerifySignature(data, tls.DigitallySigned(*ds))
}

// VerifySCTSignature verifies that the SCT's signature is valid for the
// given LogEntry.
func (s SignatureVerifier) VerifySCTSignature(sct SignedCertificateTimestamp, entry LogEntry) error {
	sctData, err := SerializeSCTSignatureInput(sct, entry)
	if err != nil {
		return err
	}
	return s.VerifySignature(sctData, tls.DigitallySigned(sct.Signature))
}

// VerifySTHSignature verifies that the STH's signature is valid.
func (s SignatureVerifier) VerifySTHSignature(sth SignedTreeHead) error {
	sthData, err := SerializeSTHSignatureInput(sth)
	if err != nil {
		return err
	}
	return s.VerifyEnvelope(sthData, sth.TreeHeadSignature)
}
