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

// Package x509util loads certificates and rebuilds the TBSCertificate a log
// signed for a certificate or precertificate.
package x509util

import (
	"encoding/pem"
	"fmt"

	"github.com/google/certificate-transparency-go/asn1"
	"github.com/google/certificate-transparency-go/x509"
	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
)

// Certificate wraps a parsed X.509 certificate for use by a
// verifier.LogVerifier.
type Certificate struct {
	cert *x509.Certificate
}

var _ verifier.Certificate = (*Certificate)(nil)

// NewCertificate wraps cert.
func NewCertificate(cert *x509.Certificate) *Certificate {
	return &Certificate{cert: cert}
}

// X509 returns the parsed certificate.
func (c *Certificate) X509() *x509.Certificate { return c.cert }

// Raw returns the complete DER certificate.
func (c *Certificate) Raw() []byte { return c.cert.Raw }

// TBSDER returns the DER TBSCertificate.
func (c *Certificate) TBSDER() []byte { return c.cert.RawTBSCertificate }

// SubjectPublicKeyInfo returns the DER SubjectPublicKeyInfo.
func (c *Certificate) SubjectPublicKeyInfo() []byte { return c.cert.RawSubjectPublicKeyInfo }

// RawIssuer returns the DER issuer name.
func (c *Certificate) RawIssuer() []byte { return c.cert.RawIssuer }

// RawSubject returns the DER subject name.
func (c *Certificate) RawSubject() []byte { return c.cert.RawSubject }

// Extension returns the value of the first extension with the given OID.
func (c *Certificate) Extension(oid asn1.ObjectIdentifier) ([]byte, bool) {
	for _, ext := range c.cert.Extensions {
		if ext.Id.Equal(oid) {
			return ext.Value, true
		}
	}
	return nil, false
}

// WithoutExtension returns the TBSCertificate with the extension removed.
// Only the precertificate poison and the embedded SCT list extensions can be
// removed.
func (c *Certificate) WithoutExtension(oid asn1.ObjectIdentifier) ([]byte, error) {
	var (
		tbs []byte
		err error
	)
	switch {
	case oid.Equal(x509.OIDExtensionCTPoison):
		tbs, err = x509.BuildPrecertTBS(c.cert.RawTBSCertificate, nil)
	case oid.Equal(x509.OIDExtensionCTSCT):
		tbs, err = x509.RemoveSCTList(c.cert.RawTBSCertificate)
	default:
		return nil, fmt.Errorf("removing extension %v is not supported: %w", oid, ct.ErrInvalidArgument)
	}
	if err != nil {
		return nil, &ct.EncodingError{Msg: fmt.Sprintf("failed to remove extension %v", oid), Err: err}
	}
	return tbs, nil
}

// WithIssuer returns the TBSCertificate of this precertificate as the log
// signed it, given the precertificate signing certificate that issued it.
// The poison extension is removed, and the issuer and authority key
// identifier are taken from preIssuer.
func (c *Certificate) WithIssuer(preIssuer verifier.Certificate) ([]byte, error) {
	pi, err := asX509(preIssuer)
	if err != nil {
		return nil, err
	}
	tbs, err := x509.BuildPrecertTBS(c.cert.RawTBSCertificate, pi)
	if err != nil {
		return nil, &ct.EncodingError{Msg: "failed to rebuild precertificate TBS", Err: err}
	}
	return tbs, nil
}

// IsPrecertSigningCert reports whether the certificate has the Certificate
// Transparency extended key usage.
func (c *Certificate) IsPrecertSigningCert() bool {
	for _, eku := range c.cert.ExtKeyUsage {
		if eku == x509.ExtKeyUsageCertificateTransparency {
			return true
		}
	}
	return false
}

func asX509(c verifier.Certificate) (*x509.Certificate, error) {
	if xc, ok := c.(*Certificate); ok {
		return xc.cert, nil
	}
	parsed, err := CertificateFromDER(c.Raw())
	if err != nil {
		return nil, err
	}
	return parsed.cert, nil
}

// CertificateFromDER parses a DER certificate. Non-fatal parse errors are
// tolerated.
func CertificateFromDER(der []byte) (*Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if x509.IsFatal(err) {
		return nil, &ct.EncodingError{Msg: "failed to parse certificate", Err: err}
	}
	return &Certificate{cert: cert}, nil
}

// CertificatesFromPEM parses every CERTIFICATE block in data, in order.
// Blocks of other types are skipped. It fails if no certificate is found.
func CertificatesFromPEM(data []byte) ([]*Certificate, error) {
	var certs []*Certificate
	for rest := data; ; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := CertificateFromDER(block.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, &ct.EncodingError{Msg: "no CERTIFICATE block found in PEM data"}
	}
	return certs, nil
}

// CertificateFromPEM parses the first CERTIFICATE block in data.
func CertificateFromPEM(data []byte) (*Certificate, error) {
	certs, err := CertificatesFromPEM(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// Chain converts certs to the form a LogVerifier takes.
func Chain(certs []*Certificate) []verifier.Certificate {
	chain := make([]verifier.Certificate, len(certs))
	for i, c := range certs {
		chain[i] = c
	}
	return chain
}
