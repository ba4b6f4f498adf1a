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

package x509util

import (
	"bytes"
	"crypto/sha256"
	"encoding/pem"

	"k8s.io/klog/v2"
)

// IssuerPool is a set of known issuer certificates, used to complete a
// chain that was supplied without all of its issuers.
type IssuerPool struct {
	// maps from sha-256 to certificate, used for dup detection
	fingerprintToCertMap map[[sha256.Size]byte]*Certificate
	bySubject            map[string][]*Certificate
}

// NewIssuerPool creates a new, empty, instance of IssuerPool.
func NewIssuerPool() *IssuerPool {
	return &IssuerPool{
		fingerprintToCertMap: make(map[[sha256.Size]byte]*Certificate),
		bySubject:            make(map[string][]*Certificate),
	}
}

// AddCert adds a certificate to the pool if it is not already there.
func (p *IssuerPool) AddCert(cert *Certificate) {
	fingerprint := sha256.Sum256(cert.Raw())
	if _, ok := p.fingerprintToCertMap[fingerprint]; ok {
		return
	}
	p.fingerprintToCertMap[fingerprint] = cert
	subject := string(cert.cert.RawSubject)
	p.bySubject[subject] = append(p.bySubject[subject], cert)
}

// Included indicates whether the given cert is included in the pool.
func (p *IssuerPool) Included(cert *Certificate) bool {
	_, ok := p.fingerprintToCertMap[sha256.Sum256(cert.Raw())]
	return ok
}

// Len returns the number of distinct certificates in the pool.
func (p *IssuerPool) Len() int {
	return len(p.fingerprintToCertMap)
}

// AppendCertsFromPEM adds certs to the pool from a byte slice assumed to
// contain PEM encoded data. Skips over non certificate blocks in the data.
// Returns true if all certificates in the data were parsed and added to the
// pool successfully and at least one certificate was found.
func (p *IssuerPool) AppendCertsFromPEM(pemCerts []byte) (ok bool) {
	for len(pemCerts) > 0 {
		var block *pem.Block
		block, pemCerts = pem.Decode(pemCerts)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
			continue
		}

		cert, err := CertificateFromDER(block.Bytes)
		if err != nil {
			klog.Warningf("Unable to parse certificate in PEM data: %v", err)
			return false
		}

		p.AddCert(cert)
		ok = true
	}

	return ok
}

// FindIssuer returns a certificate from the pool that names cert's issuer as
// its subject and whose key verifies cert's signature.
func (p *IssuerPool) FindIssuer(cert *Certificate) (*Certificate, bool) {
	for _, candidate := range p.bySubject[string(cert.cert.RawIssuer)] {
		if err := cert.cert.CheckSignatureFrom(candidate.cert); err == nil {
			return candidate, true
		}
	}
	return nil, false
}

// CompleteChain appends issuers from the pool to chain until it ends in a
// self-signed certificate or no issuer of its last certificate is known.
func (p *IssuerPool) CompleteChain(chain []*Certificate) []*Certificate {
	if len(chain) == 0 {
		return chain
	}
	out := append([]*Certificate(nil), chain...)
	for len(out) <= len(chain)+len(p.fingerprintToCertMap) {
		last := out[len(out)-1]
		if bytes.Equal(last.cert.RawIssuer, last.cert.RawSubject) {
			break
		}
		issuer, ok := p.FindIssuer(last)
		if !ok {
			break
		}
		out = append(out, issuer)
	}
	return out
}
