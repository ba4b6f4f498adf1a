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

package testdata

// Certificates below were built by hand from P-256 keys and checked with
// openssl. None of them carry authority or subject key identifiers.
const (
	// CACertPEM is a self-signed root that issues every test certificate.
	CACertPEM = `-----BEGIN CERTIFICATE-----
MIIBlDCCATqgAwIBAgIBATAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMEkxCzAJBgNV
BAYTAkdCMSEwHwYDVQQKDBhDZXJ0aWZpY2F0ZSBUcmFuc3BhcmVuY3kxFzAVBgNV
BAMMDlRlc3QgVmVyaWZ5IENBMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEsC++
ZO7Zgp/thQWbiA2Eqb9CXmuQhOEOSpnSUl+7PiR7NszJp+uQ9BR1dkE7bgMc6HFF
L9ifYzExo/pDN+GFvKMTMBEwDwYDVR0TAQH/BAUwAwEB/zAKBggqhkjOPQQDAgNI
ADBFAiAky1JVdgorgC/tUPTE1PcgIW1wLnLSOjuy8kBZt8er8QIhAJOyYg/s+iYf
j4Uh+3UR5GqfBBYL/ge678WU58GxW8JJ
-----END CERTIFICATE-----
`

	// PrecertSignerPEM is issued by CACertPEM and carries the Certificate
	// Transparency extended key usage, so it acts as a precertificate signing
	// certificate.
	PrecertSignerPEM = `-----BEGIN CERTIFICATE-----
MIIBuDCCAV2gAwIBAgIBAjAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMFUxCzAJBgNV
BAYTAkdCMSEwHwYDVQQKDBhDZXJ0aWZpY2F0ZSBUcmFuc3BhcmVuY3kxIzAhBgNV
BAMMGlRlc3QgVmVyaWZ5IFByZWNlcnQgU2lnbmVyMFkwEwYHKoZIzj0CAQYIKoZI
zj0DAQcDQgAEy9suI9VgHweRjpKJS6OaDqCclB1FbtFjdk0nrcaBfvT6vIZt/l9F
awj1kKLcrE2GIrt3f9XUtdMc1Wvi97hMFaMqMCgwDwYDVR0TAQH/BAUwAwEB/zAV
BgNVHSUEDjAMBgorBgEEAdZ5AgQEMAoGCCqGSM49BAMCA0kAMEYCIQCAbSjv3wm7
u7l985PyrcHkfiHmbIjPrjq3VSpqZsNdVwIhAMlESZ9ZuOj3xgpe9emFDc8y5za4
ur/vCAhhkJm4/F/I
-----END CERTIFICATE-----
`

	// TestCertPEM is an ordinary leaf issued by CACertPEM.
	TestCertPEM = `-----BEGIN CERTIFICATE-----
MIIBgzCCASmgAwIBAgIBAzAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajDTALMAkGA1UdEwQCMAAwCgYIKoZIzj0EAwIDSAAwRQIgWIqWEtNjbtwawDOH
HQf0v52LZ7QjWihMvd6cQM773j0CIQDeQBNFnhkScn+jO7zLpxo8ceL9+itSpzUb
4yEna8elOQ==
-----END CERTIFICATE-----
`

	// TestPrecertPEM is a precertificate (carrying the CT poison extension)
	// issued directly by CACertPEM.
	TestPrecertPEM = `-----BEGIN CERTIFICATE-----
MIIBmTCCAT6gAwIBAgIBBDAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajIjAgMAkGA1UdEwQCMAAwEwYKKwYBBAHWeQIEAwEB/wQCBQAwCgYIKoZIzj0E
AwIDSQAwRgIhAORygT4fC4sn1AhQ7vIP8rigGRkVbXcUCGNgr1ymoxTzAiEAkoff
9xjz78N/d1yOpZq+XMbWaSeki0SsiSQtqpv1JEM=
-----END CERTIFICATE-----
`

	// TestPrecertViaSignerPEM is a precertificate issued by PrecertSignerPEM.
	TestPrecertViaSignerPEM = `-----BEGIN CERTIFICATE-----
MIIBpDCCAUqgAwIBAgIBBTAKBggqhkjOPQQDAjBVMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MSMwIQYDVQQDDBpUZXN0IFZl
cmlmeSBQcmVjZXJ0IFNpZ25lcjAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAw
MDBaMD4xCzAJBgNVBAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UE
AwwQbGVhZi5leGFtcGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGu
UGJF9X0hc2SwFNIcdf+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMw
WkjWAY+BD+QGaBM/fBajIjAgMAkGA1UdEwQCMAAwEwYKKwYBBAHWeQIEAwEB/wQC
BQAwCgYIKoZIzj0EAwIDSAAwRQIgXKKR1dqYXCaG5uJXWr3oo9ujYwy0NE6O8zF5
797IreoCIQCTas0eK7xoL/HtIurOtWL/aD2wcvL2mZFgEAYOQLALDQ==
-----END CERTIFICATE-----
`

	// TestEmbeddedCertPEMEC is the final certificate for TestPrecertPEM, with
	// TestPrecertSCTEC embedded.
	TestEmbeddedCertPEMEC = `-----BEGIN CERTIFICATE-----
MIICFDCCAbmgAwIBAgIBBDAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajgZwwgZkwCQYDVR0TBAIwADCBiwYKKwYBBAHWeQIEAgR9BHsAeQB3ALadh54/
LEQCVW3Novay4C/2tt9HicUwAOFPSxJa6EeqAAABlkoa6nsAAAQDAEgwRgIhALtm
l0Enby7Jrhsqwk1c1bmHfCrm+TQA5cZTPpj0Ra4+AiEAmEpWrzK4ORvXkbxxldJv
kw8MwKBiAd5LqvnP5GNYO0AwCgYIKoZIzj0EAwIDSQAwRgIhAMF9JqpzC3IivK72
mbdyqhQtCJqDAycZdBAgU3P4QYHWAiEAqGuqMgmRPOC11yx1vbNNbQFwf3qU35E/
rL8WYvqujNo=
-----END CERTIFICATE-----
`

	// TestInvalidEmbeddedCertPEMEC embeds TestInvalidEmbeddedSCTEC.
	TestInvalidEmbeddedCertPEMEC = `-----BEGIN CERTIFICATE-----
MIICEjCCAbigAwIBAgIBBDAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajgZswgZgwCQYDVR0TBAIwADCBigYKKwYBBAHWeQIEAgR8BHoAeAB2ALadh54/
LEQCVW3Novay4C/2tt9HicUwAOFPSxJa6EeqAAABlkoa6nwAAAQDAEcwRQIgSVt9
+AOO6TLT76WwIcuv2IMhTThtCgaaw0Vz+iINl6ECIQCFK59dd/Gze7z9GZfv+154
DVtkHzra0CwhFc/Nr7JE+jAKBggqhkjOPQQDAgNIADBFAiEAz/mq3CD3n0CWD3qv
KXRXkjDZcuftFYLFPOz82ATyiy4CIEWRmyHdjKri2FIrrOpd39CLyNu8EurB4Myj
+i+gJAXx
-----END CERTIFICATE-----
`

	// TestEmbeddedCertViaSignerPEMEC is the final certificate for
	// TestPrecertViaSignerPEM, with TestPrecertViaSignerSCTEC embedded.
	TestEmbeddedCertViaSignerPEMEC = `-----BEGIN CERTIFICATE-----
MIICETCCAbigAwIBAgIBBTAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajgZswgZgwCQYDVR0TBAIwADCBigYKKwYBBAHWeQIEAgR8BHoAeAB2ALadh54/
LEQCVW3Novay4C/2tt9HicUwAOFPSxJa6EeqAAABlkoa6nsAAAQDAEcwRQIhAL98
F7ZvwKqw0091M2k6WZQ2c9RDz2IReLohOs3kSQMVAiAVVo02PT4HcjH0TnUoNvbr
tNAF561mPIsx0R/vnt1g+jAKBggqhkjOPQQDAgNHADBEAiBi3DKaKRiOcb64Fjy8
LEG3eF6Bg0dw0tnPE7TU6sq+OgIgSzYWDDsqAGmJE5d+U5xDwc86yFwSIabvdnmA
UW33lig=
-----END CERTIFICATE-----
`

	// TestEmbeddedCertPEMRSA is the final certificate for TestPrecertPEM, with
	// TestPrecertSCTRSA embedded.
	TestEmbeddedCertPEMRSA = `-----BEGIN CERTIFICATE-----
MIIC0zCCAnigAwIBAgIBBDAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajggFaMIIBVjAJBgNVHRMEAjAAMIIBRwYKKwYBBAHWeQIEAgSCATcEggEzATEB
LwDLcEFIag+qahgOaqA4PneJ1/OR6gAWoI5mzaAYoB7WdwAAAZZKGuvIAAAEAQEA
f34zbn8pwCG0BLosqA1JeJgcpbph2V/LkswEUPH4Nn+CNWBqUe112vxRW3O6/2lN
ZxgfiDMOor6MzuUIxIXzCAZ3X9AW3cq560BzhNtmgkhaIatc4kjAkxbRJ1DFClwq
gRyQBySzMiQawJdE3Y71kNyOn72yFnMcc8+x8/AurNtDf/K3/D3mlYPtj++CW3Ja
51m2HCWzI43qm99tY5RkTwoxCSlDcdxEMqN+fQgVtx+DNZj9uIK5th335ewUouuh
2I+V3HU0KuVlVfb2n/0YOSgZz9FyGvYmsLn2hNcaADD+LVErXWphv2E5o62B4L1F
tGytxZ3pcgaiQzFjbg/BxTAKBggqhkjOPQQDAgNJADBGAiEAqabuxTdV9AQ4SVgz
aI3JSFiqN9Kj7HXgUaDnD+jY+XwCIQDIhvfeTgsprdYDNcDW1eamQsizvS0l0hah
qs5I+WId8A==
-----END CERTIFICATE-----
`

	// TestInvalidEmbeddedCertPEMRSA embeds TestInvalidEmbeddedSCTRSA.
	TestInvalidEmbeddedCertPEMRSA = `-----BEGIN CERTIFICATE-----
MIIC0jCCAnigAwIBAgIBBDAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajggFaMIIBVjAJBgNVHRMEAjAAMIIBRwYKKwYBBAHWeQIEAgSCATcEggEzATEB
LwDLcEFIag+qahgOaqA4PneJ1/OR6gAWoI5mzaAYoB7WdwAAAZZKGuvJAAAEAQEA
f34zbn8pwCG0BLosqA1JeJgcpbph2V/LkswEUPH4Nn+CNWBqUe112vxRW3O6/2lN
ZxgfiDMOor6MzuUIxIXzCAZ3X9AW3cq560BzhNtmgkhaIatc4kjAkxbRJ1DFClwq
gRyQBySzMiQawJdE3Y71kNyOn72yFnMcc8+x8/AurNtDf/K3/D3mlYPtj++CW3Ja
51m2HCWzI43qm99tY5RkTwoxCSlDcdxEMqN+fQgVtx+DNZj9uIK5th335ewUouuh
2I+V3HU0KuVlVfb2n/0YOSgZz9FyGvYmsLn2hNcaADD+LVErXWphv2E5o62B4L1F
tGytxZ3pcgaiQzFjbg/BxTAKBggqhkjOPQQDAgNIADBFAiA8B5UUYQoaGCAe6pP8
H/ZaihCH2ao2g3/2Ebnoa1j4iwIhAI3NFCB7n2HF0IgBBrmbZ0qAIqIN2YMsVvKO
VZnn4uXr
-----END CERTIFICATE-----
`

	// TestEmbeddedCertViaSignerPEMRSA is the final certificate for
	// TestPrecertViaSignerPEM, with TestPrecertViaSignerSCTRSA embedded.
	TestEmbeddedCertViaSignerPEMRSA = `-----BEGIN CERTIFICATE-----
MIIC0zCCAnigAwIBAgIBBTAKBggqhkjOPQQDAjBJMQswCQYDVQQGEwJHQjEhMB8G
A1UECgwYQ2VydGlmaWNhdGUgVHJhbnNwYXJlbmN5MRcwFQYDVQQDDA5UZXN0IFZl
cmlmeSBDQTAeFw0yNTAxMDEwMDAwMDBaFw0zNTAxMDEwMDAwMDBaMD4xCzAJBgNV
BAYTAkdCMRQwEgYDVQQKDAtFeGFtcGxlIEx0ZDEZMBcGA1UEAwwQbGVhZi5leGFt
cGxlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABFGuUGJF9X0hc2SwFNIc
df+HHly+UkBjieYS+HwXpuXqULzACXRCxOnmbL5cMNihPeMwWkjWAY+BD+QGaBM/
fBajggFaMIIBVjAJBgNVHRMEAjAAMIIBRwYKKwYBBAHWeQIEAgSCATcEggEzATEB
LwDLcEFIag+qahgOaqA4PneJ1/OR6gAWoI5mzaAYoB7WdwAAAZZKGuvIAAAEAQEA
dd06dQCFQt1JXl/kjAsBqL3FVZHJOwnqovGQpKNY6gQ3KxYDU2frSG1huSRFNw7g
DpwuJzdBEEJRRGCkZ4y1EN4JdaGzNocguhrdfch2fJxP+gAGaPEbxDqI3ObA3PdA
BFQvMpIi/vSjBB4MeAoNaNtVCuIWb/6CLZMfN2Y8Nb+ZC2VqZTbjMHTksD1XNa1r
5HIrtn0gzamq+FlJKBAfWClroy8NIye+lyb2CFg4YEEAAwCfDtQ8rUk8wXbdB9A1
hlsTD880zd9rjkYbmJo+srasEUZUv32zYq7Pt/mSd+3vdhqJazCVRAHa6XwKlMXy
9g1zrFKuqW9TylW8wBOsqDAKBggqhkjOPQQDAgNJADBGAiEArhU26Nf/JVfp0EtG
eu3GLGxVlDHL05dgOY7yMrYHjg0CIQCn1e/QZGixy4I+DREN2F3GzIFMMau7jHQi
askQR3QG5Q==
-----END CERTIFICATE-----
`
)
