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

// Package server exposes LogVerifiers for a set of named logs over HTTP.
// Every verification endpoint takes a JSON POST body and answers 200 with
// a VerifyResponse whether or not the input verified; 4xx codes are kept
// for requests that could not be understood.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	ct "github.com/google/ctverify"
	"github.com/google/ctverify/verifier"
	"github.com/google/ctverify/x509util"
	"github.com/gorilla/mux"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
	"k8s.io/klog/v2"
)

// maxRequestBodyBytes bounds the size of a request body.
const maxRequestBodyBytes int64 = 1 << 20

// Options configures a Server.
type Options struct {
	// Logs maps log names, as used in request paths, to their verifiers.
	Logs map[string]*verifier.LogVerifier
	// RequestsPerSecond and Burst set a global rate limit. A zero rate
	// disables it.
	RequestsPerSecond float64
	Burst             int
	// CacheSize and CacheTTL configure the embedded SCT result cache. A zero
	// size disables it.
	CacheSize int
	CacheTTL  time.Duration
	// CORSOrigins lists the origins allowed to make cross-origin requests.
	CORSOrigins []string
	// Gatherer, if set, is served at HTTPMetrics.
	Gatherer prometheus.Gatherer
}

// Server is the core handler implementation of the verification service.
type Server struct {
	logs     map[string]*verifier.LogVerifier
	limiter  *rate.Limiter
	cache    *expirable.LRU[string, *VerifyEmbeddedSCTsResponse]
	origins  []string
	gatherer prometheus.Gatherer
}

// New creates a new server.
func New(opts Options) *Server {
	s := &Server{
		logs:     opts.Logs,
		origins:  opts.CORSOrigins,
		gatherer: opts.Gatherer,
	}
	if opts.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst)
	}
	if opts.CacheSize > 0 {
		s.cache = expirable.NewLRU[string, *VerifyEmbeddedSCTsResponse](opts.CacheSize, nil, opts.CacheTTL)
	}
	return s
}

// RegisterHandlers registers HTTP handlers for the verification endpoints.
func (s *Server) RegisterHandlers(r *mux.Router) {
	logStr := "{log}"
	r.HandleFunc(HTTPGetLogs, s.getLogs).Methods(http.MethodGet)
	r.HandleFunc(fmt.Sprintf(HTTPVerifySTH, logStr), s.verifySTH).Methods(http.MethodPost)
	r.HandleFunc(fmt.Sprintf(HTTPVerifySCT, logStr), s.verifySCT).Methods(http.MethodPost)
	r.HandleFunc(fmt.Sprintf(HTTPVerifyEmbeddedSCTs, logStr), s.verifyEmbeddedSCTs).Methods(http.MethodPost)
	r.HandleFunc(fmt.Sprintf(HTTPCheckConsistency, logStr), s.checkConsistency).Methods(http.MethodPost)
	if s.gatherer != nil {
		r.Handle(HTTPMetrics, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
}

// Handler returns the full handler chain: request logging, rate limiting
// and CORS around the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterHandlers(r)
	var h http.Handler = r
	if len(s.origins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}).Handler(h)
	}
	h = s.rateLimit(h)
	return logRequests(h)
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	e := make(chan error, 1)
	go func() {
		e <- hServer.ListenAndServe()
		close(e)
	}()
	klog.Infof("Serving on %s", addr)
	select {
	case err := <-e:
		return err
	case <-ctx.Done():
	}
	klog.Info("Server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := hServer.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-e; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// getLogs returns the names of all logs the server knows.
func (s *Server) getLogs(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.logs))
	for name := range s.logs {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, names)
}

// verifySTH handles requests to verify a tree head signature.
func (s *Server) verifySTH(w http.ResponseWriter, r *http.Request) {
	v, ok := s.logFor(w, r)
	if !ok {
		return
	}
	var req VerifySTHRequest
	if !readJSON(w, r, &req) {
		return
	}
	writeJSON(w, outcome(v.VerifySTH(&req.STH)))
}

// verifySCT handles requests to verify an SCT against a chain.
func (s *Server) verifySCT(w http.ResponseWriter, r *http.Request) {
	v, ok := s.logFor(w, r)
	if !ok {
		return
	}
	var req VerifySCTRequest
	if !readJSON(w, r, &req) {
		return
	}
	if (len(req.SCT) == 0) == (req.AddChainResponse == nil) {
		http.Error(w, "exactly one of sct and add_chain_response must be set", http.StatusBadRequest)
		return
	}

	var (
		sct *ct.SignedCertificateTimestamp
		err error
	)
	if req.AddChainResponse != nil {
		sct, err = req.AddChainResponse.ToSignedCertificateTimestamp()
	} else {
		sct, err = ct.UnmarshalSCT(req.SCT)
	}
	if err != nil {
		writeJSON(w, outcome(err))
		return
	}
	chain, err := parseChain(req.Chain)
	if err != nil {
		writeJSON(w, outcome(err))
		return
	}
	rsp := outcome(v.VerifySCT(sct, chain))
	matches := sct.LogID == v.Key().LogID()
	rsp.LogIDMatches = &matches
	writeJSON(w, rsp)
}

// verifyEmbeddedSCTs handles requests to verify the SCTs embedded in a
// certificate.
func (s *Server) verifyEmbeddedSCTs(w http.ResponseWriter, r *http.Request) {
	v, ok := s.logFor(w, r)
	if !ok {
		return
	}
	var req VerifyEmbeddedSCTsRequest
	if !readJSON(w, r, &req) {
		return
	}
	key := cacheKey(mux.Vars(r)["log"], req.Chain)
	if s.cache != nil {
		if rsp, ok := s.cache.Get(key); ok {
			writeJSON(w, rsp)
			return
		}
	}

	rsp := &VerifyEmbeddedSCTsResponse{SCTs: []EmbeddedSCTResult{}}
	chain, err := parseChain(req.Chain)
	if err != nil {
		rsp.VerifyResponse = outcome(err)
		writeJSON(w, rsp)
		return
	}
	results, err := v.VerifyEmbeddedSCTs(chain)
	rsp.VerifyResponse = outcome(err)
	if err == nil {
		rsp.Valid = len(results) > 0
		for _, res := range results {
			rsp.SCTs = append(rsp.SCTs, EmbeddedSCTResult{
				LogID:        res.SCT.LogID.String(),
				Timestamp:    res.SCT.Timestamp,
				Valid:        res.Valid,
				LogIDMatches: res.SCT.LogID == v.Key().LogID(),
			})
			rsp.Valid = rsp.Valid && res.Valid
		}
	}
	if s.cache != nil && rsp.ErrorKind != "internal" {
		s.cache.Add(key, rsp)
	}
	writeJSON(w, rsp)
}

// checkConsistency handles requests to check two tree heads and the proof
// between them.
func (s *Server) checkConsistency(w http.ResponseWriter, r *http.Request) {
	v, ok := s.logFor(w, r)
	if !ok {
		return
	}
	var req CheckConsistencyRequest
	if !readJSON(w, r, &req) {
		return
	}
	valid, err := v.CheckConsistency(&req.OldSTH, &req.NewSTH, req.Proof)
	rsp := outcome(err)
	rsp.Valid = err == nil && valid
	writeJSON(w, rsp)
}

// logFor returns the verifier named in the request path, or writes a 404.
func (s *Server) logFor(w http.ResponseWriter, r *http.Request) (*verifier.LogVerifier, bool) {
	name := mux.Vars(r)["log"]
	v, ok := s.logs[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown log %q", name), http.StatusNotFound)
		return nil, false
	}
	return v, true
}

func parseChain(ders [][]byte) ([]verifier.Certificate, error) {
	chain := make([]verifier.Certificate, 0, len(ders))
	for i, der := range ders {
		c, err := x509util.CertificateFromDER(der)
		if err != nil {
			return nil, fmt.Errorf("chain[%d]: %w", i, err)
		}
		chain = append(chain, c)
	}
	return chain, nil
}

// cacheKey identifies a log and chain; each certificate is length prefixed
// so that different splits of the same bytes do not collide.
func cacheKey(log string, chain [][]byte) string {
	h := sha256.New()
	for _, der := range chain {
		var l [4]byte
		l[0], l[1], l[2], l[3] = byte(len(der)>>24), byte(len(der)>>16), byte(len(der)>>8), byte(len(der))
		h.Write(l[:])
		h.Write(der)
	}
	return fmt.Sprintf("%s/%x", log, h.Sum(nil))
}

func outcome(err error) VerifyResponse {
	if err != nil {
		return VerifyResponse{ErrorKind: ct.ErrorKind(err), Error: err.Error()}
	}
	return VerifyResponse{Valid: true}
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, fmt.Sprintf("cannot read request body: %v", err), http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, fmt.Sprintf("cannot parse request body as proper JSON struct: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to convert response to JSON: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
