// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/conf"
)

// HTTP round tripper that logs each request to the openstack apis.
type loggingTransport struct {
	T http.RoundTripper
}

// RoundTrip logs the request URL and the outcome of the request.
func (lt *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := lt.T.RoundTrip(req)
	if err != nil {
		slog.Debug("http request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, err
	}
	slog.Debug(
		"http request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

// Create a new HTTP client with the given SSO configuration
// and logging for each request.
func NewHTTPClient(conf conf.SSOConfig) (*http.Client, error) {
	if conf.Cert == "" {
		// Disable SSO if no certificate is provided.
		slog.Debug("making http requests without SSO")
		return &http.Client{Transport: &loggingTransport{T: &http.Transport{}}}, nil
	}
	// If we have a public key, we also need a private key.
	if conf.CertKey == "" {
		return nil, errors.New("missing cert key for SSO")
	}
	cert, err := tls.X509KeyPair(
		[]byte(conf.Cert),
		[]byte(conf.CertKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}
	caCertPool := x509.NewCertPool()
	caCertPool.AddCert(cert.Leaf)
	return &http.Client{Transport: &loggingTransport{T: &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      caCertPool,
			// If the cert is self signed, skip verification.
			//nolint:gosec
			InsecureSkipVerify: conf.SelfSigned,
		},
	}}}, nil
}
