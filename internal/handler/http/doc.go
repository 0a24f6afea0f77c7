// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, request metrics and response
// compression are handled here before requests are delegated to the service
// layer. Every service error is translated into the fixed error taxonomy in
// errors_mapper.go.
package http
