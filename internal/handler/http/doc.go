// Package http implements the HTTP transport of the development biometric
// agent.
//
// It exposes route wiring, request handlers and middleware. Request tracing
// and access logging are handled here before requests reach the agent.
package http
