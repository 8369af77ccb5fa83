// Package utils provides general-purpose helpers shared by the client and
// the biometric agent: signed challenge tokens, identifier generation, HTTP
// response writing and HTTP client initialization.
package utils
