// Package ffufgen converts a captured raw HTTP request (e.g. from Burp Suite) into a ffuf command line.
// It locates a named parameter in the request's query string, form body, JSON body, headers or cookies,
// and generates a command with the FUZZ marker substituted at that location.
package ffufgen
