// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, lookup, etc.) and for mapping them to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Lookup outcomes themselves are values (see package github); these types are
// only used where an outcome has to leave the process as an error.
package apperrors
