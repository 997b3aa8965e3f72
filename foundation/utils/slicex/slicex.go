// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers used by the text toolkit: functional
//              transformation, reversal, repetition and joining. Inputs are
//              never modified; results are fresh slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers used by textx and the CLI

package slicex

import (
	"fmt"
	"strings"
)

// ===============================
// Transformation
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// ===============================
// Manipulation
// ===============================

// Reverse returns a new slice with elements in reverse order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// Repeat creates a slice with the element repeated n times
func Repeat[T any](element T, n int) []T {
	if n <= 0 {
		return nil
	}

	result := make([]T, n)
	for i := range result {
		result[i] = element
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Take returns a copy of the first n elements
func Take[T any](slice []T, n int) []T {
	if slice == nil || n <= 0 {
		return nil
	}
	if n >= len(slice) {
		return Clone(slice)
	}
	return Clone(slice[:n])
}

// ===============================
// Search
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// ===============================
// Conversion
// ===============================

// Join converts elements to strings with %v and joins them with separator
func Join[T any](slice []T, separator string) string {
	var sb strings.Builder
	for i, item := range slice {
		if i > 0 {
			sb.WriteString(separator)
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	return sb.String()
}
