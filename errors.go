package obsidian2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Guarding invariant violations. Both abort the conversion.
	ErrPlaceholderCollision = errors.New("document contains the placeholder sentinel characters")
	ErrDanglingPlaceholder  = errors.New("placeholder token missing from buffer")

	// Options validation errors.
	ErrInvalidIndentWidth = errors.New("invalid indent width")

	// ErrImageNotFound is reported per image by the materializer when no
	// candidate directory holds the file. Warning-level: conversion output
	// is still produced.
	ErrImageNotFound = errors.New("image file not found")
)
