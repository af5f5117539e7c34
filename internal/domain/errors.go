package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. Callers branch on
// kind with errors.Is.

var (
	// Practice errors
	ErrUnknownPractice = errors.New("practice not found in catalog")

	// Quiz errors
	ErrNoActiveQuiz = errors.New("no quiz session is active")
	ErrQuizComplete = errors.New("quiz session has answered all questions")

	// Persistence errors. Read-side corruption is absorbed by the progress
	// store (it falls back to defaults); only write failures surface.
	ErrPersistenceWrite = errors.New("failed to write progress record")
)
