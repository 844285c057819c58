package interpreter

import (
	"context"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

// UseCase turns one free-form Portuguese sentence into a structured task
// intent. Implementations are deterministic for a fixed clock: the same
// sentence always yields the same intent.
type UseCase interface {
	// ExtractIntent interprets the sentence and assembles the canonical
	// TaskIntent record. It runs the linguistic pipeline, the temporal
	// normalizer and the keyword classifiers exactly once per call.
	ExtractIntent(ctx context.Context, sentence string) (model.TaskIntent, error)
}
