package repository

import "github.com/rowanlane/deckview/internal/repoerr"

// The canonical sentinels live in repoerr so the domain services can match
// on them without pulling in this package. These aliases keep the
// repository-side spelling for implementations and tests.
var (
	ErrNotFound     = repoerr.ErrNotFound
	ErrInvalidInput = repoerr.ErrInvalidInput
)
