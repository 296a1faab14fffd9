package ports

import "context"

// FlashKind distinguishes the styling of a one-shot notice.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot message surfaced on the next rendered page and then
// discarded.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// FlashStore holds flash notices between a redirect and the next render,
// keyed by a per-browser flash id.
type FlashStore interface {
	Push(ctx context.Context, id string, flash Flash) error
	Pop(ctx context.Context, id string) ([]Flash, error)
}
