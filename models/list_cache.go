package models

import (
	"encoding/json"
	"time"
)

// CachedListItem is a remote list row mirrored in the local store.
type CachedListItem struct {
	ListKey     string          `json:"list_key"`
	ItemID      string          `json:"item_id"`
	Data        json.RawMessage `json:"data"`
	CachedAt    time.Time       `json:"cached_at"`
	CacheExpiry time.Time       `json:"cache_expiry"`
}

// IsValid reports whether the row may still be served at now.
func (c CachedListItem) IsValid(now time.Time) bool {
	return now.Before(c.CacheExpiry)
}

// ListState is the stage of a list fetch.
type ListState int

const (
	ListLoading ListState = iota
	ListSuccess
	ListError
)

func (s ListState) String() string {
	switch s {
	case ListLoading:
		return "loading"
	case ListSuccess:
		return "success"
	case ListError:
		return "error"
	default:
		return "unknown"
	}
}

// ListResult is one emission of a list fetch. For [ListError] Items holds the
// last valid cached snapshot so callers can degrade instead of showing nothing.
type ListResult struct {
	State   ListState
	Items   []CachedListItem
	Err     error
	Message string
}
