package driver

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
)

// Parsed is the memoised outcome of parsing one fragment.
type Parsed struct {
	Token       history.Token
	Diagnostics []diag.Diagnostic
}

// parseCache: LRU по тексту фрагмента; без lru кэш отключён.
type parseCache struct {
	lru *lru.Cache[string, Parsed]
}

func newParseCache(size int) (*parseCache, error) {
	if size <= 0 {
		return &parseCache{}, nil
	}
	c, err := lru.New[string, Parsed](size)
	if err != nil {
		return nil, fmt.Errorf("parse cache: %w", err)
	}
	return &parseCache{lru: c}, nil
}

func (c *parseCache) get(text string) (Parsed, bool) {
	if c.lru == nil {
		return Parsed{}, false
	}
	return c.lru.Get(text)
}

func (c *parseCache) put(text string, p Parsed) {
	if c.lru != nil {
		c.lru.Add(text, p)
	}
}

func (c *parseCache) len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
