// Package store keeps small integer values between runs.
package store

import (
	"sync"
)

// TopScoreKey is where the best score lives.
const TopScoreKey = "snakeTopScore"

// KV is a key-value store of integers. A missing key is not an error.
type KV interface {
	Get(key string) (value int, ok bool, err error)
	Set(key string, value int) error
}

type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

func (m *Memory) Get(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()

	return nil
}

// TopScore stores the best score of a KV under one key.
type TopScore struct {
	KV  KV
	Key string
}

func NewTopScore(kv KV) *TopScore {
	return &TopScore{KV: kv, Key: TopScoreKey}
}

func (t *TopScore) Load() (int, bool, error) {
	return t.KV.Get(t.Key)
}

func (t *TopScore) Save(score int) error {
	return t.KV.Set(t.Key, score)
}
