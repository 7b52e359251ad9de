// Package store persists every mutable entity as an independent JSON
// document in durable local storage, one document per namespaced key.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ycwu/lifedash/pkg/logger"
)

// Namespaced document keys. Each key holds exactly one JSON document.
const (
	KeyTasks      = "cc-tasks"
	KeyProgress   = "cc-progress"
	KeyDailyLogs  = "cc-daily-logs"
	KeyLocation   = "cc-location"
	KeyEvents     = "cc-events"
	KeyCalendarID = "cc-calendar-id"
)

// Persistence is the key-value contract backing every store. Set commits
// durably before returning, so a Get issued afterwards observes the new
// value. Get fails soft: a missing or corrupt document leaves the
// caller-supplied default in place.
type Persistence interface {
	Get(key string, into interface{}) bool
	Set(key string, value interface{}) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Get unmarshals the document at key into into. It returns false, leaving
// into untouched, when the key is absent or the stored bytes do not parse;
// callers keep their default in that case.
func (p *persistence) Get(key string, into interface{}) bool {
	data, err := p.d.Read(key)
	if err != nil {
		return false
	}
	// Unmarshal mutates its target even when it fails partway through a
	// wrong-shape document, so decode into a scratch value and only copy
	// over the default on full success.
	scratch := reflect.New(reflect.TypeOf(into).Elem())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		logger.Log().WithField("key", key).WithError(err).
			Warn("store: corrupt document, using default")
		return false
	}
	reflect.ValueOf(into).Elem().Set(scratch.Elem())
	return true
}

// Set marshals value and writes it through synchronously.
func (p *persistence) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
