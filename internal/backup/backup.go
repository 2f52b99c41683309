// Package backup exports the shop's data as a gzipped JSON archive and keeps
// only the most recent archives in storage.
package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/icecream-api/internal/domain"
	"github.com/vietanh2810/icecream-api/internal/storage"
)

const (
	keyExtension = ".json.gz"
	timeLayout   = "20060102T150405Z"
)

type FlavourLister interface {
	List(ctx context.Context) ([]domain.Flavour, error)
}

type PersonLister interface {
	List(ctx context.Context) ([]domain.Person, error)
}

type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	Delete(ctx context.Context, key string) error
}

type Snapshot struct {
	TakenAt  time.Time        `json:"taken_at"`
	Flavours []domain.Flavour `json:"flavours"`
	Persons  []domain.Person  `json:"persons"`
}

type Runner struct {
	flavours FlavourLister
	persons  PersonLister
	store    Store
	prefix   string
	keep     int

	now   func() time.Time
	newID func() string
}

func NewRunner(flavours FlavourLister, persons PersonLister, store Store, prefix string, keep int) *Runner {
	return &Runner{
		flavours: flavours,
		persons:  persons,
		store:    store,
		prefix:   prefix,
		keep:     keep,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Run uploads a fresh archive and then rotates old ones. It returns the key
// of the new archive.
func (r *Runner) Run(ctx context.Context) (string, error) {
	snapshot, err := r.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	data, err := Encode(snapshot)
	if err != nil {
		return "", fmt.Errorf("Encode -> %w", err)
	}

	key := r.key(snapshot.TakenAt)
	if err = r.store.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("r.store.Put -> %w", err)
	}
	zap.L().Info("backup uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(data)),
		zap.Int("flavours", len(snapshot.Flavours)),
		zap.Int("persons", len(snapshot.Persons)))

	if _, err = r.Rotate(ctx); err != nil {
		return key, fmt.Errorf("r.Rotate -> %w", err)
	}

	return key, nil
}

func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	flavours, err := r.flavours.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("r.flavours.List -> %w", err)
	}

	persons, err := r.persons.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("r.persons.List -> %w", err)
	}

	return Snapshot{
		TakenAt:  r.now().UTC(),
		Flavours: flavours,
		Persons:  persons,
	}, nil
}

// Rotate deletes all but the newest keep archives and returns the deleted
// keys. A failed delete is logged and the rest still go.
func (r *Runner) Rotate(ctx context.Context) ([]string, error) {
	objects, err := r.store.List(ctx, r.prefix)
	if err != nil {
		return nil, fmt.Errorf("r.store.List -> %w", err)
	}

	archives := objects[:0]
	for _, obj := range objects {
		if strings.HasSuffix(obj.Key, keyExtension) {
			archives = append(archives, obj)
		}
	}
	if len(archives) <= r.keep {
		return nil, nil
	}

	// Keys embed the UTC time, so they break ties between equal LastModified.
	sort.Slice(archives, func(i, j int) bool {
		if !archives[i].LastModified.Equal(archives[j].LastModified) {
			return archives[i].LastModified.After(archives[j].LastModified)
		}
		return archives[i].Key > archives[j].Key
	})

	var deleted []string
	for _, obj := range archives[r.keep:] {
		if err := r.store.Delete(ctx, obj.Key); err != nil {
			zap.L().Error("failed to delete old backup", zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		zap.L().Info("old backup deleted", zap.String("key", obj.Key))
		deleted = append(deleted, obj.Key)
	}

	return deleted, nil
}

func (r *Runner) key(at time.Time) string {
	return r.prefix + at.UTC().Format(timeLayout) + "-" + r.newID() + keyExtension
}

func Encode(snapshot Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(snapshot); err != nil {
		return nil, fmt.Errorf("json.Encode -> %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zw.Close -> %w", err)
	}

	return buf.Bytes(), nil
}

func Decode(r io.Reader) (Snapshot, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("gzip.NewReader -> %w", err)
	}
	defer zr.Close()

	var snapshot Snapshot
	if err = json.NewDecoder(zr).Decode(&snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return snapshot, nil
}
