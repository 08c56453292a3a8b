package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
)

// authKeyPrefix namespaces session records inside the KV store.
const authKeyPrefix = "auth:"

// gcInterval is how often the value-log GC runs.
const gcInterval = 10 * time.Minute

// BadgerStore is the Badger-backed datasource.
type BadgerStore struct {
	db  *badger.DB
	log logger.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewBadgerStore opens (or creates) a Badger datasource in dir.
func NewBadgerStore(dir string, log logger.Logger) (*BadgerStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if log == nil {
		log = logger.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{log: log}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	s := &BadgerStore{
		db:     db,
		log:    log,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	go s.gcLoop()

	log.Info("badger datasource opened", "dir", dir)
	return s, nil
}

func authKey(key domain.Key) []byte {
	return []byte(authKeyPrefix + key.String())
}

// GetAuth retrieves the stored record for a key.
func (s *BadgerStore) GetAuth(_ context.Context, key domain.Key) (*domain.PlayerAuth, error) {
	var auth domain.PlayerAuth

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(authKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &auth)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrAuthNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	return &auth, nil
}

// SaveAuth stores the record under its own key.
func (s *BadgerStore) SaveAuth(_ context.Context, auth *domain.PlayerAuth) error {
	if err := auth.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(auth)
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(authKey(auth.Key), data)
	})
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// UpdateLastSeen bumps the stored record's last-seen timestamp.
func (s *BadgerStore) UpdateLastSeen(ctx context.Context, key domain.Key) error {
	return s.mutate(ctx, key, func(auth *domain.PlayerAuth) {
		auth.Touch()
	})
}

// SetUnlogged marks the stored record as no longer logged in.
func (s *BadgerStore) SetUnlogged(ctx context.Context, key domain.Key) error {
	return s.mutate(ctx, key, func(auth *domain.PlayerAuth) {
		auth.LoggedIn = false
		auth.Version++
	})
}

// mutate applies fn to the stored record in one transaction.
// Missing records are a no-op.
func (s *BadgerStore) mutate(_ context.Context, key domain.Key, fn func(*domain.PlayerAuth)) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(authKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		var auth domain.PlayerAuth
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &auth)
		}); err != nil {
			return err
		}

		fn(&auth)

		data, err := json.Marshal(&auth)
		if err != nil {
			return err
		}
		return txn.Set(authKey(key), data)
	})
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// Close stops the GC loop and closes the database.
func (s *BadgerStore) Close() error {
	close(s.stopCh)
	<-s.doneCh

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("badger: close db: %w", err)
	}
	s.log.Info("badger datasource closed")
	return nil
}

// gcLoop periodically reclaims value-log space.
func (s *BadgerStore) gcLoop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// RunValueLogGC returns ErrNoRewrite when nothing was
			// reclaimed; loop until that happens.
			for {
				if err := s.db.RunValueLogGC(0.5); err != nil {
					break
				}
			}
		case <-s.stopCh:
			return
		}
	}
}

var _ DataSource = (*BadgerStore)(nil)

// badgerLogger adapts the operator log sink to badger.Logger.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf("badger: "+format, args...))
}
