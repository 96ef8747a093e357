package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sunwaytravel/tripsearch/logger"
	bolt "go.etcd.io/bbolt"
)

const (
	packagesBucket = "packages"
	toursBucket    = "tours"
)

// Store is the system of record for packages and tours. Records are stored
// JSON-encoded, one bucket per entity type.
type Store struct {
	store  *bolt.DB
	logger logger.Logger
}

func New(logger logger.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("failed to create catalog database directory", "err", err.Error(), "path", path)
		return nil, fmt.Errorf("failed to create catalog database directory: %w", err)
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		logger.Error("failed to open catalog database", "err", err.Error(), "path", path)
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	catalogStore := &Store{
		store:  store,
		logger: logger,
	}

	if err := catalogStore.initBuckets(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return catalogStore, nil
}

func (s *Store) initBuckets() error {
	return s.store.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{packagesBucket, toursBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				s.logger.Error("failed to create bucket", "bucket", bucket, "err", err.Error())
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
}

func (s *Store) PutPackage(pkg Package) error {
	return s.put(packagesBucket, pkg.ID, pkg)
}

func (s *Store) GetPackage(id string) (*Package, error) {
	var pkg Package
	if err := s.get(packagesBucket, id, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *Store) ListPackages() ([]Package, error) {
	var packages []Package
	err := s.list(packagesBucket, func(value []byte) error {
		var pkg Package
		if err := json.Unmarshal(value, &pkg); err != nil {
			return err
		}
		packages = append(packages, pkg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *Store) PutTour(tour Tour) error {
	return s.put(toursBucket, tour.ID, tour)
}

func (s *Store) GetTour(id string) (*Tour, error) {
	var tour Tour
	if err := s.get(toursBucket, id, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (s *Store) ListTours() ([]Tour, error) {
	var tours []Tour
	err := s.list(toursBucket, func(value []byte) error {
		var tour Tour
		if err := json.Unmarshal(value, &tour); err != nil {
			return err
		}
		tours = append(tours, tour)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tours, nil
}

func (s *Store) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func (s *Store) put(bucketName, id string, record any) error {
	if id == "" {
		s.logger.Error("id cannot be empty", "bucket", bucketName)
		return &InvalidIDError{
			ID:     id,
			Reason: "id cannot be empty",
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Error("failed to marshal record", "bucket", bucketName, "id", id, "err", err.Error())
		return fmt.Errorf("failed to marshal record %s: %w", id, err)
	}

	return s.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			s.logger.Error("bucket not found", "bucket", bucketName)
			return fmt.Errorf("bucket not found")
		}

		if err := bucket.Put([]byte(id), data); err != nil {
			s.logger.Error("failed to put record", "bucket", bucketName, "id", id, "err", err.Error())
			return fmt.Errorf("failed to put record %s: %w", id, err)
		}

		return nil
	})
}

func (s *Store) get(bucketName, id string, record any) error {
	if id == "" {
		s.logger.Error("id cannot be empty", "bucket", bucketName)
		return &InvalidIDError{
			ID:     id,
			Reason: "id cannot be empty",
		}
	}

	return s.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			s.logger.Error("bucket not found", "bucket", bucketName)
			return fmt.Errorf("bucket not found")
		}

		value := bucket.Get([]byte(id))
		if value == nil {
			return &NotFoundError{Bucket: bucketName, ID: id}
		}

		if err := json.Unmarshal(value, record); err != nil {
			s.logger.Error("failed to unmarshal record", "bucket", bucketName, "id", id, "err", err.Error())
			return fmt.Errorf("failed to unmarshal record %s: %w", id, err)
		}

		return nil
	})
}

func (s *Store) list(bucketName string, collect func(value []byte) error) error {
	return s.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			s.logger.Error("bucket not found", "bucket", bucketName)
			return fmt.Errorf("bucket not found")
		}

		return bucket.ForEach(func(_, value []byte) error {
			return collect(value)
		})
	})
}
