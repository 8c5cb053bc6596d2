package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/worklane/worklane-cli/internal/client/storage"
	"github.com/worklane/worklane-cli/pkg/api"
)

var (
	keyAccessToken = []byte("access_token")
	keyUser        = []byte("user")
)

// Compile-time check that Storage implements CredentialStore
var _ storage.CredentialStore = (*Storage)(nil)

// SaveToken stores the access token, leaving any user snapshot in place.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}
		if err := bucket.Put(keyAccessToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
		return nil
	})
}

// Token retrieves the stored access token
func (s *Storage) Token(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(keyAccessToken)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// SaveSession stores the access token and the user snapshot in one transaction.
func (s *Storage) SaveSession(ctx context.Context, token string, user *api.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		snapshot, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user snapshot: %w", err)
		}

		if err := bucket.Put(keyAccessToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
		if err := bucket.Put(keyUser, snapshot); err != nil {
			return fmt.Errorf("failed to save user snapshot: %w", err)
		}

		return nil
	})
}

// SaveUser replaces the cached user snapshot, leaving the token in place.
func (s *Storage) SaveUser(ctx context.Context, user *api.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		snapshot, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user snapshot: %w", err)
		}

		if err := bucket.Put(keyUser, snapshot); err != nil {
			return fmt.Errorf("failed to save user snapshot: %w", err)
		}

		return nil
	})
}

// User retrieves the cached user snapshot
func (s *Storage) User(ctx context.Context) (*api.User, error) {
	var user *api.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get(keyUser)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		user = &api.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal user snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// Clear removes both credential keys (logout or unrecoverable 401)
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Delete(keyAccessToken); err != nil {
			return fmt.Errorf("failed to delete access token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user snapshot: %w", err)
		}

		return nil
	})
}
