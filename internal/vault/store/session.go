package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"github.com/dmitrijs2005/vivault/internal/vault/repositories/kv"
)

const KeySession = "session"

// SessionFlag returns the persisted session flag; ok is false when none is
// stored.
func (s *Store) SessionFlag(ctx context.Context) (flag models.SessionFlag, ok bool, err error) {
	b, err := s.repos(s.db, kv.TableSession).Get(ctx, KeySession)
	if err != nil || b == nil {
		return flag, false, err
	}
	if err := json.Unmarshal(b, &flag); err != nil {
		return flag, false, fmt.Errorf("decode session flag: %w", err)
	}
	return flag, true, nil
}

func (s *Store) SetSessionFlag(ctx context.Context, flag models.SessionFlag) error {
	b, err := json.Marshal(flag)
	if err != nil {
		return fmt.Errorf("encode session flag: %w", err)
	}
	return s.repos(s.db, kv.TableSession).Set(ctx, KeySession, b)
}

// ClearSession wipes the whole session table, not only the flag key, so
// nothing written by an earlier session survives a lock.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.repos(s.db, kv.TableSession).Clear(ctx)
}
