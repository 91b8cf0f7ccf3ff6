package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/abhinav-rk/studyloop/ent"
	entprofile "github.com/abhinav-rk/studyloop/ent/profile"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *profileRepo) Load(ctx context.Context) (*ProfileData, error) {
	row, err := r.client.Profile.Query().
		Order(ent.Desc(entprofile.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ProfileData{}, nil
		}
		return nil, fmt.Errorf("query latest profile: %w", err)
	}

	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal profile data: %w", err)
	}
	var data ProfileData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	return &data, nil
}

func (r *profileRepo) Save(ctx context.Context, p *ProfileData) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	var dataMap map[string]any
	if err := json.Unmarshal(b, &dataMap); err != nil {
		return fmt.Errorf("profile to map: %w", err)
	}

	_, err = r.client.Profile.Create().
		SetSequence(r.lastSequence(ctx)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Roadmap(ctx context.Context) (*roadmap.Roadmap, error) {
	p, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return p.Roadmap, nil
}

func (r *profileRepo) SaveRoadmap(ctx context.Context, rm *roadmap.Roadmap) error {
	p, err := r.Load(ctx)
	if err != nil {
		return err
	}
	p.Roadmap = rm
	return r.Save(ctx, p)
}

func (r *profileRepo) ActionHistory(ctx context.Context) ([]string, error) {
	p, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return p.ActionHistory, nil
}

func (r *profileRepo) SaveActionHistory(ctx context.Context, ids []string) error {
	p, err := r.Load(ctx)
	if err != nil {
		return err
	}
	p.ActionHistory = ids
	return r.Save(ctx, p)
}

func (r *profileRepo) Prune(ctx context.Context, keep int) error {
	// Delete by row id rather than by an updated_at threshold: a time
	// value read back from SQLite does not reliably compare equal when
	// re-bound in a predicate.
	ids, err := r.client.Profile.Query().
		Order(ent.Desc(entprofile.FieldUpdatedAt)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query profiles for prune: %w", err)
	}
	if len(ids) <= keep {
		return nil
	}

	_, err = r.client.Profile.Delete().
		Where(entprofile.IDIn(ids[keep:]...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune profiles: %w", err)
	}
	return nil
}

// lastSequence reads the most recently issued global sequence number so
// profile rows record how much of the log they had seen. Falls back to 0
// before any event exists.
func (r *profileRepo) lastSequence(ctx context.Context) int64 {
	var seq int64
	err := r.db.QueryRowContext(ctx,
		`SELECT next_val - 1 FROM global_sequence WHERE id = 1`,
	).Scan(&seq)
	if err != nil {
		return 0
	}
	return seq
}
