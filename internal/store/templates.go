package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bulkrename/internal/collision"
	"bulkrename/internal/services"
	"bulkrename/internal/template"
)

// SaveTemplate inserts or replaces a named template.
func (s *Store) SaveTemplate(ctx context.Context, tpl template.Template) error {
	if err := tpl.Validate(); err != nil {
		return err
	}
	blocksJSON, err := json.Marshal(tpl.Blocks)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO templates (name, blocks_json, collision, use_mtime, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET
            blocks_json = excluded.blocks_json,
            collision = excluded.collision,
            use_mtime = excluded.use_mtime,
            updated_at = excluded.updated_at`,
		tpl.Name,
		string(blocksJSON),
		string(tpl.Collision),
		boolToInt(tpl.UseMTimeForDate),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save template %q: %w", tpl.Name, err)
	}
	return nil
}

// GetTemplate loads one template by its unique name.
func (s *Store) GetTemplate(ctx context.Context, name string) (template.Template, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT name, blocks_json, collision, use_mtime FROM templates WHERE name = ?", name)

	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return template.Template{}, services.Wrap(services.ErrNotFound, "store", "get template",
			fmt.Sprintf("no template named %q", name), nil)
	}
	if err != nil {
		return template.Template{}, fmt.Errorf("load template %q: %w", name, err)
	}
	return tpl, nil
}

// ListTemplates returns every stored template ordered by name.
func (s *Store) ListTemplates(ctx context.Context) ([]template.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, blocks_json, collision, use_mtime FROM templates ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// DeleteTemplate removes a template by name.
func (s *Store) DeleteTemplate(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete template %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "delete template",
			fmt.Sprintf("no template named %q", name), nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (template.Template, error) {
	var (
		tpl        template.Template
		blocksJSON string
		strategy   string
		useMTime   int
	)
	if err := row.Scan(&tpl.Name, &blocksJSON, &strategy, &useMTime); err != nil {
		return template.Template{}, err
	}
	if err := json.Unmarshal([]byte(blocksJSON), &tpl.Blocks); err != nil {
		return template.Template{}, fmt.Errorf("decode blocks: %w", err)
	}
	tpl.Collision = collision.Strategy(strategy)
	tpl.UseMTimeForDate = useMTime != 0
	return tpl, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
