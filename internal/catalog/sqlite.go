package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/theme"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite keeps the menu in a local database, ordered by position.
type SQLite struct {
	db *sql.DB
}

const schema = `
	create table if not exists items
	  (
		  id text not null primary key,
		  name text not null default '',
		  description text not null default '',
		  color text not null default '',
		  position integer not null default 0
	  );
	`

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create items table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if nil != s.db {
		return s.db.Close()
	}
	return nil
}

// Put inserts or replaces an item at the given menu position.
func (s *SQLite) Put(ctx context.Context, position int, item game.Item) error {
	col := ""
	if item.Color.A != 0 {
		col = theme.Hex(item.Color)
	}
	_, err := s.db.ExecContext(ctx,
		"insert or replace into items(id, name, description, color, position) values(?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Description, col, position)
	if nil != err {
		return fmt.Errorf("unable to save item %s: %w", item.ID, err)
	}
	return nil
}

func (s *SQLite) Items(ctx context.Context) ([]game.Item, error) {
	rows, err := s.db.QueryContext(ctx, "select id, name, description, color from items order by position, id")
	if nil != err {
		return nil, fmt.Errorf("unable to load items: %w", err)
	}
	defer rows.Close()

	items := []game.Item{}
	for rows.Next() {
		var item game.Item
		var col string
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &col); nil != err {
			return nil, fmt.Errorf("unable to read item: %w", err)
		}
		if col != "" {
			c, err := theme.ParseHex(col)
			if nil != err {
				return nil, fmt.Errorf("item %s: %w", item.ID, err)
			}
			item.Color = c
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
