package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

// Mirror is a read-side copy of a store kept in SQLite. It is rebuilt in
// full by Sync and answers queries the document store cannot index.
type Mirror struct {
	db *sql.DB
}

// New opens (creating if needed) the mirror database at dbPath.
// ":memory:" gives a private in-memory mirror.
func New(dbPath string) (*Mirror, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every ":memory:" connection is a separate database.
	db.SetMaxOpenConns(1)

	m := &Mirror{db: db}
	if err := m.migrate(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return m, nil
}

func (m *Mirror) migrate(dbPath string) error {
	pragmas := []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"}
	if dbPath != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := m.db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS trees (
		id TEXT PRIMARY KEY,
		name TEXT,
		description TEXT,
		source TEXT
	);

	CREATE TABLE IF NOT EXISTS individuals (
		id INTEGER PRIMARY KEY,
		tree_id TEXT,
		first_name TEXT,
		last_name TEXT,
		sex TEXT NOT NULL DEFAULT 'unknown',
		father_id INTEGER,
		mother_id INTEGER,
		notes JSON
	);

	CREATE TABLE IF NOT EXISTS families (
		id INTEGER PRIMARY KEY,
		tree_id TEXT,
		husband_id INTEGER,
		wife_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS family_children (
		family_id INTEGER NOT NULL,
		individual_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (family_id, individual_id),
		FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS repositories (
		id INTEGER PRIMARY KEY,
		tree_id TEXT,
		name TEXT,
		address TEXT
	);

	CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY,
		tree_id TEXT,
		author TEXT,
		title TEXT,
		publisher TEXT,
		repository_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS facts (
		owner_kind TEXT NOT NULL,
		owner_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		fact_type TEXT NOT NULL,
		date TEXT,
		place TEXT,
		citations JSON,
		PRIMARY KEY (owner_kind, owner_id, position)
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_individuals_last_name ON individuals(last_name COLLATE NOCASE);
	CREATE INDEX IF NOT EXISTS idx_family_children_individual ON family_children(individual_id);
	CREATE INDEX IF NOT EXISTS idx_facts_type ON facts(fact_type);
	`

	_, err := m.db.Exec(schema)
	return err
}

// Sync replaces every row with the contents of snap in one transaction
func (m *Mirror) Sync(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("sync: %w", repository.ErrInvalidArgument)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear existing data (order matters due to foreign keys)
	for _, table := range []string{"family_children", "facts", "families", "individuals", "sources", "repositories", "trees"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if t := snap.Tree; t != nil {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO trees (id, name, description, source) VALUES (?, ?, ?, ?)
		`, t.ID, stringToNull(t.Name), stringToNull(t.Description), stringToNull(t.Source)); err != nil {
			return fmt.Errorf("failed to insert tree: %w", err)
		}
	}

	factStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO facts (owner_kind, owner_id, position, fact_type, date, place, citations)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare fact statement: %w", err)
	}
	defer factStmt.Close()

	insertFacts := func(kind string, id int, facts []*domain.Fact) error {
		for pos, f := range facts {
			if f == nil {
				continue
			}
			args, err := factInsertArgs(kind, id, pos, f)
			if err != nil {
				return fmt.Errorf("fact %d of %s %d: %w", pos, kind, id, err)
			}
			if _, err := factStmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert fact of %s %d: %w", kind, id, err)
			}
		}
		return nil
	}

	// Insert individuals
	indStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO individuals (id, tree_id, first_name, last_name, sex, father_id, mother_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare individual statement: %w", err)
	}
	defer indStmt.Close()

	for _, ind := range snap.Individuals {
		if ind == nil {
			continue
		}
		args, err := individualInsertArgs(ind)
		if err != nil {
			return fmt.Errorf("individual %d: %w", ind.ID, err)
		}
		if _, err := indStmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert individual %d: %w", ind.ID, err)
		}
		if err := insertFacts("individual", ind.ID, ind.Facts); err != nil {
			return err
		}
	}

	// Insert families and their children
	famStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO families (id, tree_id, husband_id, wife_id) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare family statement: %w", err)
	}
	defer famStmt.Close()

	childStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO family_children (family_id, individual_id, position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare child statement: %w", err)
	}
	defer childStmt.Close()

	for _, fam := range snap.Families {
		if fam == nil {
			continue
		}
		if _, err := famStmt.ExecContext(ctx, fam.ID, stringToNull(fam.TreeID), refToNull(fam.HusbandID), refToNull(fam.WifeID)); err != nil {
			return fmt.Errorf("failed to insert family %d: %w", fam.ID, err)
		}
		for pos, child := range fam.ChildIDs {
			ref := refToNull(child)
			if !ref.Valid {
				continue
			}
			if _, err := childStmt.ExecContext(ctx, fam.ID, ref, pos); err != nil {
				return fmt.Errorf("failed to insert child of family %d: %w", fam.ID, err)
			}
		}
		if err := insertFacts("family", fam.ID, fam.Facts); err != nil {
			return err
		}
	}

	for _, r := range snap.Repositories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO repositories (id, tree_id, name, address) VALUES (?, ?, ?, ?)
		`, r.ID, stringToNull(r.TreeID), stringToNull(r.Name), stringToNull(r.Address)); err != nil {
			return fmt.Errorf("failed to insert repository %d: %w", r.ID, err)
		}
	}

	for _, s := range snap.Sources {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sources (id, tree_id, author, title, publisher, repository_id) VALUES (?, ?, ?, ?, ?, ?)
		`, s.ID, stringToNull(s.TreeID), stringToNull(s.Author), stringToNull(s.Title), stringToNull(s.Publisher), refToNull(s.RepositoryID)); err != nil {
			return fmt.Errorf("failed to insert source %d: %w", s.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES ('last_sync', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to store sync timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LastSync returns when Sync last completed. The zero time means never.
func (m *Mirror) LastSync(ctx context.Context) (time.Time, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'last_sync'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query last sync: %w", err)
	}
	return time.Parse(time.RFC3339Nano, value)
}

// CountIndividuals returns the number of mirrored individuals
func (m *Mirror) CountIndividuals(ctx context.Context) (int, error) {
	var n int
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM individuals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count individuals: %w", err)
	}
	return n, nil
}

// GetIndividual retrieves a single individual by ID
func (m *Mirror) GetIndividual(ctx context.Context, id int) (*domain.Individual, error) {
	var row individualRow
	err := m.db.QueryRowContext(ctx, `
		SELECT `+individualColumns+` FROM individuals i WHERE i.id = ?
	`, id).Scan(row.scanArgs()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("individual %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query individual: %w", err)
	}
	ind, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	if err := m.loadFacts(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

// ChildrenOf returns the children of a family in document order
func (m *Mirror) ChildrenOf(ctx context.Context, familyID int) ([]*domain.Individual, error) {
	return m.queryIndividuals(ctx, `
		SELECT `+individualColumns+`
		FROM family_children c JOIN individuals i ON i.id = c.individual_id
		WHERE c.family_id = ?
		ORDER BY c.position
	`, familyID)
}

// FindBySurname returns the individuals whose last name matches surname,
// ignoring case
func (m *Mirror) FindBySurname(ctx context.Context, surname string) ([]*domain.Individual, error) {
	return m.queryIndividuals(ctx, `
		SELECT `+individualColumns+`
		FROM individuals i
		WHERE i.last_name = ? COLLATE NOCASE
		ORDER BY i.id
	`, surname)
}

func (m *Mirror) queryIndividuals(ctx context.Context, query string, args ...any) ([]*domain.Individual, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query individuals: %w", err)
	}
	defer rows.Close()

	var out []*domain.Individual
	for rows.Next() {
		var row individualRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan individual: %w", err)
		}
		ind, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("individual %d: %w", row.ID, err)
		}
		out = append(out, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating individuals: %w", err)
	}
	return out, nil
}

func (m *Mirror) loadFacts(ctx context.Context, ind *domain.Individual) error {
	rows, err := m.db.QueryContext(ctx, `
		SELECT fact_type, date, place, citations
		FROM facts WHERE owner_kind = 'individual' AND owner_id = ?
		ORDER BY position
	`, ind.ID)
	if err != nil {
		return fmt.Errorf("failed to query facts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			factType            string
			date, place, citeJS sql.NullString
		)
		if err := rows.Scan(&factType, &date, &place, &citeJS); err != nil {
			return fmt.Errorf("failed to scan fact: %w", err)
		}
		fact := &domain.Fact{
			FactType: domain.FactType(factType),
			Date:     nullToString(date),
			Place:    nullToString(place),
		}
		if err := unmarshalJSONField(citeJS, &fact.Citations); err != nil {
			return fmt.Errorf("unmarshal citations: %w", err)
		}
		ind.Facts = append(ind.Facts, fact)
	}
	return rows.Err()
}

// Close closes the database connection
func (m *Mirror) Close() error {
	return m.db.Close()
}
