package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"gedstore/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// refToNull converts a weak reference ("2", or "" for unknown) to a nullable
// integer column. References that are not decimal are stored as NULL.
func refToNull(ref string) sql.NullInt64 {
	id, err := strconv.Atoi(ref)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}

// nullToRef is the inverse of refToNull
func nullToRef(ni sql.NullInt64) string {
	if !ni.Valid {
		return ""
	}
	return strconv.FormatInt(ni.Int64, 10)
}

// ============================================================================
// JSON Marshaling Helpers
// ============================================================================

// unmarshalJSONField safely unmarshals JSON from nullable string into target
func unmarshalJSONField(ns sql.NullString, target any) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), target)
}

// marshalToNull marshals v to a nullable JSON string.
// Returns empty NullString for nil or empty slices.
func marshalToNull[T any](v []T) (sql.NullString, error) {
	if len(v) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// ============================================================================
// Schema Evolution Guide
// ============================================================================
//
// To add a new column to individuals:
// 1. Add field to individualRow struct (below)
// 2. Update scanArgs() - APPEND to end to match column order
// 3. Update individualColumns constant - APPEND to end
// 4. Update toDomain() and individualInsertArgs()
// 5. Add the column to the schema in sqlite.go migrate()
//
// CRITICAL: Column order must match between:
// - individualColumns constant
// - scanArgs() return slice
// - individualInsertArgs() return slice

// ============================================================================
// Individual Row Scanner
// ============================================================================

// individualRow holds all columns from an individual query for scanning
type individualRow struct {
	ID        int
	TreeID    sql.NullString
	FirstName sql.NullString
	LastName  sql.NullString
	Sex       string
	FatherID  sql.NullInt64
	MotherID  sql.NullInt64
	NotesJSON sql.NullString
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match individualColumns order exactly:
// id, tree_id, first_name, last_name, sex, father_id, mother_id, notes
func (r *individualRow) scanArgs() []any {
	return []any{
		&r.ID,        // 1
		&r.TreeID,    // 2
		&r.FirstName, // 3
		&r.LastName,  // 4
		&r.Sex,       // 5
		&r.FatherID,  // 6
		&r.MotherID,  // 7
		&r.NotesJSON, // 8
	}
}

// toDomain converts the scanned row to a domain.Individual
func (r *individualRow) toDomain() (*domain.Individual, error) {
	ind := &domain.Individual{
		ID:        r.ID,
		TreeID:    nullToString(r.TreeID),
		FirstName: nullToString(r.FirstName),
		LastName:  nullToString(r.LastName),
		Sex:       domain.ParseSex(r.Sex),
		FatherID:  nullToRef(r.FatherID),
		MotherID:  nullToRef(r.MotherID),
	}
	if err := unmarshalJSONField(r.NotesJSON, &ind.Notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}
	return ind, nil
}

// individualColumns returns the SELECT column list for individual queries
const individualColumns = `i.id, i.tree_id, i.first_name, i.last_name, i.sex,
	i.father_id, i.mother_id, i.notes`

// ============================================================================
// Write Helpers
// ============================================================================

// individualInsertArgs prepares arguments for individual INSERT
func individualInsertArgs(ind *domain.Individual) ([]any, error) {
	notesJSON, err := marshalToNull(ind.Notes)
	if err != nil {
		return nil, fmt.Errorf("marshal notes: %w", err)
	}
	return []any{
		ind.ID,
		stringToNull(ind.TreeID),
		stringToNull(ind.FirstName),
		stringToNull(ind.LastName),
		string(ind.Sex),
		refToNull(ind.FatherID),
		refToNull(ind.MotherID),
		notesJSON,
	}, nil
}

// factInsertArgs prepares arguments for fact INSERT
// Returns: owner_kind, owner_id, position, fact_type, date, place, citations
func factInsertArgs(ownerKind string, ownerID, position int, fact *domain.Fact) ([]any, error) {
	citationsJSON, err := marshalToNull(fact.Citations)
	if err != nil {
		return nil, fmt.Errorf("marshal citations: %w", err)
	}
	return []any{
		ownerKind,
		ownerID,
		position,
		string(fact.FactType),
		stringToNull(fact.Date),
		stringToNull(fact.Place),
		citationsJSON,
	}, nil
}
