package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"covid_dashboard/internal/models"
)

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

const (
	snapshotRowID = 1

	deleteRecordsSQL   = `DELETE FROM series_records`
	deleteCountriesSQL = `DELETE FROM snapshot_countries`
	insertCountrySQL   = `INSERT INTO snapshot_countries (name) VALUES (?)`
	insertRecordSQL    = `INSERT INTO series_records (country, day, confirmed, deaths) VALUES (?, ?, ?, ?)`

	upsertMetaSQL = `
		INSERT INTO snapshot_meta (id, source_url, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_url=excluded.source_url,
			fetched_at=excluded.fetched_at
	`

	selectMetaSQL      = `SELECT source_url, fetched_at FROM snapshot_meta WHERE id=?`
	selectCountriesSQL = `SELECT name FROM snapshot_countries`
	selectRecordsSQL   = `SELECT country, day, confirmed, deaths FROM series_records ORDER BY country, day`
)

// Save replaces the stored snapshot with s in one transaction.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.Snapshot) error {
	fetchedAt := s.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteRecordsSQL); err != nil {
		return fmt.Errorf("clear series records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteCountriesSQL); err != nil {
		return fmt.Errorf("clear countries: %w", err)
	}

	countryStmt, err := tx.PrepareContext(ctx, insertCountrySQL)
	if err != nil {
		return fmt.Errorf("prepare country insert: %w", err)
	}
	defer countryStmt.Close()

	recordStmt, err := tx.PrepareContext(ctx, insertRecordSQL)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer recordStmt.Close()

	for country, series := range s.Dataset {
		if _, err := countryStmt.ExecContext(ctx, country); err != nil {
			return fmt.Errorf("insert country %q: %w", country, err)
		}
		for _, rec := range series {
			if _, err := recordStmt.ExecContext(ctx, country, rec.Date.UTC().Format(models.DateLayout), rec.Confirmed, rec.Deaths); err != nil {
				return fmt.Errorf("insert record %s/%s: %w", country, rec.Date.Format(models.DateLayout), err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, upsertMetaSQL, snapshotRowID, s.SourceURL, fetchedAt.UTC().Format(sqliteTimeLayout)); err != nil {
		return fmt.Errorf("upsert snapshot meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or a zero Snapshot when nothing was saved yet.
func (r *SnapshotSQLite) Load(ctx context.Context) (models.Snapshot, error) {
	var s models.Snapshot
	if err := r.db.QueryRowContext(ctx, selectMetaSQL, snapshotRowID).Scan(&s.SourceURL, &s.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, nil
		}
		return models.Snapshot{}, fmt.Errorf("select snapshot meta: %w", err)
	}
	s.FetchedAt = s.FetchedAt.UTC()

	ds, err := r.loadCountries(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if err := r.loadRecords(ctx, ds); err != nil {
		return models.Snapshot{}, err
	}
	s.Dataset = ds
	return s, nil
}

func (r *SnapshotSQLite) loadCountries(ctx context.Context) (models.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, selectCountriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}
	defer rows.Close()

	ds := make(models.Dataset)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		ds[name] = models.CountrySeries{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return ds, nil
}

func (r *SnapshotSQLite) loadRecords(ctx context.Context, ds models.Dataset) error {
	rows, err := r.db.QueryContext(ctx, selectRecordsSQL)
	if err != nil {
		return fmt.Errorf("select series records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			country, day string
			rec          models.DailyRecord
		)
		if err := rows.Scan(&country, &day, &rec.Confirmed, &rec.Deaths); err != nil {
			return fmt.Errorf("scan series record: %w", err)
		}
		d, err := time.Parse(models.DateLayout, day)
		if err != nil {
			return fmt.Errorf("parse stored day %q for %s: %w", day, country, err)
		}
		rec.Date = d
		ds[country] = append(ds[country], rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate series records: %w", err)
	}
	return nil
}
