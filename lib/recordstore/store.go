// Package recordstore is the persistent record store: a key-value table
// partitioned into logical tables, one JSON-encoded record per key. It is the
// single source of truth once a mutation settles; everything above it holds
// copies.
package recordstore

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentflow-backend/lib/apperr"
)

const (
	TableJobs        = "jobs"
	TableCandidates  = "candidates"
	TableAssessments = "assessments"
	TableResponses   = "responses"
	TableMetadata    = "metadata"
	TableUsers       = "users"
)

// Record is the only relational table; every entity lives here as a JSON blob
// keyed by (tbl, id).
type Record struct {
	Tbl  string `gorm:"column:tbl;primaryKey;type:varchar(36)"`
	ID   string `gorm:"column:id;primaryKey;type:varchar(36)"`
	Data []byte `gorm:"column:data"`
}

func (Record) TableName() string {
	return "records"
}

type Store struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&Record{})
}

// InTx runs fn against a store bound to one transaction. Used where a batch
// of writes must land all-or-nothing (the reorder shift).
func (s *Store) InTx(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Table returns a handle on one logical partition.
func (s *Store) Table(name string) Table {
	return Table{db: s.db, name: name}
}

type Table struct {
	db   *gorm.DB
	name string
}

func (t Table) Get(id string) ([]byte, error) {
	rec := Record{}
	err := t.db.
		Where("tbl = ?", t.name).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Errorf(apperr.KindNotFound, "%s/%s not found", t.name, id)
		}
		return nil, errors.Wrapf(err, "reading %s/%s", t.name, id)
	}
	return rec.Data, nil
}

func (t Table) Set(id string, data []byte) error {
	rec := Record{Tbl: t.name, ID: id, Data: data}
	err := t.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tbl"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrapf(err, "writing %s/%s", t.name, id)
	}
	return nil
}

func (t Table) Delete(id string) error {
	err := t.db.
		Where("tbl = ?", t.name).
		Where("id = ?", id).
		Delete(&Record{}).
		Error
	if err != nil {
		return errors.Wrapf(err, "deleting %s/%s", t.name, id)
	}
	return nil
}

// IterateAll returns every record in the table, in no particular order.
func (t Table) IterateAll() ([][]byte, error) {
	recs := []Record{}
	err := t.db.
		Where("tbl = ?", t.name).
		Find(&recs).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "iterating %s", t.name)
	}
	out := make([][]byte, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Data)
	}
	return out, nil
}

// GetAs reads and decodes one record.
func GetAs[T any](t Table, id string) (*T, error) {
	data, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	rec := new(T)
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, errors.Wrapf(err, "decoding %s/%s", t.name, id)
	}
	return rec, nil
}

// SetAs encodes and writes one record.
func SetAs[T any](t Table, id string, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "encoding %s/%s", t.name, id)
	}
	return t.Set(id, data)
}

// ListAs decodes the whole table.
func ListAs[T any](t Table) ([]T, error) {
	rows, err := t.IterateAll()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, data := range rows {
		rec := new(T)
		if err := json.Unmarshal(data, rec); err != nil {
			return nil, errors.Wrapf(err, "decoding a %s record", t.name)
		}
		out = append(out, *rec)
	}
	return out, nil
}
