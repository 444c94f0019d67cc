package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-memdb"

	"dnfapi/internal/database"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
)

const (
	tableLeads     = "leads"
	tableProposals = "propostas"
)

// MemoryStore keeps leads and proposals in process memory. It backs
// DATABASE_URL=memory:// and loses everything on restart.
type MemoryStore struct {
	db *memdb.MemDB

	// Only touched inside write transactions, which memdb serialises.
	nextLeadID     uint
	nextProposalID uint
}

func NewMemoryStore() (*MemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableLeads: {
				Name: tableLeads,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"email": {
						Name:    "email",
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
			tableProposals: {
				Name: tableProposals,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"email": {
						Name:    "email",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("memdb schema: %w", err)
	}
	return &MemoryStore{db: db}, nil
}

// Leads returns a lead.Repository backed by the store.
func (s *MemoryStore) Leads() *MemoryLeadRepository {
	return &MemoryLeadRepository{store: s}
}

// Proposals returns a proposal.Repository backed by the store.
func (s *MemoryStore) Proposals() *MemoryProposalRepository {
	return &MemoryProposalRepository{store: s}
}

// Ping always succeeds; it exists so readiness checks treat both stores alike.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

type MemoryLeadRepository struct {
	store *MemoryStore
}

func (r *MemoryLeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := r.store.db.Txn(true)
	defer txn.Abort()

	r.store.nextLeadID++
	row := *l
	row.ID = r.store.nextLeadID
	row.CreatedAt = time.Now()

	if err := txn.Insert(tableLeads, &row); err != nil {
		r.store.nextLeadID--
		return fmt.Errorf("insert lead: %w", err)
	}
	txn.Commit()

	l.ID, l.CreatedAt = row.ID, row.CreatedAt
	return nil
}

// List returns every stored lead in insertion order.
func (r *MemoryLeadRepository) List() []lead.Lead {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableLeads, "id")
	if err != nil {
		return nil
	}
	var out []lead.Lead
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, *obj.(*lead.Lead))
	}
	return out
}

type MemoryProposalRepository struct {
	store *MemoryStore
}

// Create inserts p unless its email is already present, in which case it
// returns database.ErrConflict and leaves the stored row alone.
func (r *MemoryProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableProposals, "email", p.Email)
	if err != nil {
		return fmt.Errorf("lookup proposal: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: propostas.email", database.ErrConflict)
	}

	r.store.nextProposalID++
	row := *p
	row.ID = r.store.nextProposalID
	row.CreatedAt = time.Now()

	if err := txn.Insert(tableProposals, &row); err != nil {
		r.store.nextProposalID--
		return fmt.Errorf("insert proposal: %w", err)
	}
	txn.Commit()

	p.ID, p.CreatedAt = row.ID, row.CreatedAt
	return nil
}

// FindByEmail returns the proposal stored for email, or nil.
func (r *MemoryProposalRepository) FindByEmail(email string) *proposal.Proposal {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableProposals, "email", email)
	if err != nil || obj == nil {
		return nil
	}
	p := *obj.(*proposal.Proposal)
	return &p
}

var (
	_ lead.Repository     = (*MemoryLeadRepository)(nil)
	_ proposal.Repository = (*MemoryProposalRepository)(nil)
)
