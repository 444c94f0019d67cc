package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnfapi/internal/database"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
)

func newStore(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewMemoryStore()
	require.NoError(t, err)
	return s
}

func TestMemoryLeads_AppendOnly(t *testing.T) {
	repo := newStore(t).Leads()
	ctx := context.Background()

	a := &lead.Lead{Name: "Ana", Email: "ana@x.com", Resource: lead.ResourceGuideNR1}
	b := &lead.Lead{Name: "Ana", Email: "ana@x.com", Resource: lead.ResourceGuideNR1}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Len(t, repo.List(), 2)
}

func TestMemoryProposals_UniqueEmail(t *testing.T) {
	repo := newStore(t).Proposals()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &proposal.Proposal{Name: "Ana", Email: "ana@x.com", Phone: "11"}))

	err := repo.Create(ctx, &proposal.Proposal{Name: "Other", Email: "ana@x.com", Phone: "22"})
	assert.ErrorIs(t, err, database.ErrConflict)

	stored := repo.FindByEmail("ana@x.com")
	require.NotNil(t, stored)
	assert.Equal(t, "Ana", stored.Name)
	assert.Equal(t, "11", stored.Phone)
}

func TestMemoryProposals_ConcurrentSameEmail(t *testing.T) {
	repo := newStore(t).Proposals()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(context.Background(), &proposal.Proposal{
				Name:  fmt.Sprintf("n%d", i),
				Email: "same@x.com",
				Phone: "1",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, database.ErrConflict) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, conflicts)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Leads().Create(ctx, &lead.Lead{Name: "a", Email: "b"}), context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
