//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"truadboon/internal/foundation"
	"truadboon/internal/foundation/store"
	"truadboon/internal/platform/postgres"
	"truadboon/pkg/platform/sentinel"
	"truadboon/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(context.Background(), s.pg.DB))
	s.store = store.NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(context.Background(), "foundations"))
}

func newTestFoundation(name, account string) foundation.Foundation {
	return foundation.Foundation{
		ID:            uuid.New(),
		Name:          name,
		AccountNumber: account,
		Bank:          "SCB",
		Category:      "Medical",
		Verified:      true,
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *PostgresStoreSuite) TestFindByAccountExactMatch() {
	ctx := context.Background()
	f := newTestFoundation("Mirror Foundation", "507-4-10183-8")
	s.Require().NoError(s.store.Save(ctx, f))

	got, err := s.store.FindByAccount(ctx, "507-4-10183-8", "5074101838")
	s.Require().NoError(err)
	s.Equal(f.ID, got.ID)
}

func (s *PostgresStoreSuite) TestFindByAccountNormalizedFallback() {
	ctx := context.Background()
	f := newTestFoundation("Mirror Foundation", "507-4-10183-8")
	s.Require().NoError(s.store.Save(ctx, f))

	// Caller strips dashes; stored value keeps them.
	got, err := s.store.FindByAccount(ctx, "5074101838", "5074101838")
	s.Require().NoError(err)
	s.Equal(f.ID, got.ID)
}

func (s *PostgresStoreSuite) TestFindByAccountSkipsUnverified() {
	ctx := context.Background()
	f := newTestFoundation("Pending Foundation", "111-2-33333-4")
	f.Verified = false
	s.Require().NoError(s.store.Save(ctx, f))

	_, err := s.store.FindByAccount(ctx, "111-2-33333-4", "1112333334")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSaveUpsertsOnAccountNumber() {
	ctx := context.Background()
	f := newTestFoundation("Mirror Foundation", "507-4-10183-8")
	s.Require().NoError(s.store.Save(ctx, f))

	f.Name = "Mirror Foundation (มูลนิธิกระจกเงา)"
	s.Require().NoError(s.store.Save(ctx, f))

	list, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Mirror Foundation (มูลนิธิกระจกเงา)", list[0].Name)
}

func (s *PostgresStoreSuite) TestListOrdersByName() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, newTestFoundation("B Foundation", "222-2-22222-2")))
	s.Require().NoError(s.store.Save(ctx, newTestFoundation("A Foundation", "111-1-11111-1")))

	list, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("A Foundation", list[0].Name)
}
