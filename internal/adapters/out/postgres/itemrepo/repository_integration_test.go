package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"store/internal/adapters/out/postgres/itemrepo"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ItemRepositoryIntegrationTestSuite provides integration tests for
// ItemRepository using PostgreSQL containers.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items RESTART IDENTITY CASCADE").Error)
	suite.repository = itemrepo.NewGormItemRepository(suite.db)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_ExistingItem_Success() {
	ctx := context.Background()
	weight := decimal.RequireFromString("0.25")
	suite.Require().NoError(suite.db.Create(&itemrepo.ItemDTO{
		ID:     1,
		Name:   "widget",
		Price:  decimal.RequireFromString("10.50"),
		Weight: &weight,
	}).Error)

	it, err := suite.repository.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(int64(1), it.ID())
	suite.Equal("widget", it.Name())
	suite.True(it.Price().Equal(decimal.RequireFromString("10.50")))
	suite.Require().NotNil(it.Weight())
	suite.True(it.Weight().Equal(weight))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_WeightlessItem_Success() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&itemrepo.ItemDTO{
		ID:    2,
		Name:  "ebook",
		Price: decimal.RequireFromString("5"),
	}).Error)

	it, err := suite.repository.Get(ctx, 2)

	suite.Require().NoError(err)
	suite.Nil(it.Weight())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 456)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
