package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/boardcamp/boardcamp-backend/pkg/db/models"
)

// The row-locking reads (LockGame, LockByID) emit FOR UPDATE and the
// games catalog filter uses ILIKE; both are Postgres-only and stay out
// of these sqlite-backed tests.
func setupRentalsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at DATETIME
);`
	games := `
CREATE TABLE IF NOT EXISTS games (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  image TEXT NOT NULL DEFAULT '',
  stock_total INTEGER NOT NULL,
  category_id TEXT NOT NULL,
  price_per_day_cents INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	customers := `
CREATE TABLE IF NOT EXISTS customers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  cpf TEXT NOT NULL UNIQUE,
  birthday DATETIME NOT NULL,
  created_at DATETIME
);`
	rentals := `
CREATE TABLE IF NOT EXISTS rentals (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  game_id TEXT NOT NULL,
  days_rented INTEGER NOT NULL,
  rent_date DATETIME NOT NULL,
  original_price_cents INTEGER NOT NULL,
  return_date DATETIME,
  delay_fee_cents INTEGER,
  created_at DATETIME
);`

	for _, stmt := range []string{categories, games, customers, rentals} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedGame(t *testing.T, db *gorm.DB, name string, categoryID uuid.UUID, stock, priceCents int) *models.Game {
	t.Helper()
	game := &models.Game{
		ID:               uuid.New(),
		Name:             name,
		StockTotal:       stock,
		CategoryID:       categoryID,
		PricePerDayCents: priceCents,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func seedCustomer(t *testing.T, db *gorm.DB, name, cpf string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		ID:       uuid.New(),
		Name:     name,
		Phone:    "21998899222",
		CPF:      cpf,
		Birthday: time.Date(1992, time.October, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedRental(t *testing.T, repo Repository, customerID, gameID uuid.UUID, days, priceCents int) *models.Rental {
	t.Helper()
	rental, err := repo.Create(context.Background(), &models.Rental{
		ID:                 uuid.New(),
		CustomerID:         customerID,
		GameID:             gameID,
		DaysRented:         days,
		RentDate:           time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		OriginalPriceCents: days * priceCents,
	})
	require.NoError(t, err)
	return rental
}

func TestRentalsRepoCountOpenByGame(t *testing.T) {
	db := setupRentalsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Eurogames")
	catan := seedGame(t, db, "Catan", category.ID, 3, 1500)
	azul := seedGame(t, db, "Azul", category.ID, 2, 1000)
	customer := seedCustomer(t, db, "Joana", "01234567890")

	first := seedRental(t, repo, customer.ID, catan.ID, 3, 1500)
	seedRental(t, repo, customer.ID, catan.ID, 2, 1500)
	seedRental(t, repo, customer.ID, azul.ID, 1, 1000)

	count, err := repo.CountOpenByGame(ctx, catan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// a closed rental stops counting against stock
	returnDate := first.RentDate.Add(3 * 24 * time.Hour)
	fee := 0
	first.ReturnDate = &returnDate
	first.DelayFeeCents = &fee
	require.NoError(t, repo.Close(ctx, first))

	count, err = repo.CountOpenByGame(ctx, catan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountOpenByGame(ctx, azul.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRentalsRepoClosePersistsBothFields(t *testing.T) {
	db := setupRentalsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Eurogames")
	game := seedGame(t, db, "Catan", category.ID, 3, 1500)
	customer := seedCustomer(t, db, "Joana", "01234567890")
	rental := seedRental(t, repo, customer.ID, game.ID, 3, 1500)

	returnDate := rental.RentDate.Add(5 * 24 * time.Hour)
	fee := 7500
	rental.ReturnDate = &returnDate
	rental.DelayFeeCents = &fee
	require.NoError(t, repo.Close(ctx, rental))

	var stored models.Rental
	require.NoError(t, db.Where("id = ?", rental.ID).First(&stored).Error)
	require.NotNil(t, stored.ReturnDate)
	require.NotNil(t, stored.DelayFeeCents)
	assert.True(t, stored.ReturnDate.Equal(returnDate))
	assert.Equal(t, 7500, *stored.DelayFeeCents)
	assert.False(t, stored.Open())
}

func TestRentalsRepoDelete(t *testing.T) {
	db := setupRentalsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Eurogames")
	game := seedGame(t, db, "Catan", category.ID, 3, 1500)
	customer := seedCustomer(t, db, "Joana", "01234567890")
	rental := seedRental(t, repo, customer.ID, game.ID, 3, 1500)
	keep := seedRental(t, repo, customer.ID, game.ID, 1, 1500)

	require.NoError(t, repo.Delete(ctx, rental.ID))

	var remaining []models.Rental
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestRentalsRepoListFiltersAndPreloads(t *testing.T) {
	db := setupRentalsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Eurogames")
	catan := seedGame(t, db, "Catan", category.ID, 3, 1500)
	azul := seedGame(t, db, "Azul", category.ID, 2, 1000)
	joana := seedCustomer(t, db, "Joana", "01234567890")
	pedro := seedCustomer(t, db, "Pedro", "98765432100")

	seedRental(t, repo, joana.ID, catan.ID, 3, 1500)
	seedRental(t, repo, joana.ID, azul.ID, 2, 1000)
	seedRental(t, repo, pedro.ID, catan.ID, 1, 1500)

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NotNil(t, all[0].Customer)
	require.NotNil(t, all[0].Game)
	require.NotNil(t, all[0].Game.Category)
	assert.Equal(t, "Eurogames", all[0].Game.Category.Name)

	byCustomer, err := repo.List(ctx, ListFilter{CustomerID: &joana.ID})
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	byGame, err := repo.List(ctx, ListFilter{GameID: &catan.ID})
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	both, err := repo.List(ctx, ListFilter{CustomerID: &pedro.ID, GameID: &catan.ID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Pedro", both[0].Customer.Name)

	none, err := repo.List(ctx, ListFilter{CustomerID: &pedro.ID, GameID: &azul.ID})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRentalsRepoCustomerExists(t *testing.T) {
	db := setupRentalsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Joana", "01234567890")

	exists, err := repo.CustomerExists(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CustomerExists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
