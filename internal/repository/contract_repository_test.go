package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clauselens/contract-review-api/internal/models"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Contract{},
		&models.Annotation{},
		&models.Summary{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestContractRepository_FindOwned(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewContractRepository(db)

	contract := models.Contract{Title: "C1", Text: "T1", Status: "draft", UserID: 1}
	require.NoError(t, repo.Create(&contract))

	found, err := repo.FindOwned(1, contract.ID)
	require.NoError(t, err)
	require.Equal(t, "C1", found.Title)

	// Same row, different owner: identical to missing
	_, err = repo.FindOwned(2, contract.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindOwned(1, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContractRepository_UpdateFields(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewContractRepository(db)

	contract := models.Contract{Title: "C1", Text: "T1", Status: "draft", UserID: 1}
	require.NoError(t, repo.Create(&contract))

	err := repo.UpdateFields(1, contract.ID, map[string]interface{}{"status": "review"})
	require.NoError(t, err)

	var updated models.Contract
	require.NoError(t, db.First(&updated, contract.ID).Error)
	require.Equal(t, "review", updated.Status)

	// Non-owner update matches zero rows
	err = repo.UpdateFields(2, contract.ID, map[string]interface{}{"status": "stolen"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Empty field set still enforces ownership
	require.NoError(t, repo.UpdateFields(1, contract.ID, nil))
	require.ErrorIs(t, repo.UpdateFields(2, contract.ID, nil), gorm.ErrRecordNotFound)
}

func TestContractRepository_DeleteCascade(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewContractRepository(db)

	contract := models.Contract{Title: "C1", Text: "T1", Status: "draft", UserID: 1}
	require.NoError(t, repo.Create(&contract))
	require.NoError(t, db.Create(&models.Annotation{ContractID: contract.ID, UserID: 1, StartOffset: 0, EndOffset: 1}).Error)
	require.NoError(t, db.Create(&models.Summary{ContractID: contract.ID, UserID: 1, OriginalText: "o", SummaryText: "s"}).Error)

	// Wrong owner leaves everything intact
	require.ErrorIs(t, repo.DeleteCascade(2, contract.ID), gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.Annotation{}).Where("contract_id = ?", contract.ID).Count(&count)
	require.EqualValues(t, 1, count)

	require.NoError(t, repo.DeleteCascade(1, contract.ID))

	db.Model(&models.Contract{}).Where("id = ?", contract.ID).Count(&count)
	require.Zero(t, count)
	db.Model(&models.Annotation{}).Where("contract_id = ?", contract.ID).Count(&count)
	require.Zero(t, count)
	db.Model(&models.Summary{}).Where("contract_id = ?", contract.ID).Count(&count)
	require.Zero(t, count)
}

func TestContractRepository_ListByOwner_NewestFirst(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewContractRepository(db)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "newest"} {
		contract := models.Contract{
			Title:     title,
			Status:    "draft",
			UserID:    1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&contract).Error)
	}
	require.NoError(t, db.Create(&models.Contract{Title: "other user", Status: "draft", UserID: 2}).Error)

	contracts, err := repo.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	require.Equal(t, "newest", contracts[0].Title)
	require.Equal(t, "oldest", contracts[1].Title)
}

func TestContractRepository_SearchContracts(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := NewContractRepository(db)

	mock.ExpectQuery(`SELECT id,\s+title,\s+ts_headline\('english', text, plainto_tsquery\('english', \$1\)\) AS snippet`).
		WithArgs("indemnity", 7, "indemnity", "indemnity", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "snippet"}).
			AddRow(3, "MSA", "the <b>indemnity</b> clause").
			AddRow(5, "NDA", "<b>indemnity</b> obligations survive"))

	results, err := repo.SearchContracts(7, "indemnity", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.EqualValues(t, 3, results[0].ID)
	require.Equal(t, "MSA", results[0].Title)
	require.Contains(t, results[0].Snippet, "<b>indemnity</b>")

	require.NoError(t, mock.ExpectationsWereMet())
}
