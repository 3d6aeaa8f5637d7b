package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/datastate"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/project"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/timesheet"
	"github.com/timesync-hq/timesync-ingest-go/internal/domain/user"
	"github.com/timesync-hq/timesync-ingest-go/internal/repository/postgresql"
)

func strPtr(s string) *string {
	return &s
}

// ===== DATA STATE REPOSITORY TESTS =====

func TestDataStateRepository_CreateAndGetByName(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewDataStateRepository(db)

	stateID := uuid.NewString()
	err := repo.Create(ctx, datastate.State{ID: stateID, Name: datastate.Active})
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, datastate.Active)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stateID, got.ID)
	assert.Equal(t, datastate.Active, got.Name)
}

func TestDataStateRepository_GetByName_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	got, err := postgresql.NewDataStateRepository(db).GetByName(context.Background(), "Archived")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDataStateRepository_Create_DuplicateNameIsNoOp(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewDataStateRepository(db)

	firstID := uuid.NewString()
	require.NoError(t, repo.Create(ctx, datastate.State{ID: firstID, Name: datastate.Active}))
	require.NoError(t, repo.Create(ctx, datastate.State{ID: uuid.NewString(), Name: datastate.Active}))

	got, err := repo.GetByName(ctx, datastate.Active)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, firstID, got.ID)
}

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_CreateAndGetByRegistration(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	stateID := uuid.NewString()
	seedState(t, db, stateID, datastate.Active)

	repo := postgresql.NewUserRepository(db)
	err := repo.Create(ctx, user.User{
		Registration: 4021,
		FullName:     "Ana Souza",
		Email:        "4021@timesync.local",
		PasswordHash: "hashed",
		StateID:      stateID,
	})
	require.NoError(t, err)

	got, err := repo.GetByRegistration(ctx, 4021)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4021), got.Registration)
	assert.Equal(t, "Ana Souza", got.FullName)
	assert.Equal(t, stateID, got.StateID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepository_GetByRegistration_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	got, err := postgresql.NewUserRepository(db).GetByRegistration(context.Background(), 99999)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Create_DuplicateRegistrationKeepsFirstRow(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	stateID := uuid.NewString()
	seedState(t, db, stateID, datastate.Active)

	repo := postgresql.NewUserRepository(db)
	require.NoError(t, repo.Create(ctx, user.User{
		Registration: 4021,
		FullName:     "Ana Souza",
		Email:        "4021@timesync.local",
		PasswordHash: "hashed",
		StateID:      stateID,
	}))
	require.NoError(t, repo.Create(ctx, user.User{
		Registration: 4021,
		FullName:     "Someone Else",
		Email:        "other@timesync.local",
		PasswordHash: "hashed",
		StateID:      stateID,
	}))

	got, err := repo.GetByRegistration(ctx, 4021)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Souza", got.FullName)
}

// ===== PROJECT REPOSITORY TESTS =====

func TestProjectRepository_CreateAndGetByID(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	stateID := uuid.NewString()
	seedState(t, db, stateID, datastate.Active)

	repo := postgresql.NewProjectRepository(db)
	observed := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	err := repo.Create(ctx, project.Project{
		ID:        "PRJ-ALPHA",
		Name:      "PRJ-ALPHA",
		StartDate: observed,
		DueDate:   observed,
		StateID:   stateID,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "PRJ-ALPHA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PRJ-ALPHA", got.Name)
	assert.Equal(t, observed, got.StartDate.UTC())
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	got, err := postgresql.NewProjectRepository(db).GetByID(context.Background(), "PRJ-MISSING")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

// ===== ENTRY REPOSITORY TESTS =====

func TestEntryRepository_Create(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	stateID := uuid.NewString()
	seedState(t, db, stateID, datastate.Active)

	userRepo := postgresql.NewUserRepository(db)
	require.NoError(t, userRepo.Create(ctx, user.User{
		Registration: 4021,
		FullName:     "Ana Souza",
		Email:        "4021@timesync.local",
		PasswordHash: "hashed",
		StateID:      stateID,
	}))

	entryRepo := postgresql.NewEntryRepository(db)
	entry := timesheet.Entry{
		ID:               uuid.NewString(),
		Date:             time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		Occurrence:       timesheet.OccurrenceWork,
		StartTime:        strPtr("08:00"),
		EndTime:          strPtr("17:30"),
		TotalHours:       9.5,
		UserRegistration: 4021,
		StateID:          stateID,
	}
	require.NoError(t, entryRepo.Create(ctx, entry))

	var (
		occurrence string
		totalHours float64
	)
	err := db.QueryRow(ctx, `
		SELECT occurrence, total_hours FROM attendance_entries WHERE id = $1
	`, entry.ID).Scan(&occurrence, &totalHours)
	require.NoError(t, err)
	assert.Equal(t, timesheet.OccurrenceWork, occurrence)
	assert.Equal(t, 9.5, totalHours)
}

func TestEntryRepository_Create_UnknownUserFails(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	stateID := uuid.NewString()
	seedState(t, db, stateID, datastate.Active)

	err := postgresql.NewEntryRepository(db).Create(context.Background(), timesheet.Entry{
		ID:               uuid.NewString(),
		Date:             time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		Occurrence:       timesheet.OccurrenceWork,
		UserRegistration: 12345,
		StateID:          stateID,
	})

	assert.Error(t, err)
}

// ===== TRANSACTION MANAGER TESTS =====

func TestTxManager_RollbackOnError(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	tm := postgresql.NewTxManager(db)
	stateRepo := postgresql.NewDataStateRepository(db)

	boom := errors.New("boom")
	err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := stateRepo.Create(ctx, datastate.State{ID: uuid.NewString(), Name: datastate.Active}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := stateRepo.GetByName(ctx, datastate.Active)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTxManager_SavepointIsolatesFailedStatement(t *testing.T) {
	db := testDatabase(t)
	defer truncateAllTables(t, db)
	truncateAllTables(t, db)

	ctx := context.Background()
	tm := postgresql.NewTxManager(db)
	stateRepo := postgresql.NewDataStateRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)

	stateID := uuid.NewString()

	err := tm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := stateRepo.Create(ctx, datastate.State{ID: stateID, Name: datastate.Active}); err != nil {
			return err
		}
		if err := userRepo.Create(ctx, user.User{
			Registration: 4021,
			FullName:     "Ana Souza",
			Email:        "4021@timesync.local",
			PasswordHash: "hashed",
			StateID:      stateID,
		}); err != nil {
			return err
		}

		// A failing insert under a savepoint must not poison the
		// enclosing transaction.
		spErr := tm.WithinSavepoint(ctx, func(ctx context.Context) error {
			return entryRepo.Create(ctx, timesheet.Entry{
				ID:               uuid.NewString(),
				Date:             time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
				Occurrence:       timesheet.OccurrenceWork,
				UserRegistration: 99999, // violates the FK
				StateID:          stateID,
			})
		})
		assert.Error(t, spErr)

		return tm.WithinSavepoint(ctx, func(ctx context.Context) error {
			return entryRepo.Create(ctx, timesheet.Entry{
				ID:               uuid.NewString(),
				Date:             time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
				Occurrence:       timesheet.OccurrenceWork,
				UserRegistration: 4021,
				StateID:          stateID,
			})
		})
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_entries").Scan(&count))
	assert.Equal(t, 1, count)
}
