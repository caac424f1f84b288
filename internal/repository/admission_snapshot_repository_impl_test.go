package repository

import (
	"errors"
	"regexp"
	"testing"

	"hospital-ipd-engine/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func sampleSnapshot() *entity.AdmissionSnapshot {
	return &entity.AdmissionSnapshot{
		RoomAdmissionID:    101,
		PatientID:          42,
		PatientType:        "Direct",
		AdmittingDoctorID:  7,
		RoomBedsID:         12,
		RoomAllocationDate: "2026-03-15",
		AdmissionStatus:    "Active",
		ScheduleOT:         "No",
		IsLinkedToICU:      "No",
		Status:             "Active",
	}
}

func TestSnapshotUpsertInserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "admission_snapshots"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Upsert(db, sampleSnapshot())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotUpsertFallsBackToUpdateOnDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "admission_snapshots"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "admission_snapshots"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Upsert(db, sampleSnapshot())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotUpsertPropagatesOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "admission_snapshots"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Upsert(db, sampleSnapshot())
	assert.Error(t, err)
}

func TestSnapshotFindByRoomAdmissionIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admission_snapshots"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	snapshot, err := repo.FindByRoomAdmissionID(db, 999)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSnapshotFindByPatientID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	rows := sqlmock.NewRows([]string{"id", "room_admission_id", "patient_id", "admission_status"}).
		AddRow(2, 102, 42, "Active").
		AddRow(1, 101, 42, "Discharged")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admission_snapshots"`)).
		WithArgs(42).
		WillReturnRows(rows)

	snapshots, err := repo.FindByPatientID(db, 42)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 102, snapshots[0].RoomAdmissionID)
	assert.Equal(t, "Discharged", snapshots[1].AdmissionStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotFindByRoomAdmissionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdmissionSnapshotRepository()

	rows := sqlmock.NewRows([]string{"id", "room_admission_id", "patient_id", "admission_status", "schedule_ot"}).
		AddRow(1, 101, 42, "Active", "No")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admission_snapshots"`)).
		WillReturnRows(rows)

	snapshot, err := repo.FindByRoomAdmissionID(db, 101)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 101, snapshot.RoomAdmissionID)
	assert.Equal(t, "Active", snapshot.AdmissionStatus)
}
