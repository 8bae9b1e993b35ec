package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"icisdportal/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDocumentStore_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		mock    func(mock sqlmock.Sqlmock)
		want    []byte
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			key:  domain.AccountsKey,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`[{"id":"user-1"}]`))
				mock.ExpectQuery(`SELECT doc`).
					WithArgs(domain.AccountsKey).
					WillReturnRows(rows)
			},
			want: []byte(`[{"id":"user-1"}]`),
		},
		{
			name: "missing key returns ErrDocumentNotFound",
			key:  domain.SessionKey,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc`).
					WithArgs(domain.SessionKey).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrDocumentNotFound,
		},
		{
			name: "db error",
			key:  domain.AccountsKey,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewDocumentStore(db)
			got, err := store.Load(ctx, tt.key)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_Save(t *testing.T) {
	ctx := context.Background()
	doc := []byte(`[{"id":"user-1","email":"user@example.com"}]`)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "insert",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents`).
					WithArgs(domain.AccountsKey, doc).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "upsert existing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents`).
					WithArgs(domain.AccountsKey, doc).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewDocumentStore(db)
			err = store.Save(ctx, domain.AccountsKey, doc)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM documents`).
		WithArgs(domain.SessionKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewDocumentStore(db)
	require.NoError(t, store.Delete(ctx, domain.SessionKey))
	require.NoError(t, mock.ExpectationsWereMet())
}
