package schema

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbenv "github.com/tendly/tenderchat/pkg/env/db"
)

func TestDescribePostgres(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
		sqlmock.NewRows([]string{"table_name"}).
			AddRow("estonian_tender_details").
			AddRow("estonian_tenders"),
	)
	mock.ExpectQuery(`SELECT column_name, data_type, is_nullable`).
		WithArgs("estonian_tender_details").
		WillReturnRows(
			sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable"}).
				AddRow("procurement_id", "INTEGER", "NO").
				AddRow("estimated_cost", "NUMERIC", "YES"),
		)
	mock.ExpectQuery(`SELECT column_name, data_type, is_nullable`).
		WithArgs("estonian_tenders").
		WillReturnRows(
			sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable"}).
				AddRow("id", "integer", "NO").
				AddRow("title", "text", "YES").
				AddRow("category", "text", "YES"),
		)

	actual, err := NewIntrospector(db, dbenv.DriverType("postgres")).Describe(context.TODO())
	require.NoError(t, err)

	expected := &Description{
		Tables: []Table{
			{
				Name: "estonian_tender_details",
				Columns: []Column{
					{Name: "procurement_id", Type: "integer", Nullable: false},
					{Name: "estimated_cost", Type: "numeric", Nullable: true},
				},
			},
			{
				Name: "estonian_tenders",
				Columns: []Column{
					{Name: "id", Type: "integer", Nullable: false},
					{Name: "title", Type: "text", Nullable: true},
					{Name: "category", Type: "text", Nullable: true},
				},
			},
		},
	}
	assert.Equal(t, expected, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeEmptyDatabase(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
		sqlmock.NewRows([]string{"table_name"}),
	)

	actual, err := NewIntrospector(db, dbenv.DriverType("mysql")).Describe(context.TODO())
	require.NoError(t, err)

	assert.Empty(t, actual.Tables)
	assert.Empty(t, actual.TableNames())
	assert.Equal(t, "", actual.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableNames(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Only the listing query runs; columns are never described.
	mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
		sqlmock.NewRows([]string{"table_name"}).
			AddRow("estonian_tender_details").
			AddRow("estonian_tenders"),
	)

	actual, err := NewIntrospector(db, dbenv.DriverType("postgres")).TableNames(context.TODO())
	require.NoError(t, err)

	assert.Equal(t, []string{"estonian_tender_details", "estonian_tenders"}, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableNamesEmptyDatabase(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
		sqlmock.NewRows([]string{"table_name"}),
	)

	actual, err := NewIntrospector(db, dbenv.DriverType("postgres")).TableNames(context.TODO())
	require.NoError(t, err)

	assert.Nil(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeSQLite(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT name`).WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("tenders"),
	)
	mock.ExpectQuery(regexp.QuoteMeta(`PRAGMA table_info("tenders")`)).WillReturnRows(
		sqlmock.NewRows([]string{"cid", "name", "type", "notnull", "dflt_value", "pk"}).
			AddRow(0, "id", "INTEGER", 1, nil, 1).
			AddRow(1, "title", "TEXT", 0, nil, 0),
	)

	actual, err := NewIntrospector(db, dbenv.DriverType("sqlite")).Describe(context.TODO())
	require.NoError(t, err)

	expected := &Description{
		Tables: []Table{
			{
				Name: "tenders",
				Columns: []Column{
					{Name: "id", Type: "integer", Nullable: false},
					{Name: "title", Type: "text", Nullable: true},
				},
			},
		},
	}
	assert.Equal(t, expected, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeUnsupportedDriver(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = NewIntrospector(db, dbenv.DriverType("oracle")).Describe(context.TODO())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestDescribeConnectionError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT table_name`).WillReturnError(assert.AnError)

	_, err = NewIntrospector(db, dbenv.DriverType("postgres")).Describe(context.TODO())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to list tables")
}
