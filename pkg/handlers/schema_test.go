package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       func(sqlmock.Sqlmock)
		code        int
		body        string
	}{
		{
			"tables are listed",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
					sqlmock.NewRows([]string{"table_name"}).
						AddRow("estonian_tender_details").
						AddRow("estonian_tenders"),
				)
			},
			200,
			`{"tables":["estonian_tender_details","estonian_tenders"]}`,
		},
		{
			"empty database",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT table_name`).WillReturnRows(
					sqlmock.NewRows([]string{"table_name"}),
				)
			},
			200,
			`{"tables":null}`,
		},
		{
			"database error",
			func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT table_name`).WillReturnError(assert.AnError)
			},
			500,
			``,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body bytes.Buffer

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			tc.given(mock)

			cfg := testConfig(db, &fixedTranslator{}, io.Discard)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/tables", &bytes.Buffer{})

			Tables(cfg).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			require.NoError(t, mock.ExpectationsWereMet())
			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Contains(t, body.String(), tc.body)
		})
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mockTenderSchema(mock)

	cfg := testConfig(db, &fixedTranslator{}, io.Discard)

	var body bytes.Buffer
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/schema", &bytes.Buffer{})

	Schema(cfg).ServeHTTP(w, r)

	actual := w.Result()
	defer func() { _ = actual.Body.Close() }()

	_, _ = io.Copy(&body, actual.Body)

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 200, actual.StatusCode)
	assert.Contains(t, body.String(), `Table: estonian_tenders`)
	assert.Contains(t, body.String(), `title (text)`)
}
