package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintRef(v uint) *uint { return &v }

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestStatsRepository_CountEnrollments_IDFilters(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).WillReturnRows(countRows(4))

	count, err := repo.CountEnrollments(context.Background(), models.StatsFilters{
		Year:  &models.Ref{ID: uintRef(2)},
		Class: &models.Ref{ID: uintRef(5)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	require.NoError(t, mock.ExpectationsWereMet())

	sql := log.last()
	assert.Contains(t, sql, `COUNT(DISTINCT("affectations"."id"))`)
	assert.Contains(t, sql, "LEFT JOIN classes ON classes.id = affectations.classe_aff")
	assert.Contains(t, sql, "LEFT JOIN annees ON annees.id = affectations.annee_aff")
	assert.Contains(t, sql, "affectations.annee_aff = 2 AND affectations.classe_aff = 5")
	assert.NotContains(t, sql, "annee_scolaire")
	assert.NotContains(t, sql, "lib_classe")
}

func TestStatsRepository_CountEnrollments_LabelFilters(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).WillReturnRows(countRows(1))

	_, err := repo.CountEnrollments(context.Background(), models.StatsFilters{
		Year:  &models.Ref{Label: "2024-2025"},
		Class: &models.Ref{Label: "6e A"},
		Level: &models.Ref{Label: "Collège"},
		Track: &models.Ref{ID: uintRef(2)},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	sql := log.last()
	assert.Contains(t, sql, "annees.annee_scolaire = '2024-2025' AND classes.lib_classe = '6e A'"+
		" AND classes.niveau_classe = 'clg' AND classes.option_classe = 'sm'")
	assert.NotContains(t, sql, "affectations.annee_aff =")
	assert.NotContains(t, sql, "1 = 0")
}

func TestStatsRepository_UnknownLevelOrTrackMatchesNothing(t *testing.T) {
	tests := []struct {
		name    string
		filters models.StatsFilters
		kept    string
	}{
		{
			name:    "unknown level label",
			filters: models.StatsFilters{Level: &models.Ref{Label: "université"}, Track: &models.Ref{Label: "se"}},
			kept:    "classes.option_classe = 'se'",
		},
		{
			name:    "track index out of range",
			filters: models.StatsFilters{Level: &models.Ref{ID: uintRef(1)}, Track: &models.Ref{ID: uintRef(40)}},
			kept:    "classes.niveau_classe = 'cre'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, log := newMockDB(t)
			repo := NewStatsRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).WillReturnRows(countRows(0))

			count, err := repo.CountEnrollments(context.Background(), tt.filters)
			require.NoError(t, err)
			assert.Zero(t, count)
			require.NoError(t, mock.ExpectationsWereMet())

			sql := log.last()
			assert.Contains(t, sql, "1 = 0")
			assert.Contains(t, sql, tt.kept)
		})
	}
}

func TestStatsRepository_CountEnrollments_NoFilters(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).WillReturnRows(countRows(7))

	count, err := repo.CountEnrollments(context.Background(), models.StatsFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NotContains(t, log.last(), "WHERE")
}

func TestStatsRepository_Rows(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStatsRepository(db)

	columns := []string{"payment_record_id", "class_label", "level", "track", "discounted_fee", "total_paid"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "recouvrements"`)).WillReturnRows(
		sqlmock.NewRows(columns).
			AddRow(3, "6e A", "clg", nil, "810000.00", "270000.00").
			AddRow(8, nil, nil, nil, nil, "0"),
	)

	rows, err := repo.Rows(context.Background(), models.StatsFilters{Year: &models.Ref{ID: uintRef(2)}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, rows, 2)

	assert.Equal(t, uint(3), rows[0].PaymentRecordID)
	require.NotNil(t, rows[0].ClassLabel)
	assert.Equal(t, "6e A", *rows[0].ClassLabel)
	assert.Nil(t, rows[0].Track)
	require.NotNil(t, rows[0].DiscountedFee)
	assert.True(t, rows[0].DiscountedFee.Equal(decimal.NewFromInt(810000)))
	assert.True(t, rows[0].TotalPaid.Equal(decimal.NewFromInt(270000)))
	assert.Nil(t, rows[1].ClassLabel)
	assert.Nil(t, rows[1].DiscountedFee)

	sql := log.last()
	assert.Contains(t, sql, "JOIN affectations ON affectations.id = recouvrements.affectation")
	assert.Contains(t, sql, "WHERE affectations.annee_aff = 2")
	assert.Contains(t, sql, "ORDER BY recouvrements.id ASC")
}

func TestStatsRepository_GlobalCounts(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "affectations"`)).WillReturnRows(countRows(12))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "recouvrements"`)).WillReturnRows(countRows(9))

	enrollments, records, err := repo.GlobalCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), enrollments)
	assert.Equal(t, int64(9), records)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, log.last(), "WHERE")
}
