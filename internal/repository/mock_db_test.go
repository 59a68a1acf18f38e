package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// statementLog records every statement gorm runs, with its values inlined
type statementLog struct {
	gormlogger.Interface

	mu         sync.Mutex
	statements []string
}

func (l *statementLog) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *statementLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statements = append(l.statements, sql)
}

// find returns the first statement containing fragment, or ""
func (l *statementLog) find(fragment string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.statements {
		if strings.Contains(s, fragment) {
			return s
		}
	}
	return ""
}

func (l *statementLog) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.statements) == 0 {
		return ""
	}
	return l.statements[len(l.statements)-1]
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *statementLog) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := &statementLog{Interface: gormlogger.Discard}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 log,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, mock, log
}
