package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	sql := `CREATE TABLE a (id INT);

CREATE INDEX idx_a ON a(id);
`
	stmts := splitStatements(sql)
	assert.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id INT)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a(id)", stmts[1])
}

func TestSplitStatementsEmbeddedSchema(t *testing.T) {
	stmts := splitStatements(schemaSQL)
	assert.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotEmpty(t, s)
	}
}
