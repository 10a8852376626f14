package repositories

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResultRow подменяет строку RETURNING * без подключения к базе.
type fakeResultRow struct {
	names  []string
	values []interface{}
}

var _ pgx.Rows = (*fakeResultRow)(nil)

func (f *fakeResultRow) Close()     {}
func (f *fakeResultRow) Err() error { return nil }
func (f *fakeResultRow) CommandTag() pgconn.CommandTag {
	return pgconn.CommandTag{}
}
func (f *fakeResultRow) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(f.names))
	for i, name := range f.names {
		fds[i].Name = name
	}
	return fds
}
func (f *fakeResultRow) Next() bool                     { return false }
func (f *fakeResultRow) Scan(_ ...any) error            { return nil }
func (f *fakeResultRow) Values() ([]interface{}, error) { return f.values, nil }
func (f *fakeResultRow) RawValues() [][]byte            { return nil }
func (f *fakeResultRow) Conn() *pgx.Conn                { return nil }

func TestScanRecordRow_Request(t *testing.T) {
	rows := &fakeResultRow{
		names: []string{"id", "client_id", "status", "tasks", "comments", "activity_log"},
		values: []interface{}{
			int64(7), int64(42), "Новая заявка",
			`[{"text":"Позвонить клиенту","completed":false}]`,
			"[]",
			`[{"timestamp":"2026-01-15","author":"Иванов И.","text":"Заявка создана"}]`,
		},
	}

	record, err := scanRecordRow(rows, ResourceRequests)
	require.NoError(t, err)

	// Имена колонок выходят наружу в camelCase.
	assert.Equal(t, int64(42), record["clientId"])
	assert.Equal(t, "Новая заявка", record["status"])

	// Коллекции возвращаются массивами, а не сериализованным текстом.
	tasks, ok := record["tasks"].([]interface{})
	require.True(t, ok)
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]interface{})
	assert.Equal(t, "Позвонить клиенту", task["text"])
	assert.Equal(t, false, task["completed"])

	comments, ok := record["comments"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, comments)

	log, ok := record["activityLog"].([]interface{})
	require.True(t, ok)
	require.Len(t, log, 1)
	assert.Equal(t, "Заявка создана", log[0].(map[string]interface{})["text"])
}

func TestScanRecordRow_NonRequestKeepsText(t *testing.T) {
	rows := &fakeResultRow{
		names:  []string{"id", "company_name", "contacts"},
		values: []interface{}{int64(1), "ОсОО Ромашка", "555-0100"},
	}

	record, err := scanRecordRow(rows, ResourceClients)
	require.NoError(t, err)

	assert.Equal(t, "ОсОО Ромашка", record["companyName"])
	assert.Equal(t, "555-0100", record["contacts"])
}

func TestRawArrayOrEmpty(t *testing.T) {
	cases := []struct {
		name string
		in   json.RawMessage
		want string
	}{
		{"nil", nil, "[]"},
		{"null", json.RawMessage("null"), "[]"},
		{"пустой массив", json.RawMessage("[]"), "[]"},
		{"непустой массив", json.RawMessage(`[{"text":"а"}]`), `[{"text":"а"}]`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rawArrayOrEmpty(tc.in), "случай %q", tc.name)
	}
}
