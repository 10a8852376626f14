package repositories

import (
	"encoding/json"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	apperrors "crm-system/pkg/errors"
)

// buildUpdateQuery переводит произвольный частичный набор полей в один
// параметризованный UPDATE. Поле id отбрасывается (идентификатор не
// изменяется), имена колонок берутся только из реестра ресурса, значения
// коллекций сериализуются в JSON, пустой deadline превращается в NULL.
// Пустой итоговый набор — ошибка ErrNoFieldsProvided.
func buildUpdateQuery(res Resource, id uint64, fields map[string]interface{}) (string, []interface{}, error) {
	columns := res.FieldColumns()

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == "id" {
			continue
		}
		if _, ok := columns[key]; !ok {
			return "", nil, apperrors.NewInvalidInputError("неизвестное поле %q для ресурса %q", key, res.Table())
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return "", nil, apperrors.ErrNoFieldsProvided
	}
	sort.Strings(keys)

	builder := sq.Update(res.Table()).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	for _, key := range keys {
		value := fields[key]
		column := columns[key]
		switch {
		case res.IsStructuredField(key):
			raw, err := json.Marshal(value)
			if err != nil {
				return "", nil, fmt.Errorf("ошибка сериализации поля %q: %w", key, err)
			}
			builder = builder.Set(column, string(raw))
		case key == "deadline" && value == "":
			// Дата не может храниться как пустой текст.
			builder = builder.Set(column, nil)
		default:
			builder = builder.Set(column, value)
		}
	}

	return builder.Suffix("RETURNING *").ToSql()
}
