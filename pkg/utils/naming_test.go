package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"company_name":   "companyName",
		"activity_log":   "activityLog",
		"id":             "id",
		"contact_person": "contactPerson",
		"parent_id":      "parentId",
		"city":           "city",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToCamelCase(in), "ключ %q", in)
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"companyName":   "company_name",
		"activityLog":   "activity_log",
		"id":            "id",
		"contactPerson": "contact_person",
		"clientId":      "client_id",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), "ключ %q", in)
	}
}

// Круговой тест на сгенерированных ASCII-идентификаторах без цифр на
// границах регистра: camel → snake → camel должен вернуть исходный ключ.
func TestNamingRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	words := []string{"client", "company", "name", "log", "person", "status", "city", "info"}

	for i := 0; i < 200; i++ {
		key := words[rnd.Intn(len(words))]
		for n := rnd.Intn(3); n > 0; n-- {
			w := words[rnd.Intn(len(words))]
			key += string(w[0]-('a'-'A')) + w[1:]
		}
		assert.Equal(t, key, ToCamelCase(ToSnakeCase(key)), "ключ %q", key)
	}
}
