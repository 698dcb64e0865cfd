package migrations

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колонки, которые репозитории заполняют из указательных полей модели:
// при nil значении в строку записывается NULL, поэтому схема обязана
// допускать NULL для каждой из них
var nullableColumns = map[string]int{
	"note":                2, // bookings и change_requests
	"description":         1,
	"cancellation_reason": 1,
	"cancelled_at":        1,
	"new_staff_id":        1,
}

func TestInitSchema_PointerBackedColumnsAllowNull(t *testing.T) {
	raw, err := os.ReadFile("001_init.sql")
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if _, ok := nullableColumns[name]; !ok {
			continue
		}

		seen[name]++
		assert.NotContains(t, strings.ToUpper(line), "NOT NULL",
			"column %q is bound from a nullable field and must allow NULL", name)
	}

	for name, want := range nullableColumns {
		assert.Equal(t, want, seen[name], "column %q declarations in schema", name)
	}
}
