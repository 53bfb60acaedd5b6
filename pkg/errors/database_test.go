package errors

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDatabase(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want DatabaseCode
	}{
		"nil":          {err: nil, want: ""},
		"no rows":      {err: sql.ErrNoRows, want: CodeAccessDenied},
		"wrapped none": {err: fmt.Errorf("find: %w", sql.ErrNoRows), want: CodeAccessDenied},
		"unique":       {err: &pq.Error{Code: "23505"}, want: CodeDuplicateRecord},
		"foreign key":  {err: &pq.Error{Code: "23503"}, want: CodeInvalidReference},
		"check":        {err: &pq.Error{Code: "23514"}, want: CodeInvalidData},
		"privilege":    {err: &pq.Error{Code: "42501"}, want: CodeInsufficientPermissions},
		"other pq":     {err: &pq.Error{Code: "40001"}, want: CodeUnknown},
		"plain":        {err: fmt.Errorf("boom"), want: CodeUnknown},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDatabase(tc.err))
		})
	}
}

func TestDatabaseMessage(t *testing.T) {
	assert.Equal(t, "A record with this information already exists", DatabaseMessage(&pq.Error{Code: "23505"}))
	assert.Equal(t, "An unexpected error occurred", DatabaseMessage(fmt.Errorf("x")))
}
