package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"Postline/internal/core/posts"
)

// The counter column name is interpolated into SQL, so the whitelist must
// reject anything that isn't one of the two known fields before the query
// is ever built.
func TestIncrementCounter_RejectsUnknownField(t *testing.T) {
	repo := &postgresPostRepo{db: nil} // the guard fires before db use

	err := repo.IncrementCounter(context.Background(), "p1", posts.CounterField(`"numberOfLikes" = 0 --`), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown counter field")

	err = repo.IncrementCounter(context.Background(), "p1", posts.CounterField(""), -1)
	assert.Error(t, err)
}
