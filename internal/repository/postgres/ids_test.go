package postgres

import (
	"context"
	"testing"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("7f1d2c3e-8a9b-4c5d-9e0f-1a2b3c4d5e6f"))
	assert.False(t, isUUID(""))
	assert.False(t, isUUID("not-a-uuid"))
	assert.False(t, isUUID("42"))
}

// The repositories below hold a nil pool, so any query would panic.
func TestMalformedIDsSkipTheDatabase(t *testing.T) {
	ctx := context.Background()
	const owner = "0b6f3c1e-2d4a-4e8b-9c7d-5a6b7c8d9e0f"

	t.Run("Should report a missing project", func(t *testing.T) {
		repo := NewProjectRepository(nil)
		p, err := repo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, p)
	})

	t.Run("Should ignore updates and deletes", func(t *testing.T) {
		projects := NewProjectRepository(nil)
		assert.NoError(t, projects.Update(ctx, &domain.Project{ID: "abc", UserID: owner}))
		assert.NoError(t, projects.Delete(ctx, "abc", owner))

		certs := NewCertificationRepository(nil)
		assert.NoError(t, certs.Update(ctx, &domain.Certification{ID: "1", UserID: owner}))
		assert.NoError(t, certs.Delete(ctx, "1", owner))

		exps := NewExperienceRepository(nil)
		assert.NoError(t, exps.Update(ctx, &domain.Experience{ID: "x", UserID: owner}))
		assert.NoError(t, exps.Delete(ctx, "x", owner))

		contacts := NewContactRepository(nil)
		assert.NoError(t, contacts.MarkRead(ctx, "nope"))
		assert.NoError(t, contacts.SetArchived(ctx, "nope", true))
		assert.NoError(t, contacts.Delete(ctx, "nope"))
	})
}
