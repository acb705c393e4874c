package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/devlink/pkg/apperror"
)

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	require.NoError(t, RequireOwner("post", owner, owner))

	err := RequireOwner("post", owner, stranger)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrPermission)
}

func TestRequire_WithExtractor(t *testing.T) {
	type doc struct {
		ownerID uuid.UUID
	}
	owner := uuid.New()
	d := doc{ownerID: owner}
	extract := func(d doc) uuid.UUID { return d.ownerID }

	require.NoError(t, Require("document", extract, d, owner))

	err := Require("document", extract, d, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrPermission)
}
