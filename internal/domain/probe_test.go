package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackathon/starter-api/internal/domain"
)

func TestProbeResult_Variants(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := domain.ProbeOK()
		assert.True(t, r.OK)
		assert.Equal(t, "db ok", r.Detail)
	})

	t.Run("failed", func(t *testing.T) {
		r := domain.ProbeFailed(domain.ErrDatabaseURLNotSet.Error())
		assert.False(t, r.OK)
		assert.Equal(t, "DATABASE_URL is not set", r.Detail)
	})

	t.Run("runtime error", func(t *testing.T) {
		r := domain.ProbeError("ConnectError", errors.New("connection refused"))
		assert.False(t, r.OK)
		assert.Equal(t, "db error: ConnectError: connection refused", r.Detail)
	})
}
