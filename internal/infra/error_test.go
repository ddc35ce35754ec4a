//go:build unit

package infra_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := infra.WrapRepoErr(logger, infra.KindNotFound, "product x not found", nil)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: product x not found", err.Error())

	wrapped := errs.Wrap(err, "lookup")
	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("other"), infra.KindNotFound))
}

func TestProviderError(t *testing.T) {
	t.Run("upstream status message", func(t *testing.T) {
		err := infra.NewProviderError(infra.KindUpstreamStatus, "create customer", 400, `{"error":"x"}`, nil)
		assert.Equal(t, "UPSTREAM_STATUS: create customer: status 400", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("transport keeps the cause", func(t *testing.T) {
		err := infra.NewProviderError(infra.KindTransport, "create payment link", 0, "", context.DeadlineExceeded)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "TRANSPORT: create payment link: context deadline exceeded", err.Error())
	})

	t.Run("reachable through marks and wraps", func(t *testing.T) {
		sentinel := errs.New("customer failed")
		err := errs.Wrap(errs.Mark(infra.NewProviderError(infra.KindUpstreamStatus, "create customer", 502, "bad gateway", nil), sentinel), "checkout")

		pe, ok := infra.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, 502, pe.StatusCode)
		assert.Equal(t, "bad gateway", pe.Body)
		assert.True(t, infra.IsProviderKind(err, infra.KindUpstreamStatus))
		assert.False(t, infra.IsProviderKind(err, infra.KindTransport))
		assert.True(t, errs.Is(err, sentinel))
	})
}
