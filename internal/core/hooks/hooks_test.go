package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/l10n_addons/internal/core/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct{ value int }

func TestConstraints_CheckRunsTriggeredOnly(t *testing.T) {
	ctx := context.Background()
	var ran []string
	c := hooks.NewConstraints[record]()
	c.Register(hooks.Constraint[record]{
		Name:     "currency",
		Triggers: []string{"currency", "method"},
		Check: func(ctx context.Context, r record) error {
			ran = append(ran, "currency")
			return nil
		},
	})
	c.Register(hooks.Constraint[record]{
		Name:     "partner_bank",
		Triggers: []string{"partner_bank", "method"},
		Check: func(ctx context.Context, r record) error {
			ran = append(ran, "partner_bank")
			if r.value < 0 {
				return errors.New("negative")
			}
			return nil
		},
	})

	require.NoError(t, c.Check(ctx, record{}, []string{"amount"}))
	assert.Empty(t, ran)

	require.NoError(t, c.Check(ctx, record{}, []string{"currency"}))
	assert.Equal(t, []string{"currency"}, ran)

	ran = nil
	require.NoError(t, c.Check(ctx, record{}, nil))
	assert.Equal(t, []string{"currency", "partner_bank"}, ran)

	assert.EqualError(t, c.Check(ctx, record{value: -1}, []string{"method"}), "negative")
	assert.Equal(t, []string{"currency", "partner_bank"}, c.Names())
}

func TestChain_FirstClaimingHandlerWins(t *testing.T) {
	ctx := context.Background()
	chain := hooks.NewChain[int, string]("global_invoice.create")
	chain.Append("fallback", func(ctx context.Context, req int) (string, bool, error) {
		return "fallback", true, nil
	})
	chain.Prepend("even", func(ctx context.Context, req int) (string, bool, error) {
		if req%2 != 0 {
			return "", false, nil
		}
		return "even", true, nil
	})

	res, err := chain.Run(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "even", res)

	res, err = chain.Run(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "fallback", res)
	assert.Equal(t, "global_invoice.create", chain.Operation())
}

func TestChain_NotHandled(t *testing.T) {
	chain := hooks.NewChain[int, string]("noop")
	_, err := chain.Run(context.Background(), 1)
	assert.ErrorIs(t, err, hooks.ErrNotHandled)
}

func TestPaymentMethods(t *testing.T) {
	r := hooks.NewPaymentMethods()
	r.Register("aba_ct", true, true)
	r.Register("cheque", true, false)

	assert.True(t, r.UsesBankAccount("aba_ct"))
	assert.True(t, r.NeedsBankAccount("aba_ct"))
	assert.True(t, r.UsesBankAccount("cheque"))
	assert.False(t, r.NeedsBankAccount("cheque"))
	assert.False(t, r.UsesBankAccount("manual"))
}
