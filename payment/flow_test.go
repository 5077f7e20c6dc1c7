package payment

import (
	"context"
	"errors"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnightgrove/error_messages"
)

// --- Setup ---

func setupFlowTest() (*Flow, *mockProvider, *mockMailingList, *mockCartClearer) {
	provider := &mockProvider{}
	mailingList := &mockMailingList{}
	carts := &mockCartClearer{}
	logger := log.New()
	logger.SetOutput(io.Discard)
	return NewFlow(provider, mailingList, carts, logger), provider, mailingList, carts
}

func beginReady(t *testing.T, flow *Flow) {
	t.Helper()
	require.NoError(t, flow.Begin("pi_123_secret_abc", "key-1", "dana@example.test"))
	require.NoError(t, flow.Ready())
}

// --- Tests ---

func TestFlow_HappyPath(t *testing.T) {
	flow, provider, mailingList, carts := setupFlowTest()

	assert.Equal(t, StateIdle, flow.State())
	beginReady(t, flow)
	assert.Equal(t, StateReady, flow.State())

	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateSucceeded, flow.State())
	assert.Equal(t, 1, provider.calls)
	assert.NotEmpty(t, flow.Confirmation())
	assert.Equal(t, "/order-confirmation?ref="+flow.Confirmation(), flow.RedirectURL())
	assert.Equal(t, []string{"key-1"}, carts.cleared)
	assert.Equal(t, []string{"dana@example.test"}, mailingList.registered)
}

func TestFlow_IllegalTransitions(t *testing.T) {
	flow, _, _, _ := setupFlowTest()

	assert.ErrorIs(t, flow.Ready(), error_messages.ErrFlowState, "ready before begin")
	assert.ErrorIs(t, flow.Submit(context.Background()), error_messages.ErrFlowState, "submit before begin")

	require.NoError(t, flow.Begin("secret", "key-1", ""))
	assert.ErrorIs(t, flow.Begin("secret", "key-1", ""), error_messages.ErrFlowState, "double begin")
	assert.ErrorIs(t, flow.Submit(context.Background()), error_messages.ErrFlowState, "submit while loading")
}

func TestFlow_DeclineSurfacedVerbatim(t *testing.T) {
	flow, provider, _, carts := setupFlowTest()
	provider.err = &DeclineError{Message: "Your card was declined."}
	beginReady(t, flow)

	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, "Your card was declined.", flow.LastError())
	assert.Empty(t, carts.cleared)
	assert.Empty(t, flow.Confirmation())
}

func TestFlow_TransportErrorMappedToGenericMessage(t *testing.T) {
	flow, provider, _, _ := setupFlowTest()
	provider.err = errors.New("connection reset by peer")
	beginReady(t, flow)

	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, GenericFailureMessage, flow.LastError())
}

func TestFlow_FailedIsReentrant(t *testing.T) {
	flow, provider, _, carts := setupFlowTest()
	provider.err = &DeclineError{Message: "Insufficient funds."}
	beginReady(t, flow)

	require.NoError(t, flow.Submit(context.Background()))
	require.Equal(t, StateFailed, flow.State())

	provider.err = nil
	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateSucceeded, flow.State())
	assert.Empty(t, flow.LastError(), "stale error cleared on resubmit")
	assert.Equal(t, 2, provider.calls)
	assert.Equal(t, []string{"key-1"}, carts.cleared)
}

func TestFlow_SuccessIsTerminal(t *testing.T) {
	flow, _, _, carts := setupFlowTest()
	beginReady(t, flow)
	require.NoError(t, flow.Submit(context.Background()))

	assert.ErrorIs(t, flow.Submit(context.Background()), error_messages.ErrFlowState)
	assert.Len(t, carts.cleared, 1, "cart cleared exactly once")
}

func TestFlow_MailingFailureSwallowed(t *testing.T) {
	flow, _, mailingList, carts := setupFlowTest()
	mailingList.err = errors.New("mailing service down")
	beginReady(t, flow)

	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateSucceeded, flow.State(), "mailing failure must not fail the success path")
	assert.NotEmpty(t, flow.Confirmation())
	assert.Equal(t, []string{"key-1"}, carts.cleared)
}

func TestFlow_NoEmailSkipsMailingList(t *testing.T) {
	flow, _, mailingList, _ := setupFlowTest()
	require.NoError(t, flow.Begin("secret", "key-1", ""))
	require.NoError(t, flow.Ready())

	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, StateSucceeded, flow.State())
	assert.Empty(t, mailingList.registered)
}

// --- Mocks ---

type mockProvider struct {
	err   error
	calls int
}

func (m *mockProvider) Confirm(ctx context.Context, clientSecret string) error {
	m.calls++
	return m.err
}

type mockMailingList struct {
	err        error
	registered []string
}

func (m *mockMailingList) Register(ctx context.Context, email string) error {
	m.registered = append(m.registered, email)
	return m.err
}

type mockCartClearer struct {
	cleared []string
}

func (m *mockCartClearer) Clear(storageKey string) {
	m.cleared = append(m.cleared, storageKey)
}
