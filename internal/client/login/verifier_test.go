package login

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/staffdesk/internal/client/client"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		findErr  error
		wantID   string
		wantErr  error
	}{
		{name: "active account", username: "amal", password: "correct", wantID: amal.ID},
		{name: "username is trimmed", username: "  amal\t", password: "correct", wantID: amal.ID},
		{name: "wrong password", username: "amal", password: "wrong", wantErr: ErrCredentialMismatch},
		{name: "unknown user", username: "ghost", password: "correct", wantErr: ErrCredentialMismatch},
		{name: "empty input", username: "", password: "", wantErr: ErrCredentialMismatch},
		{name: "inactive account", username: "khaled", password: "correct", wantErr: ErrAccountInactive},
		{name: "inactive with wrong password", username: "khaled", password: "wrong", wantErr: ErrCredentialMismatch},
		{name: "not found from store", username: "amal", password: "correct", findErr: fmt.Errorf("wrap: %w", common.ErrorNotFound), wantErr: ErrCredentialMismatch},
		{name: "store unavailable", username: "amal", password: "correct", findErr: client.ErrUnavailable, wantErr: ErrStoreUnavailable},
		{name: "unknown store error", username: "amal", password: "correct", findErr: errors.New("boom"), wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreFake()
			store.findErr = tt.findErr

			got, err := NewVerifier(store).Verify(context.Background(), tt.username, []byte(tt.password))

			require.Len(t, store.lookups, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "hr", got.Role.Name)
		})
	}
}

func TestVerifier_InactiveIsDistinctFromMismatch(t *testing.T) {
	v := NewVerifier(newStoreFake())

	_, err := v.Verify(context.Background(), "khaled", []byte("correct"))
	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.NotErrorIs(t, err, ErrCredentialMismatch)
	assert.Equal(t, KindInactiveAccount, Classify(err))
}

func TestVerifier_StoreErrorKeepsCause(t *testing.T) {
	store := newStoreFake()
	store.findErr = client.ErrUnavailable

	_, err := NewVerifier(store).Verify(context.Background(), "amal", []byte("correct"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, []lookup{{"amal", "correct"}}, store.lookups)
}
