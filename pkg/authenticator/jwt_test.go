package authenticator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/userhub/backend/pkg/authenticator"
)

type payload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("sub", payload{ID: "1", Name: "john"})
	require.NoError(t, err)

	got, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, payload{ID: "1", Name: "john"}, got)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", -time.Minute)
	token, err := engine.Generate("sub", payload{ID: "1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("sub", payload{ID: "1"})
	require.NoError(t, err)

	other := authenticator.NewTokenEngine[payload]("another-secret", time.Minute)
	_, err = other.Verify(token)
	require.Error(t, err)
}
