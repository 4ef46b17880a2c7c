package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/procenv"
)

func ev(k, v string) procenv.EnvVar { return procenv.EnvVar{Key: k, Value: v} }

func TestFormatEnvNoFilterIncludesKeys(t *testing.T) {
	got := formatEnv([]procenv.EnvVar{ev("K1", "123"), ev("K2", "abc")}, nil, "\n")
	require.Equal(t, "K1=123\nK2=abc", got)
}

func TestFormatEnvWithFilterOmitsKeys(t *testing.T) {
	got := formatEnv([]procenv.EnvVar{ev("K1", "123"), ev("K2", "abc")}, []string{"K2"}, "\n")
	require.Equal(t, "abc", got)
}

func TestFormatEnvFilterPreservesEnvOrderNotFilterOrder(t *testing.T) {
	env := []procenv.EnvVar{ev("K1", ""), ev("K2", "abc"), ev("K3", "123")}
	got := formatEnv(env, []string{"K3", "K1", "NOT_A_KEY"}, "\n")
	require.Equal(t, "\n123", got)
}

func TestFormatEnvEmpty(t *testing.T) {
	require.Equal(t, "", formatEnv(nil, nil, "\n"))
	require.Equal(t, "", formatEnv(nil, []string{"K1"}, "\n"))
}
