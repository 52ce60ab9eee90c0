package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twistylab/cubesim"
)

func TestSolveReturnsMoves(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/solve", r.URL.Path)

		var req solveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Facelets, 54)

		json.NewEncoder(w).Encode(solveResponse{Solution: "R2 U' F"})
	}))
	defer srv.Close()

	facelets, err := cubesim.New().Encode()
	require.NoError(t, err)

	moves, err := New(srv.URL).Solve(context.Background(), facelets)
	require.NoError(t, err)
	assert.Equal(t, []cubesim.Move{cubesim.R, cubesim.R, cubesim.UPrime, cubesim.F}, moves)
}

func TestSolvePassesSolverErrorThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(solveResponse{Error: "unsolvable facelet string"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Solve(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrSolveFailed)
	assert.Contains(t, err.Error(), "unsolvable facelet string")
}

func TestSolveUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", WithTimeout(500*time.Millisecond))
	_, err := c.Solve(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestSolveRejectsBadSolution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(solveResponse{Solution: "R Q Z"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Solve(context.Background(), "x")
	require.Error(t, err)
	require.ErrorIs(t, err, cubesim.ErrInvalidNotation)
}
