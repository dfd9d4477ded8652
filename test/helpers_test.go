//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/middleware"
)

// do sends an authenticated JSON request and decodes a 2xx response into out.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body, out any) int {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "GymLog/test")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, testToken)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	if out != nil && resp.StatusCode < 300 {
		require.NoError(s.T(), json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) cleanDB(ctx context.Context) {
	_, err := s.dbPool.Exec(ctx, "TRUNCATE sets, sessions, plan_exercises, plans, exercises CASCADE")
	require.NoError(s.T(), err)
}
