package common

import (
	"os"
	"testing"
	"time"

	"varaamo/pkg/client"
)

// IntegrationTestSuite drives a running reservations service over HTTP.
// Tests are skipped unless TEST_SERVER_URL points at one.
type IntegrationTestSuite struct {
	Client    *client.ReservationClient
	ServerURL string
}

func NewIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set, skipping integration test")
	}

	suite := &IntegrationTestSuite{
		Client:    client.NewReservationClient(serverURL),
		ServerURL: serverURL,
	}

	if err := suite.Client.WaitForHealthy(10 * time.Second); err != nil {
		t.Fatalf("service at %s is not healthy: %v", serverURL, err)
	}

	return suite
}
