package openai_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/integrations/openai"
	"github.com/abdelrahmanemad10/GYM/internal/models"
)

func newTestClient(t *testing.T, apiURL string) *openai.Client {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{OpenAIKey: "test-key", OpenAIURL: apiURL}
	client, err := openai.NewClient(cfg, logger)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresKey(t *testing.T) {
	logger := logrus.New()
	_, err := openai.NewClient(&config.Config{}, logger)
	assert.Error(t, err)
}

func TestDietPlan(t *testing.T) {
	var gotAuth string
	var gotReq openai.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "  Breakfast: oats.\nLunch: chicken.  "}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	weight := 64.0
	height := 175.0
	plan, err := client.DietPlan(&models.User{Username: "amr", WeightKG: &weight, HeightCM: &height})
	require.NoError(t, err)

	assert.Equal(t, "Breakfast: oats.\nLunch: chicken.", plan)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, "64.0 kg")
	assert.Contains(t, gotReq.Messages[1].Content, "175 cm")
	assert.Contains(t, gotReq.Messages[1].Content, "Push 1")
}

func TestDietPlan_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.DietPlan(&models.User{Username: "amr"})
	assert.ErrorContains(t, err, "rate limited")
}

func TestDietPlan_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.DietPlan(&models.User{Username: "amr"})
	assert.Error(t, err)
}
