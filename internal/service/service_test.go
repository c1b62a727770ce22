package service_test

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/models"
	"github.com/abdelrahmanemad10/GYM/internal/repository"
	"github.com/abdelrahmanemad10/GYM/internal/service"
)

type fakeDietGenerator struct {
	plan string
	err  error
}

func (f *fakeDietGenerator) DietPlan(user *models.User) (string, error) {
	return f.plan, f.err
}

func newTestService(t *testing.T, diet service.DietGenerator) *service.Service {
	t.Helper()
	db, err := repository.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{JWTSecret: "test-secret"}
	return service.NewService(repository.NewRepository(db), logger, cfg, diet)
}

func registerUser(t *testing.T, svc *service.Service, username, password string) *models.User {
	t.Helper()
	user, err := svc.Register(username, username+"@example.com", password, nil, nil)
	require.NoError(t, err)
	return user
}

func TestRegister_DistinctUsersGetDistinctIDs(t *testing.T) {
	svc := newTestService(t, nil)

	amr := registerUser(t, svc, "amr", "secret")
	omar := registerUser(t, svc, "omar", "secret")
	assert.NotEqual(t, amr.ID, omar.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestService(t, nil)
	registerUser(t, svc, "amr", "secret")

	_, err := svc.Register("amr", "other@example.com", "secret", nil, nil)
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestRegister_PasswordIsNotStoredInTheClear(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestLogin_RoundTripsRegistration(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	token, err := svc.Login("amr", "secret")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "1", claims.Subject)
	assert.EqualValues(t, 1, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, nil)
	registerUser(t, svc, "amr", "secret")

	_, err := svc.Login("amr", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Login("nobody", "secret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogSet_NegativeWeight(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	_, err := svc.LogSet(user.ID, "2024-01-01", "Push 1", "Bench Press", -1)
	assert.ErrorIs(t, err, service.ErrInvalidWeight)
}

func TestLogSet_ZeroWeightSucceeds(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	entry, err := svc.LogSet(user.ID, "2024-01-01", "Push 1", "Bench Press", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.Weight)
	assert.Equal(t, 0.0, entry.Progress)
}

func TestLogSet_ProgressDeltas(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	weights := []float64{60, 65, 62.5, 70}
	wantProgress := []float64{0, 5, -2.5, 7.5}
	dates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}

	for i, w := range weights {
		entry, err := svc.LogSet(user.ID, dates[i], "Push 1", "Bench Press", w)
		require.NoError(t, err)
		assert.Equal(t, wantProgress[i], entry.Progress, "entry %d", i)
	}
}

func TestLogSet_DeltaUnaffectedByOtherExercisesAndUsers(t *testing.T) {
	svc := newTestService(t, nil)
	amr := registerUser(t, svc, "amr", "secret")
	omar := registerUser(t, svc, "omar", "secret")

	_, err := svc.LogSet(amr.ID, "2024-01-01", "Push 1", "Bench Press", 60)
	require.NoError(t, err)

	// interleave other exercises and another user's bench press
	_, err = svc.LogSet(amr.ID, "2024-01-02", "Legs 1", "Squat", 100)
	require.NoError(t, err)
	_, err = svc.LogSet(omar.ID, "2024-01-03", "Push 1", "Bench Press", 90)
	require.NoError(t, err)

	entry, err := svc.LogSet(amr.ID, "2024-01-08", "Push 1", "Bench Press", 65)
	require.NoError(t, err)
	assert.Equal(t, 5.0, entry.Progress)
}

func TestLogBatch_ZipTruncation(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	entries, err := svc.LogBatch(user.ID, "2024-02-01", "Legs 1", []string{"Squat", "Leg Press"}, []float64{100})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Squat", entries[0].Exercise)
	assert.Equal(t, 100.0, entries[0].Weight)

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestLogBatch_StopsOnInvalidWeightButKeepsEarlierEntries(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	entries, err := svc.LogBatch(user.ID, "2024-02-01", "Legs 1",
		[]string{"Squat", "Leg Press", "Leg Curl"}, []float64{100, -5, 40})
	assert.ErrorIs(t, err, service.ErrInvalidWeight)
	assert.Len(t, entries, 1)

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestHistory_EmptyForNewUser(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistory_BenchPressScenario(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")
	assert.EqualValues(t, 1, user.ID)

	first, err := svc.LogSet(user.ID, "2024-01-01", "Push 1", "Bench Press", 60)
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.Progress)

	second, err := svc.LogSet(user.ID, "2024-01-08", "Push 1", "Bench Press", 65)
	require.NoError(t, err)
	assert.Equal(t, 5.0, second.Progress)

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-01-08", history[0].Date)
	assert.Equal(t, 5.0, history[0].Progress)
	assert.Equal(t, "2024-01-01", history[1].Date)
}

func TestGenerateDietPlan(t *testing.T) {
	svc := newTestService(t, &fakeDietGenerator{plan: "eat your protein"})
	user := registerUser(t, svc, "amr", "secret")

	plan, err := svc.GenerateDietPlan(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "eat your protein", plan)
}

func TestGenerateDietPlan_NotConfigured(t *testing.T) {
	svc := newTestService(t, nil)
	user := registerUser(t, svc, "amr", "secret")

	_, err := svc.GenerateDietPlan(user.ID)
	assert.Error(t, err)
}

func TestGenerateDietPlan_GeneratorError(t *testing.T) {
	svc := newTestService(t, &fakeDietGenerator{err: errors.New("api down")})
	user := registerUser(t, svc, "amr", "secret")

	_, err := svc.GenerateDietPlan(user.ID)
	assert.Error(t, err)
}
