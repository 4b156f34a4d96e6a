package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/session"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/users"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewMemoryStore()
	userRepo := users.NewStoreRepository(store)
	account := services.NewAccountService(userRepo, session.NewStoreRepository(store), services.PlainScheme{}, log)

	return &App{
		config:  &config.Config{},
		account: account,
		users:   userRepo,
		reader:  bufio.NewReader(strings.NewReader("")),
		log:     log,
	}
}

// stubInputs replaces the interactive input seams with canned values.
func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()

	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		require.Less(t, i, len(texts), "unexpected prompt %q", prompt)
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func signUpAnn(t *testing.T, a *App) {
	t.Helper()
	stubInputs(t, []string{"Ann Lee", "Ann@Test.com"}, "secret1")
	require.NoError(t, a.SignUp(context.Background()))
}

func TestAppSignUp_Success(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)

	signUpAnn(t, a)

	assert.False(t, a.state.Open, "dialog closes after a successful sign-up")
	assert.Contains(t, strings.Join(*out, ""), "Welcome, Ann Lee!")

	user, err := a.account.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ann@test.com", user.Email)
}

func TestAppSignUp_DuplicateEmailShowsInlineMessage(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)
	require.NoError(t, a.SignOut(ctx))

	stubInputs(t, []string{"Impostor", "ANN@TEST.COM"}, "different9")
	require.NoError(t, a.SignUp(ctx))

	assert.True(t, a.state.Open)
	assert.Equal(t, PanelSignUp, a.state.Panel)
	assert.Equal(t, msgEmailTaken, a.state.Message)
}

func TestAppSignUp_ValidationShowsInlineMessage(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)

	stubInputs(t, []string{"Ann Lee", "ann@test.com"}, "abc12")
	require.NoError(t, a.SignUp(context.Background()))

	assert.True(t, a.state.Open)
	assert.Equal(t, msgSignUpValidation, a.state.Message)
}

func TestAppSignIn_WrongPasswordShowsInlineMessage(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)
	require.NoError(t, a.SignOut(ctx))

	stubInputs(t, []string{"ann@test.com"}, "wrongpass")
	require.NoError(t, a.SignIn(ctx))

	assert.True(t, a.state.Open)
	assert.Equal(t, PanelSignIn, a.state.Panel)
	assert.Equal(t, msgSignInRejected, a.state.Message)
}

func TestAppSignIn_ValidationShowsInlineMessage(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)

	stubInputs(t, []string{"not-an-email"}, "secret1")
	require.NoError(t, a.SignIn(context.Background()))

	assert.Equal(t, msgSignInValidation, a.state.Message)
}

func TestAppSignIn_SuccessClosesDialog(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)
	require.NoError(t, a.SignOut(ctx))

	stubInputs(t, []string{"ANN@TEST.COM"}, "secret1")
	require.NoError(t, a.SignIn(ctx))

	assert.False(t, a.state.Open)
	assert.Contains(t, strings.Join(*out, ""), "Welcome back, Ann Lee!")
}

func TestAppSignIn_WhileSignedInShowsSummary(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)

	signUpAnn(t, a)
	require.NoError(t, a.SignIn(context.Background()))

	assert.True(t, a.state.Open)
	assert.Equal(t, PanelSummary, a.state.Panel)
	assert.Contains(t, strings.Join(*out, ""), "Welcome back, Ann Lee!")
}

func TestAppOpenAndTabAndDismiss(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Open(ctx, "signup"))
	assert.True(t, a.state.Open)
	assert.Equal(t, PanelSignUp, a.state.Panel)

	require.NoError(t, a.Tab(ctx, "signin"))
	assert.Equal(t, PanelSignIn, a.state.Panel)

	require.NoError(t, a.Dismiss(ctx))
	assert.False(t, a.state.Open)
}

func TestAppOpen_SignedInLandsOnSummary(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)

	require.NoError(t, a.Open(ctx, "signup"))
	assert.Equal(t, PanelSummary, a.state.Panel)
}

func TestAppTrackAndActivities(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)

	require.NoError(t, a.Track(ctx, []string{"view", "home", "landing", "page"}))
	require.NoError(t, a.Activities(ctx))

	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "view home")
	assert.Contains(t, joined, "(landing page)")
}

func TestAppTrack_SignedOutIsSilentlyIgnored(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Track(ctx, []string{"view"}))

	all, err := a.users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAppTrack_NoArgsPrintsUsage(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)

	require.NoError(t, a.Track(context.Background(), nil))
	assert.Contains(t, strings.Join(*out, ""), "Usage: track")
}

func TestAppWhoami(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Whoami(ctx))
	assert.Contains(t, strings.Join(*out, ""), "Not signed in.")

	signUpAnn(t, a)
	require.NoError(t, a.Whoami(ctx))
	assert.Contains(t, strings.Join(*out, ""), "Ann Lee <ann@test.com>")
}

func TestAppSignOut_ClosesDialogAndClearsSession(t *testing.T) {
	a := newTestApp(t)
	out := captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)
	require.NoError(t, a.Open(ctx, "signin"))

	require.NoError(t, a.SignOut(ctx))

	assert.False(t, a.state.Open)
	assert.Contains(t, strings.Join(*out, ""), "Signed out.")

	user, err := a.account.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAppExport_WritesBothSlots(t *testing.T) {
	a := newTestApp(t)
	captureOutput(t)
	ctx := context.Background()

	signUpAnn(t, a)
	require.NoError(t, a.Track(ctx, []string{"view", "home"}))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, a.Export(ctx, []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc backup
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "ann@test.com", doc.Users[0].Email)
	require.NotNil(t, doc.CurrentUser)
	assert.Len(t, doc.CurrentUser.Activities, 1)
}
