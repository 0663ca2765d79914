package commands

import (
	"errors"
	"testing"

	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testServer   = "https://tmc.test"
	testUsername = "testuser"
	testPassword = "testpassword"
)

var testAccount = domain.NewAccount(testServer, testUsername, testPassword)

func savedListHolding(account domain.Account) interface{} {
	return mock.MatchedBy(func(list domain.AccountList) bool {
		found, ok := list.Find(account.ServerURL)
		return ok && found == account
	})
}

func TestLoginFailsIfBackendFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t).withoutGateway()

	code := h.run("login", "-s", testServer, "-u", testUsername, "-p", testPassword)

	assert.Equal(t, dispatch.ExitOK, code)
	h.io.AssertNotContains(t, "Login successful")
	h.io.AssertContains(t, "Backend is not configured.")
}

func TestLoginFailsIfThereIsNoConnection(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.gw.EXPECT().HasConnection(mock.Anything).Return(false).Once()

	code := h.run("login")

	assert.Equal(t, dispatch.ExitError, code)
	assert.Equal(t, "You don't have internet connection currently.\n", h.io.Out())
	assert.Empty(t, h.io.Asked())
}

func TestLoginWithCorrectServerUserAndPassword(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(true).Once()
	h.accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(accountA), nil).Once()
	h.accounts.EXPECT().Save(mock.Anything, mock.MatchedBy(func(list domain.AccountList) bool {
		return assert.ObjectsAreEqual([]domain.Account{accountA, testAccount}, list.Accounts())
	})).Return(nil).Once()

	code := h.run("login", "-s", testServer, "-u", testUsername, "-p", testPassword)

	assert.Equal(t, dispatch.ExitOK, code)
	h.io.AssertContains(t, "Login successful.")
	h.io.AssertAllPromptsUsed(t)
}

func TestLoginReplacesExistingAccountInPlace(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	stale := domain.NewAccount(testServer, "old-user", "old-pass")
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(true).Once()
	h.accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(stale, accountA), nil).Once()
	h.accounts.EXPECT().Save(mock.Anything, mock.MatchedBy(func(list domain.AccountList) bool {
		return assert.ObjectsAreEqual([]domain.Account{testAccount, accountA}, list.Accounts())
	})).Return(nil).Once()

	h.run("login", "-s", testServer, "-u", testUsername, "-p", testPassword)

	h.io.AssertContains(t, "Login successful.")
}

func TestLoginReportsAccountsFileWriteFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	wrong := domain.NewAccount(testServer, testUsername, "WrongPassword")
	h.gw.EXPECT().TryLogin(mock.Anything, wrong).Return(true).Once()
	h.accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(), nil).Once()
	h.accounts.EXPECT().Save(mock.Anything, savedListHolding(wrong)).Return(domain.ErrPersistence).Once()

	h.run("login", "-s", testServer, "-u", testUsername, "-p", "WrongPassword")

	h.io.AssertContains(t, "Failed to write the accounts file.")
	h.io.AssertNotContains(t, "Login successful")
}

func TestLoginDoesNotSaveOverUnreadableAccountsFile(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(true).Once()
	h.accounts.EXPECT().Load(mock.Anything).Return(domain.AccountList{}, errors.New("decode accounts file")).Once()

	h.run("login", "-s", testServer, "-u", testUsername, "-p", testPassword)

	h.io.AssertContains(t, "Failed to read the accounts file.")
	h.io.AssertNotContains(t, "Login successful")
	h.accounts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLoginRejectedCredentialsAreNotSaved(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()

	h.run("login", "-s", testServer, "-u", testUsername, "-p", testPassword)

	h.io.AssertContains(t, "Login failed.")
	h.io.AssertNotContains(t, "Login successful")
}

func TestLoginAsksUsernameIfNotGiven(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()
	h.io.AddLinePrompt(testUsername)

	h.run("login", "-s", testServer, "-p", testPassword)

	h.io.AssertAllPromptsUsed(t)
	assert.Equal(t, []string{"username: "}, h.io.Asked())
}

func TestLoginAsksPasswordIfNotGiven(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()
	h.io.AddPasswordPrompt(testPassword)

	h.run("login", "-s", testServer, "-u", testUsername)

	h.io.AssertAllPromptsUsed(t)
}

func TestLoginAsksServerIfNotGiven(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()
	h.io.AddLinePrompt(testServer)

	h.run("login", "-p", testPassword, "-u", testUsername)

	h.io.AssertAllPromptsUsed(t)
}

func TestLoginPromptsInDeclaredOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()
	h.io.AddLinePrompt(testServer)
	h.io.AddLinePrompt(testUsername)
	h.io.AddPasswordPrompt(testPassword)

	h.run("login")

	h.io.AssertAllPromptsUsed(t)
	assert.Equal(t, []string{"server address: ", "username: ", "password: "}, h.io.Asked())
}

func TestLoginServerAndUserNotAskedWhenWorkspaceKnowsThem(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online().withWorkspace(domain.NewCourseInfo(domain.NewAccount(testServer, "username", "pass"), nil))
	h.gw.EXPECT().TryLogin(mock.Anything, domain.NewAccount(testServer, "username", testPassword)).Return(false).Once()
	h.io.AddPasswordPrompt(testPassword)

	h.run("login")

	h.io.AssertAllPromptsUsed(t)
}

func TestLoginOptionsOverrideWorkspaceValues(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online().withWorkspace(domain.NewCourseInfo(domain.NewAccount(testServer, "username", "pass"), nil))
	h.gw.EXPECT().TryLogin(mock.Anything, testAccount).Return(false).Once()

	h.run("login", "-p", testPassword, "-u", testUsername)

	h.io.AssertAllPromptsUsed(t)
}

func TestLoginPromptFailureExitsWithError(t *testing.T) {
	t.Parallel()

	h := newHarness(t).online()

	code := h.run("login", "-s", testServer, "-u", testUsername)

	assert.Equal(t, dispatch.ExitError, code)
	h.io.AssertNotContains(t, "Login successful")
}
