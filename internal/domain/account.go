package domain

import (
	"net/url"
	"strings"
)

type Account struct {
	ServerURL string
	Username  string
	Password  string
}

func NewAccount(serverURL, username, password string) Account {
	return Account{
		ServerURL: NormalizeServerURL(serverURL),
		Username:  strings.TrimSpace(username),
		Password:  password,
	}
}

// WithCredentials returns a copy of the account bound to the same server.
func (a Account) WithCredentials(username, password string) Account {
	return NewAccount(a.ServerURL, username, password)
}

// HasStoredCredentials reports whether the account can be used without
// asking the user for anything.
func (a Account) HasStoredCredentials() bool {
	if a.Username == "" || a.Password == "" {
		return false
	}

	parsed, err := url.Parse(a.ServerURL)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func (a Account) Host() string {
	parsed, err := url.Parse(a.ServerURL)
	if err != nil || parsed.Host == "" {
		return a.ServerURL
	}

	return parsed.Host
}

func NormalizeServerURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// AccountList keeps accounts in insertion order. The first account is the
// default one for single-account flows.
type AccountList struct {
	accounts []Account
}

func NewAccountList(accounts ...Account) AccountList {
	list := AccountList{}
	for _, account := range accounts {
		list.Add(account)
	}

	return list
}

func (l *AccountList) Add(account Account) {
	l.accounts = append(l.accounts, account)
}

// Put replaces the account registered for the same server, keeping its
// position, or appends a new one.
func (l *AccountList) Put(account Account) {
	for i := range l.accounts {
		if l.accounts[i].ServerURL == account.ServerURL {
			l.accounts[i] = account
			return
		}
	}

	l.Add(account)
}

func (l AccountList) Find(serverURL string) (Account, bool) {
	serverURL = NormalizeServerURL(serverURL)
	for _, account := range l.accounts {
		if account.ServerURL == serverURL {
			return account, true
		}
	}

	return Account{}, false
}

func (l *AccountList) Remove(serverURL string) bool {
	serverURL = NormalizeServerURL(serverURL)
	for i, account := range l.accounts {
		if account.ServerURL != serverURL {
			continue
		}

		l.accounts = append(l.accounts[:i:i], l.accounts[i+1:]...)
		return true
	}

	return false
}

func (l AccountList) Accounts() []Account {
	accounts := make([]Account, len(l.accounts))
	copy(accounts, l.accounts)
	return accounts
}

func (l AccountList) Len() int {
	return len(l.accounts)
}

func (l AccountList) Default() (Account, bool) {
	if len(l.accounts) == 0 {
		return Account{}, false
	}

	return l.accounts[0], true
}
