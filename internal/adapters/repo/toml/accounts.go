package toml

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	AccountsPathKey    = "accounts.path"
	accountsFileMode   = 0o600
	accountsDirMode    = 0o700
	accountsConfigDir  = "tmc-cli"
	accountsConfigFile = "accounts.toml"
	tempFilePattern    = ".accounts-*.toml.tmp"
	secretRefPrefix    = "tmc"
)

// AccountStore persists the account list in a TOML file. Passwords live in
// the secret store and the file only keeps a reference to them.
type AccountStore struct {
	accountsPath string
	secrets      ports.SecretStore
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountStore = (*AccountStore)(nil)

func NewAccountStore(cfg *viper.Viper, secrets ports.SecretStore) (*AccountStore, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if secrets == nil {
		return nil, errors.New("secret store is nil")
	}

	accountsPath := cfg.GetString(AccountsPathKey)
	if accountsPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		accountsPath = filepath.Join(configDir, accountsConfigDir, accountsConfigFile)
	}

	accountsPath, err := normalizeAccountsPath(accountsPath)
	if err != nil {
		return nil, err
	}

	return &AccountStore{
		accountsPath: accountsPath,
		secrets:      secrets,
		mu:           lockForPath(accountsPath),
	}, nil
}

func (s *AccountStore) Path() string {
	return s.accountsPath
}

func (s *AccountStore) Load(ctx context.Context) (domain.AccountList, error) {
	if err := ctx.Err(); err != nil {
		return domain.AccountList{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return domain.AccountList{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	list := domain.NewAccountList()
	for _, entry := range file.Accounts {
		password, err := s.lookupPassword(ctx, entry.SecretRef)
		if err != nil {
			return domain.AccountList{}, err
		}

		list.Add(domain.Account{
			ServerURL: domain.NormalizeServerURL(entry.ServerURL),
			Username:  entry.Username,
			Password:  password,
		})
	}

	return list, nil
}

// Save writes every password first and then replaces the accounts file in a
// single rename. On failure the passwords it overwrote are restored, so the
// previous file and its secrets are left as they were.
func (s *AccountStore) Save(ctx context.Context, accounts domain.AccountList) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, previousErr := s.readSchema()

	written := secretSnapshot{}
	defer func() {
		if err != nil {
			written.restore(context.WithoutCancel(ctx), s.secrets)
		}
	}()

	file := fileSchema{Version: currentSchemaVersion}
	referenced := map[string]struct{}{}
	for _, account := range accounts.Accounts() {
		entry := accountSchema{ServerURL: account.ServerURL, Username: account.Username}
		if account.Password != "" {
			entry.SecretRef = SecretRef(account)
			if err := s.putSecret(ctx, written, entry.SecretRef, account.Password); err != nil {
				return fmt.Errorf("%w: store password for %s: %w", domain.ErrPersistence, account.ServerURL, err)
			}
			referenced[entry.SecretRef] = struct{}{}
		}

		file.Accounts = append(file.Accounts, entry)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.writeSchema(file); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if previousErr == nil {
		for _, entry := range previous.Accounts {
			if entry.SecretRef == "" {
				continue
			}
			if _, ok := referenced[entry.SecretRef]; ok {
				continue
			}
			_ = s.secrets.Delete(ctx, entry.SecretRef)
		}
	}

	return nil
}

// priorSecret is the value a key held before Save touched it.
type priorSecret struct {
	value  string
	exists bool
}

// secretSnapshot records, per key, the first value seen before overwriting.
type secretSnapshot map[string]priorSecret

func (w secretSnapshot) restore(ctx context.Context, secrets ports.SecretStore) {
	for key, prior := range w {
		if prior.exists {
			_ = secrets.Put(ctx, key, prior.value)
			continue
		}
		_ = secrets.Delete(ctx, key)
	}
}

func (s *AccountStore) putSecret(ctx context.Context, written secretSnapshot, key, value string) error {
	if _, seen := written[key]; !seen {
		current, err := s.secrets.Get(ctx, key)
		switch {
		case err == nil:
			if current == value {
				return nil
			}
			written[key] = priorSecret{value: current, exists: true}
		case errors.Is(err, domain.ErrSecretNotFound):
			written[key] = priorSecret{}
		default:
			return fmt.Errorf("read previous password: %w", err)
		}
	}

	return s.secrets.Put(ctx, key, value)
}

// SecretRef is the secret-store key holding the account password.
func SecretRef(account domain.Account) string {
	host := strings.NewReplacer(":", "_", "/", "_").Replace(account.Host())

	return strings.Join([]string{secretRefPrefix, host, url.PathEscape(account.Username)}, "/")
}

func (s *AccountStore) lookupPassword(ctx context.Context, secretRef string) (string, error) {
	if secretRef == "" {
		return "", nil
	}

	password, err := s.secrets.Get(ctx, secretRef)
	switch {
	case err == nil:
		return password, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", err
	default:
		// The account stays listed; the user is asked to log in again.
		return "", nil
	}
}

func (s *AccountStore) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *AccountStore) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.accountsPath), accountsDirMode); err != nil {
		return fmt.Errorf("create accounts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.accountsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp accounts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp accounts file: %w", err)
	}

	if err := tempFile.Chmod(accountsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp accounts file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp accounts file: %w", err)
	}

	if err := os.Rename(tempName, s.accountsPath); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeAccountsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve accounts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
