package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ServerURL string `toml:"server_url"`
	Username  string `toml:"username"`
	SecretRef string `toml:"secret_ref,omitempty"`
}

type workspaceSchema struct {
	ServerURL string `toml:"server_url"`
	Username  string `toml:"username"`
	Course    string `toml:"course,omitempty"`
}
