package storage

import (
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

const credentialsFileName = "credentials.json"

// LocalStorage persists the authentication token (and last used player
// name) in the OS config directory. Any durable key-value backing
// satisfies Service, this is the default one.
type LocalStorage struct {
	credentials credentialsStorage

	folder *configdir.Config
	mutex  sync.RWMutex
}

type credentialsStorage struct {
	Token      protocol.AuthToken `json:"token,omitempty"`
	PlayerName string             `json:"playerName,omitempty"`
}

// NewLocalStorage creates a storage rooted at localPath. An empty
// localPath means the global per-user config directory.
func NewLocalStorage(localPath string) *LocalStorage {
	var folder *configdir.Config

	if localPath != "" {
		folder = &configdir.Config{
			Path: localPath,
			Type: configdir.Local,
		}
	} else {
		configDirs := configdir.New(config.VendorName, config.ApplicationName)
		folder = configDirs.QueryFolders(configdir.Global)[0]
	}

	return &LocalStorage{
		folder: folder,
	}
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.readCredentials()
}

func (s *LocalStorage) readCredentials() error {
	if !s.folder.Exists(credentialsFileName) {
		return nil
	}

	data, err := s.folder.ReadFile(credentialsFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read credentials")
	}

	err = json.Unmarshal(data, &s.credentials)
	if err == nil {
		return nil
	}

	// A corrupt file should not lock the player out. Reset it.
	config.Logger.Error("failed to parse credentials, clearing storage", zap.Error(err))
	s.credentials = credentialsStorage{}
	return s.saveCredentials()
}

func (s *LocalStorage) saveCredentials() error {
	data, err := json.Marshal(s.credentials)
	if err != nil {
		return errors.Wrap(err, "failed to marshal credentials")
	}

	err = s.folder.WriteFile(credentialsFileName, data)
	return errors.Wrap(err, "failed to save credentials")
}

func (s *LocalStorage) Token() protocol.AuthToken {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.credentials.Token
}

func (s *LocalStorage) SetToken(token protocol.AuthToken) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.credentials.Token = token
	return s.saveCredentials()
}

func (s *LocalStorage) ClearToken() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.credentials.Token = ""
	return s.saveCredentials()
}

func (s *LocalStorage) PlayerName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.credentials.PlayerName
}

func (s *LocalStorage) SetPlayerName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.credentials.PlayerName = name
	return s.saveCredentials()
}
