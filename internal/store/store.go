// Package store persists per-server login state as small JSON files: one
// App record and one Authorization record per server host. It fills the role
// the example application gives to browser local storage; the records go
// through the codec layer so stored JSON matches the wire shapes.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

const (
	appFileSuffix           = ".app.json"
	authorizationFileSuffix = ".authorization.json"
	stateDirPermissions     = 0o700
	stateFilePermissions    = 0o600
	hostSeparatorCharacters = "/\\:"
	hostReplacementRune     = '_'

	errMessageEmptyDirectory = "state directory cannot be empty"
	errMessageEmptyServer    = "server host cannot be empty"
)

// ErrNotFound reports that no record is stored for the requested server.
var ErrNotFound = errors.New("no stored record for server")

// Store reads and writes login state under one directory.
type Store struct {
	directory string
}

// NewStore constructs a Store rooted at the given directory, creating it
// when absent.
func NewStore(directory string) (*Store, error) {
	if strings.TrimSpace(directory) == "" {
		return nil, fmt.Errorf(errMessageEmptyDirectory)
	}
	if err := os.MkdirAll(directory, stateDirPermissions); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &Store{directory: directory}, nil
}

// SaveApp stores the registered application for one server.
func (store *Store) SaveApp(server string, app *entity.App) error {
	data, err := codec.EncodeApp(app)
	if err != nil {
		return err
	}
	return store.writeRecord(server, appFileSuffix, data)
}

// LoadApp retrieves the registered application for one server. A missing
// record is reported as ErrNotFound.
func (store *Store) LoadApp(server string) (*entity.App, error) {
	data, err := store.readRecord(server, appFileSuffix)
	if err != nil {
		return nil, err
	}
	return codec.DecodeApp(data)
}

// SaveAuthorization stores the login credentials for one server.
func (store *Store) SaveAuthorization(server string, authorization *entity.Authorization) error {
	data, err := codec.EncodeAuthorization(authorization)
	if err != nil {
		return err
	}
	return store.writeRecord(server, authorizationFileSuffix, data)
}

// LoadAuthorization retrieves the login credentials for one server. A
// missing record is reported as ErrNotFound.
func (store *Store) LoadAuthorization(server string) (*entity.Authorization, error) {
	data, err := store.readRecord(server, authorizationFileSuffix)
	if err != nil {
		return nil, err
	}
	return codec.DecodeAuthorization(data)
}

func (store *Store) writeRecord(server string, suffix string, data []byte) error {
	recordPath, err := store.recordPath(server, suffix)
	if err != nil {
		return err
	}
	return os.WriteFile(recordPath, data, stateFilePermissions)
}

func (store *Store) readRecord(server string, suffix string) ([]byte, error) {
	recordPath, err := store.recordPath(server, suffix)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(recordPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (store *Store) recordPath(server string, suffix string) (string, error) {
	fileName := sanitizeHost(server)
	if fileName == "" {
		return "", fmt.Errorf(errMessageEmptyServer)
	}
	return filepath.Join(store.directory, fileName+suffix), nil
}

// sanitizeHost flattens a server name into a safe file-name stem.
func sanitizeHost(server string) string {
	trimmed := strings.TrimSpace(server)
	replaced := strings.Map(func(character rune) rune {
		if strings.ContainsRune(hostSeparatorCharacters, character) {
			return hostReplacementRune
		}
		return character
	}, trimmed)
	return strings.Trim(replaced, string(hostReplacementRune))
}
