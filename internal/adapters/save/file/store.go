package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
)

const (
	saveDirMode   = 0o700
	saveFileMode  = 0o600
	tempExtension = ".tmp"
)

// Store keeps one payload per file under a base directory. Names are joined
// to the directory verbatim.
type Store struct {
	root string
	// rename is swapped in tests to simulate a crash before the replace step.
	rename func(oldPath, newPath string) error
	// syncDir flushes the directory entry created by rename.
	syncDir func(dir string) error
}

var _ ports.BlobStore = (*Store)(nil)

func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("save directory is empty")
	}

	root = filepath.Clean(root)
	if err := os.MkdirAll(root, saveDirMode); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}

	return &Store{root: root, rename: os.Rename, syncDir: syncDir}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyFileName
	}

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read save file %q: %w", name, domain.ErrSaveNotFound)
		}
		return nil, fmt.Errorf("read save file %q: %w", name, err)
	}

	return data, nil
}

// Write stores data under name so that the target holds either the previous
// or the new payload in full at every instant: the payload is written and
// synced to "<name>.tmp", which is then renamed over the target. The parent
// directory is synced afterwards so the rename itself survives a power loss.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyFileName
	}

	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), saveDirMode); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	tempName := path + tempExtension
	tempFile, err := os.OpenFile(tempName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, saveFileMode)
	if err != nil {
		return fmt.Errorf("create temp save file: %w", err)
	}

	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp save file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp save file: %w", err)
	}

	if err := tempFile.Chmod(saveFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp save file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp save file: %w", err)
	}

	if err := s.rename(tempName, path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}

	cleanup = false

	if err := s.syncDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("sync save directory: %w", err)
	}

	return nil
}
