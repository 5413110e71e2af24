package trash

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

const (
	dirMode          = 0o700
	infoMode         = 0o600
	infoSuffix       = ".trashinfo"
	maxNameAttempts  = 1000
	deletionDateForm = "2006-01-02T15:04:05"
)

// FreedesktopTrashRepository moves folders to the freedesktop.org trash, so that
// file managers can restore them.
type FreedesktopTrashRepository struct {
	root string
	now  func() time.Time
}

// NewFreedesktopTrashRepository uses $XDG_DATA_HOME/Trash, or ~/.local/share/Trash.
func NewFreedesktopTrashRepository() *FreedesktopTrashRepository {
	return NewFreedesktopTrashRepositoryAt(defaultRoot())
}

// NewFreedesktopTrashRepositoryAt uses the given trash root.
func NewFreedesktopTrashRepositoryAt(root string) *FreedesktopTrashRepository {
	return &FreedesktopTrashRepository{root: root, now: time.Now}
}

var _ repositories.TrashRepository = (*FreedesktopTrashRepository)(nil)

func defaultRoot() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Trash")
	}
	return filepath.Join(homeDir, ".local", "share", "Trash")
}

// Trash moves path into the trash and records where it came from. A path on another
// filesystem than the home trash goes to the trash of its own volume, or is copied
// into the home trash when that volume has no usable trash.
func (r *FreedesktopTrashRepository) Trash(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrIO, err)
	}
	if _, statErr := os.Lstat(absPath); statErr != nil {
		return fmt.Errorf("%w: %w", entities.ErrIO, statErr)
	}

	err = r.place(r.root, absPath, absPath, os.Rename)
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	logger.Debugf("%s is on another filesystem than %s", absPath, r.root)
	volumeErr := r.trashOnVolume(absPath)
	if volumeErr == nil {
		return nil
	}
	logger.Debugf("No usable trash on the volume of %s, copying instead: %v", absPath, volumeErr)
	return r.place(r.root, absPath, absPath, moveByCopy)
}

// trashOnVolume uses $topdir/.Trash/$uid when the administrator prepared a shared,
// sticky .Trash folder, and $topdir/.Trash-$uid otherwise. Paths are recorded relative
// to $topdir.
func (r *FreedesktopTrashRepository) trashOnVolume(absPath string) error {
	topDir, err := mountPoint(absPath)
	if err != nil {
		return err
	}
	if topDir == absPath {
		return fmt.Errorf("%w: %s is the root of its filesystem", entities.ErrIO, absPath)
	}
	root, err := volumeTrashRoot(topDir)
	if err != nil {
		return err
	}
	recorded, err := filepath.Rel(topDir, absPath)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrIO, err)
	}
	return r.place(root, absPath, recorded, os.Rename)
}

// place reserves a name under root, then moves absPath into root/files with move.
func (r *FreedesktopTrashRepository) place(
	root, absPath, recorded string,
	move func(src, dst string) error,
) error {
	filesDir := filepath.Join(root, "files")
	infoDir := filepath.Join(root, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if mkdirErr := os.MkdirAll(dir, dirMode); mkdirErr != nil {
			return fmt.Errorf("%w: %w", entities.ErrIO, mkdirErr)
		}
	}

	name, infoPath, err := r.reserve(infoDir, filepath.Base(absPath), recorded)
	if err != nil {
		return err
	}

	target := filepath.Join(filesDir, name)
	if moveErr := move(absPath, target); moveErr != nil {
		_ = os.Remove(infoPath)
		return fmt.Errorf("%w: moving %s to trash: %w", entities.ErrIO, absPath, moveErr)
	}

	logger.Debugf("Moved %s to %s", absPath, target)
	return nil
}

func volumeTrashRoot(topDir string) (string, error) {
	uid := os.Getuid()
	if uid < 0 {
		return "", fmt.Errorf("%w: no user id on this platform", entities.ErrIO)
	}
	id := strconv.Itoa(uid)

	shared := filepath.Join(topDir, ".Trash")
	if info, err := os.Lstat(shared); err == nil && info.IsDir() && info.Mode()&fs.ModeSticky != 0 {
		return filepath.Join(shared, id), nil
	}
	return filepath.Join(topDir, ".Trash-"+id), nil
}

// mountPoint walks up from path while the parent is on the same device.
func mountPoint(path string) (string, error) {
	device, ok := deviceOf(path)
	if !ok {
		return "", fmt.Errorf("%w: cannot tell the filesystem of %s", entities.ErrIO, path)
	}
	current := path
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return current, nil
		}
		if parentDevice, parentOk := deviceOf(parent); !parentOk || parentDevice != device {
			return current, nil
		}
		current = parent
	}
}

// moveByCopy copies src to dst, then removes src. A failed copy leaves src intact.
func moveByCopy(src, dst string) error {
	if err := copyTree(src, dst); err != nil {
		_ = os.RemoveAll(dst)
		return err
	}
	return os.RemoveAll(src)
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := entry.Info()
		if err != nil {
			return err
		}
		switch {
		case entry.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|dirMode)
		case entry.Type()&fs.ModeSymlink != 0:
			link, linkErr := os.Readlink(path)
			if linkErr != nil {
				return linkErr
			}
			return os.Symlink(link, target)
		case entry.Type().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			return fmt.Errorf("cannot copy special file %s", path)
		}
	})
}

func copyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	if _, copyErr := io.Copy(out, in); copyErr != nil {
		_ = out.Close()
		return copyErr
	}
	return out.Close()
}

// reserve creates the .trashinfo file under a free name and returns that name.
func (r *FreedesktopTrashRepository) reserve(infoDir, base, recorded string) (string, string, error) {
	content := fmt.Sprintf(
		"[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		(&url.URL{Path: recorded}).EscapedPath(),
		r.now().Format(deletionDateForm),
	)

	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		name := base
		if attempt > 1 {
			name = base + "." + strconv.Itoa(attempt)
		}
		infoPath := filepath.Join(infoDir, name+infoSuffix)

		file, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, infoMode)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", entities.ErrIO, err)
		}

		_, writeErr := file.WriteString(content)
		closeErr := file.Close()
		if writeErr != nil || closeErr != nil {
			_ = os.Remove(infoPath)
			return "", "", fmt.Errorf("%w: writing %s: %w", entities.ErrIO, infoPath, errors.Join(writeErr, closeErr))
		}
		return name, infoPath, nil
	}
	return "", "", fmt.Errorf("%w: no free trash name for %s", entities.ErrIO, base)
}
