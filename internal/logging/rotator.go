package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotateOptions bounds the size and number of log files kept.
type RotateOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

// DefaultRotateOptions returns the limits used for the configured log file.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAge:     7 * 24 * time.Hour,
		Compress:   true,
	}
}

// LogRotator is a file writer that moves the file aside once it grows past
// MaxSizeMB. Backups are named <file>.<timestamp>[.gz].
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

var _ io.WriteCloser = (*LogRotator)(nil)

// NewLogRotator opens path for appending, creating its directory.
func NewLogRotator(path string, opts RotateOptions) (*LogRotator, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &LogRotator{
		baseDir:    dir,
		baseName:   filepath.Base(path),
		maxSize:    int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:     opts.MaxAge,
		maxBackups: opts.MaxBackups,
		compress:   opts.Compress,
		now:        time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path()); err == nil {
		r.currentSize = info.Size()
	}
	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}
	// A single line larger than the limit still goes to a fresh file.
	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := r.path() + "." + r.now().Format("2006-01-02-15-04-05.000")
	if err := os.Rename(r.path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err = io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// cleanup removes backups older than maxAge, then the oldest ones beyond
// maxBackups.
func (r *LogRotator) cleanup() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	now := r.now()
	var backups []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.baseName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			r.remove(info.Name())
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	// Timestamped names sort oldest first.
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name() < backups[j].Name()
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		r.remove(info.Name())
	}
}

func (r *LogRotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.baseDir, name)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
