package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/tutaexport/tuta-export/internal/eml"
	"github.com/tutaexport/tuta-export/internal/folders"
	"github.com/tutaexport/tuta-export/internal/mail"
	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/transport"
)

// defaultConcurrentDownloads is used when Config.ConcurrentDownloads is
// zero or negative.
const defaultConcurrentDownloads = 5

// Config controls one run of the download command.
type Config struct {
	Folder              string
	TargetDir           string
	ConcurrentDownloads int
	// IgnoreNewMails, when set, stops the export once it reaches a mail
	// received after the run started, so a long export does not chase
	// mail arriving mid-run.
	IgnoreNewMails bool
}

// Result is the outcome of downloading and writing a single mail.
type Result struct {
	Mail    mail.Mail
	Path    string
	Skipped bool
	Err     error
}

// Run selects the configured folder, streams its mails with bounded
// concurrency, and writes one EML file per mail into Config.TargetDir.
// It returns on the first per-mail failure (fail-fast); the failure
// cancels the in-flight downloads, and Run waits for them to return.
func Run(ctx context.Context, client *transport.Client, host string, s *session.Session, cfg Config, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(cfg.TargetDir); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	folder, err := selectFolder(ctx, client, host, s, cfg.Folder)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startTime := time.Now()
	mails := mail.List(ctx, client, host, s, folder.Mails)

	sem := make(chan struct{}, concurrency(cfg.ConcurrentDownloads))
	results := make(chan Result)
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	go func() {
		defer close(results)
		for item := range mails {
			if item.Err != nil {
				listErr := fmt.Errorf("list mails: %w", item.Err)
				mu.Lock()
				if firstErr == nil {
					firstErr = listErr
				}
				mu.Unlock()
				results <- Result{Err: listErr}
				cancel()
				break
			}
			if cfg.IgnoreNewMails && item.Value.ReceivedDate.After(startTime) {
				break
			}

			m := item.Value
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				r := downloadOne(ctx, client, host, s, m, cfg.TargetDir, logger)
				if r.Err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = r.Err
					}
					mu.Unlock()
					cancel()
				}
				select {
				case results <- r:
				case <-ctx.Done():
				}
			}()
		}
		wg.Wait()
	}()

	var all []Result
	for r := range results {
		all = append(all, r)
	}
	wg.Wait()

	if firstErr != nil {
		return all, fmt.Errorf("export: %w", firstErr)
	}
	return all, nil
}

func concurrency(n int) int {
	if n <= 0 {
		return defaultConcurrentDownloads
	}
	return n
}

func selectFolder(ctx context.Context, client *transport.Client, host string, s *session.Session, name string) (folders.Folder, error) {
	items, err := folders.List(ctx, client, host, s)
	if err != nil {
		return folders.Folder{}, err
	}
	for item := range items {
		if item.Err != nil {
			return folders.Folder{}, item.Err
		}
		if item.Value.Name == name {
			return item.Value, nil
		}
	}
	return folders.Folder{}, fmt.Errorf("%q: %w", name, ErrFolderNotFound)
}

func downloadOne(ctx context.Context, client *transport.Client, host string, s *session.Session, m mail.Mail, targetDir string, logger *slog.Logger) Result {
	path := filepath.Join(targetDir, targetFileName(m))

	if fileExists(path) {
		logger.Debug("skipping existing mail", "mail", m.MailID, "path", path)
		return Result{Mail: m, Path: path, Skipped: true}
	}

	downloaded, err := mail.Download(ctx, client, host, s, m, logger)
	if err != nil {
		return Result{Mail: m, Err: fmt.Errorf("download %s: %w", m.MailID, err)}
	}

	doc, err := eml.Assemble(&downloaded)
	if err != nil {
		return Result{Mail: m, Err: fmt.Errorf("assemble %s: %w", m.MailID, err)}
	}

	if err := writeFileAtomically(path, []byte(doc)); err != nil {
		return Result{Mail: m, Err: fmt.Errorf("write %s: %w", m.MailID, err)}
	}

	logger.Info("downloaded mail", "mail", m.MailID, "path", path, "url", m.UIURL())
	return Result{Mail: m, Path: path}
}
