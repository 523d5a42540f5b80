// Package upload implements the profile picture pipeline: a local preview is
// written to the picture slot as soon as a file is chosen, and the remote
// URL replaces it once the upload service answers.
package upload

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
)

// Slot is where the picture URL lives (the profilePictureUrl field)
type Slot interface {
	PictureURL() string
	SetPictureURL(url string)
}

// Result is what the upload service returns
type Result struct {
	SecureURL string
	PublicID  string
}

// Uploader stores a file remotely
type Uploader interface {
	Upload(ctx context.Context, f File, folder string) (Result, error)
}

// UploaderFunc adapts a function to the Uploader interface
type UploaderFunc func(ctx context.Context, f File, folder string) (Result, error)

func (fn UploaderFunc) Upload(ctx context.Context, f File, folder string) (Result, error) {
	return fn(ctx, f, folder)
}

// Outcome describes what Resolve did with an upload result
type Outcome int

const (
	OutcomeApplied Outcome = iota // slot now holds the secure URL
	OutcomeStale                  // selection was replaced or removed, result dropped
	OutcomeFailed                 // upload failed, preview kept
	OutcomeEmpty                  // service answered without a secure URL
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	case OutcomeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures a Pipeline
type Options struct {
	Folder   string
	MaxBytes int64
	Logger   *zap.Logger
	Notifier notify.Notifier
}

// Pipeline validates picture selections and resolves their uploads.
// Every selection gets an id; only the newest one may write the slot.
type Pipeline struct {
	uploader Uploader
	folder   string
	maxBytes int64
	logger   *zap.Logger
	notifier notify.Notifier

	mu      sync.Mutex
	current string

	wg sync.WaitGroup
}

// Task is a dispatched-but-unresolved upload for one selection
type Task struct {
	ID     string
	File   File
	Folder string

	uploader Uploader
}

// New creates a pipeline around an uploader
func New(uploader Uploader, opts Options) *Pipeline {
	if opts.Folder == "" {
		opts.Folder = models.DefaultUploadFolder
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = models.DefaultMaxBytes
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Pipeline{
		uploader: uploader,
		folder:   opts.Folder,
		maxBytes: opts.MaxBytes,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// Folder returns the remote folder uploads are stored under
func (p *Pipeline) Folder() string { return p.folder }

// MaxBytes returns the size limit for a picture
func (p *Pipeline) MaxBytes() int64 { return p.maxBytes }

// Validate runs the precondition checks in order: type, then size
func (p *Pipeline) Validate(f File) error {
	if !f.IsImage() {
		return fmt.Errorf("%w (got %q)", ErrInvalidFileType, f.Type)
	}
	if f.Size > p.maxBytes {
		return fmt.Errorf("%w: %s exceeds the %s limit",
			ErrFileTooLarge, humanize.IBytes(uint64(f.Size)), humanize.IBytes(uint64(p.maxBytes)))
	}
	return nil
}

// Select validates f, writes its local preview into the slot and returns the
// upload task. Nothing is mutated when validation fails.
func (p *Pipeline) Select(slot Slot, f File) (*Task, error) {
	if err := p.Validate(f); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	p.mu.Lock()
	p.current = id
	slot.SetPictureURL(f.DataURL())
	p.mu.Unlock()

	p.logger.Debug("picture selected",
		zap.String("selection", id),
		zap.String("name", f.Name),
		zap.String("type", f.Type),
		zap.Int64("size", f.Size))

	return &Task{ID: id, File: f, Folder: p.folder, uploader: p.uploader}, nil
}

// Upload sends the task's file to the upload service. It does not touch any
// slot; pass the result to Pipeline.Resolve.
func (t *Task) Upload(ctx context.Context) (Result, error) {
	if t.uploader == nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUploadFailed, ErrNotConfigured)
	}
	res, err := t.uploader.Upload(ctx, t.File, t.Folder)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return res, nil
}

// Resolve applies an upload result to the slot if id is still the current
// selection. Failures are logged and swallowed so the preview stays usable.
func (p *Pipeline) Resolve(slot Slot, id string, res Result, err error) Outcome {
	p.mu.Lock()
	if id == "" || id != p.current {
		p.mu.Unlock()
		p.logger.Debug("dropping stale upload result", zap.String("selection", id), zap.Error(err))
		return OutcomeStale
	}
	if err != nil {
		p.current = ""
		p.mu.Unlock()
		p.logger.Error("picture upload failed, keeping local preview",
			zap.String("selection", id), zap.Error(err))
		return OutcomeFailed
	}
	if res.SecureURL == "" {
		p.current = ""
		p.mu.Unlock()
		p.logger.Warn("upload returned no secure URL", zap.String("selection", id))
		return OutcomeEmpty
	}
	slot.SetPictureURL(res.SecureURL)
	p.current = ""
	p.mu.Unlock()

	p.logger.Info("picture uploaded",
		zap.String("selection", id),
		zap.String("url", res.SecureURL),
		zap.String("public_id", res.PublicID))
	if p.notifier != nil {
		p.notifier.Notify(notify.Success("Profile picture updated successfully!"))
	}
	return OutcomeApplied
}

// Dispatch selects f and runs its upload in the background. The caller is
// never blocked on the network; use Wait to join in-flight uploads.
func (p *Pipeline) Dispatch(ctx context.Context, slot Slot, f File) (string, error) {
	task, err := p.Select(slot, f)
	if err != nil {
		return "", err
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		res, err := task.Upload(ctx)
		p.Resolve(slot, task.ID, res, err)
	}()

	return task.ID, nil
}

// Wait blocks until every dispatched upload has resolved
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Remove clears the slot and invalidates the current selection, so an
// upload still in flight can no longer write the slot.
func (p *Pipeline) Remove(slot Slot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != "" {
		p.logger.Debug("invalidating pending upload", zap.String("selection", p.current))
	}
	p.current = ""
	slot.SetPictureURL("")
}

// Pending reports whether a selection is waiting on its upload
func (p *Pipeline) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != ""
}
