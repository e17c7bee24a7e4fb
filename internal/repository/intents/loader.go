// Package intents loads the knowledge base from JSON intent files.
package intents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/askbot/internal/domain"
	"github.com/kailas-cloud/askbot/internal/domain/knowledge"
)

// Intent file names inside the data directory.
const (
	FileUnitConverter = "unit_converter.json"
	FileWikipedia     = "wikipedia.json"
	FileSupport       = "support.json"
	FileMainChat      = "main_chat.json"
	FileDomainChat    = "domain_chat.json"
	FileWelcome       = "welcome.json"
	FileFallback      = "fallback.json"
)

type entryDTO struct {
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}

// Loader reads intent files from a file system.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewLoader creates a loader over fsys, typically os.DirFS of the intents directory.
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	return &Loader{fsys: fsys, logger: logger}
}

// Load reads, validates and decodes every intent file concurrently and builds the knowledge base.
// The first failure aborts the load.
func (l *Loader) Load(ctx context.Context) (*knowledge.Base, error) {
	var (
		src                     knowledge.Sources
		support, main, domainCh []entryDTO
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.readFile(gCtx, FileUnitConverter, templatesSchema, &src.UnitConverter) })
	g.Go(func() error { return l.readFile(gCtx, FileWikipedia, templatesSchema, &src.Wikipedia) })
	g.Go(func() error { return l.readFile(gCtx, FileSupport, entriesSchema, &support) })
	g.Go(func() error { return l.readFile(gCtx, FileMainChat, entriesSchema, &main) })
	g.Go(func() error { return l.readFile(gCtx, FileDomainChat, entriesSchema, &domainCh) })
	g.Go(func() error { return l.readFile(gCtx, FileWelcome, messagesSchema, &src.Welcome) })
	g.Go(func() error { return l.readFile(gCtx, FileFallback, messagesSchema, &src.Fallback) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var err error
	if src.Support, err = toEntries(FileSupport, support); err != nil {
		return nil, err
	}
	if src.GeneralChat, err = toEntries(FileMainChat, main); err != nil {
		return nil, err
	}
	if src.DomainChat, err = toEntries(FileDomainChat, domainCh); err != nil {
		return nil, err
	}

	kb, err := knowledge.New(src)
	if err != nil {
		return nil, fmt.Errorf("build knowledge base: %w", err)
	}

	l.logger.Info("Intents loaded",
		zap.Int("questions", len(kb.Corpus())),
		zap.Int("welcome", len(src.Welcome)),
		zap.Int("fallback", len(src.Fallback)),
	)
	return kb, nil
}

func (l *Loader) readFile(ctx context.Context, name, schema string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validate(name, schema, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func validate(name, schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidKnowledge, name, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidKnowledge, name, strings.Join(errs, "; "))
	}
	return nil
}

func toEntries(name string, dtos []entryDTO) ([]knowledge.Entry, error) {
	entries := make([]knowledge.Entry, 0, len(dtos))
	for i, d := range dtos {
		e, err := knowledge.NewEntry(d.Questions, d.Answers)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", name, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// IsMissing reports whether a Load error was caused by an absent intent file.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
