// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package update runs one publication sync: fetch the profile listing,
// extract and assemble publications, serialize the block, and patch the
// website data file.
package update

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vinit-katariya/scholar-sync/internal/datajs"
	"github.com/vinit-katariya/scholar-sync/internal/scholar"
	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// Options tune a single Run.
type Options struct {
	// DryRun writes the generated block to Out instead of patching the file.
	DryRun bool
	Out    io.Writer

	// Fetcher overrides the default fetcher built from the config.
	Fetcher *scholar.Fetcher

	Logger *zap.Logger
}

// Result summarizes a completed run.
type Result struct {
	Publications []types.Publication
	Block        string

	// Visible is the number of featured publications.
	Visible int

	// Changed is false when the data file already held an identical block.
	Changed bool
}

// Count returns the number of publications written.
func (r Result) Count() int { return len(r.Publications) }

// Collect fetches the profile listing and returns its finalized publications.
func Collect(ctx context.Context, cfg types.SyncConfig, f *scholar.Fetcher, logger *zap.Logger) ([]types.Publication, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if f == nil {
		f = scholar.NewFetcher(cfg, logger)
	}

	body, err := f.Fetch(ctx, cfg.ProfileURL)
	if err != nil {
		return nil, err
	}

	rows, err := scholar.Extract(bytes.NewReader(body), cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	pubs, err := scholar.Assemble(rows, cfg.FeaturedCount)
	if err != nil {
		return nil, err
	}
	logger.Info("assembled publications", zap.Int("count", len(pubs)))
	return pubs, nil
}

// Run executes the whole pipeline. The data file is only read and written
// after a non-empty publication list has been serialized.
func Run(ctx context.Context, cfg types.SyncConfig, opts Options) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pubs, err := Collect(ctx, cfg, opts.Fetcher, logger)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Publications: pubs,
		Block:        datajs.Serialize(cfg.BlockName, cfg.GeneratorNote, pubs),
		Visible:      min(len(pubs), cfg.FeaturedCount),
	}

	if opts.DryRun {
		if opts.Out != nil {
			fmt.Fprintln(opts.Out, res.Block)
		}
		return res, nil
	}

	current, err := datajs.ReadBlock(cfg.DataFile, cfg.BlockName)
	if err != nil {
		return Result{}, err
	}
	if _, previous, perr := datajs.ParseBlock(current); perr == nil {
		logger.Debug("existing block", zap.Int("previous_count", len(previous)))
	} else {
		logger.Debug("existing block is not parsable", zap.Error(perr))
	}

	if current == res.Block {
		logger.Info("data file already up to date", zap.String("path", cfg.DataFile))
		return res, nil
	}

	if err := datajs.Patch(cfg.DataFile, cfg.BlockName, res.Block); err != nil {
		return Result{}, err
	}
	res.Changed = true
	logger.Info("patched data file",
		zap.String("path", cfg.DataFile),
		zap.Int("count", len(pubs)),
		zap.Int("visible", res.Visible),
	)
	return res, nil
}
