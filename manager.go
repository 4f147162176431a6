/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitymanager

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/suparena/entitymanager/datastore"
	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/query"
	"github.com/suparena/entitymanager/results"
	"github.com/suparena/entitymanager/validation"
)

// Messages carried by failed results.
const (
	CreateFailedMessage = "Something was wrong with the creation"
	NotFoundMessage     = "Entity not found!"
	UpdateFailedMessage = "Something was wrong with the update!"
	DeleteFailedMessage = "Something was wrong with the delete!"
)

const tracerName = "github.com/suparena/entitymanager"

// Manager orchestrates validation, query descriptors, persistence and result
// building for entities of type T. Q and S are the filter and sort
// descriptors shared by the repository and the query factory.
//
// A Manager holds no mutable state and is safe for concurrent use.
type Manager[T, Q, S any] struct {
	repo       datastore.Repository[T, Q, S]
	validators validation.Factory[T]
	builders   results.BuilderFactory[T]
	specs      query.Factory[T, Q, S]
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// New creates a Manager. Every collaborator is required.
func New[T, Q, S any](
	repo datastore.Repository[T, Q, S],
	validators validation.Factory[T],
	builders results.BuilderFactory[T],
	specs query.Factory[T, Q, S],
	opts ...Option,
) (*Manager[T, Q, S], error) {
	if repo == nil {
		return nil, entityerrors.NewArgumentError("repo")
	}
	if validators == nil {
		return nil, entityerrors.NewArgumentError("validators")
	}
	if builders == nil {
		return nil, entityerrors.NewArgumentError("builders")
	}
	if specs == nil {
		return nil, entityerrors.NewArgumentError("specs")
	}

	o := options{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager[T, Q, S]{
		repo:       repo,
		validators: validators,
		builders:   builders,
		specs:      specs,
		logger:     o.logger,
		tracer:     o.tracer,
	}, nil
}

// Create validates and persists entity. The result always carries entity as
// its payload; a repository refusal yields a failed result, not an error.
func (m *Manager[T, Q, S]) Create(ctx context.Context, entity *T) (res results.Result[T], err error) {
	ctx, span := m.tracer.Start(ctx, "entitymanager.Create")
	defer func() { endSpan(span, err) }()

	if err := precondition(ctx, "create", entity, "entity"); err != nil {
		return results.Result[T]{}, err
	}

	if err := m.validators.CreateValidator().Validate(ctx, entity); err != nil {
		return results.Result[T]{}, err
	}

	created, err := m.repo.Create(ctx, entity)
	if err != nil {
		return results.Result[T]{}, err
	}

	builder := m.builders.ResultBuilder().WithPayload(entity)
	if !created {
		m.logger.WarnContext(ctx, "create refused by repository")
		builder = builder.WithError(CreateFailedMessage)
	}
	m.logger.DebugContext(ctx, "create completed", slog.Bool("succeeded", created))
	return builder.Build(), nil
}

// Read fetches the stored entity identified by entity.
func (m *Manager[T, Q, S]) Read(ctx context.Context, entity *T) (res results.Result[T], err error) {
	ctx, span := m.tracer.Start(ctx, "entitymanager.Read")
	defer func() { endSpan(span, err) }()

	if err := precondition(ctx, "read", entity, "entity"); err != nil {
		return results.Result[T]{}, err
	}

	found, ok, err := m.repo.Get(ctx, m.specs.ReadSpec(entity))
	if err != nil {
		return results.Result[T]{}, err
	}

	builder := m.builders.ResultBuilder()
	if !ok || found == nil {
		m.logger.DebugContext(ctx, "read found nothing")
		return builder.WithError(NotFoundMessage).Build(), nil
	}
	m.logger.DebugContext(ctx, "read completed")
	return builder.WithPayload(found).Build(), nil
}

// Update validates entity and replaces the stored entity sharing its identity.
func (m *Manager[T, Q, S]) Update(ctx context.Context, entity *T) (res results.OpResult, err error) {
	ctx, span := m.tracer.Start(ctx, "entitymanager.Update")
	defer func() { endSpan(span, err) }()

	if err := precondition(ctx, "update", entity, "entity"); err != nil {
		return results.OpResult{}, err
	}

	if err := m.validators.UpdateValidator().Validate(ctx, entity); err != nil {
		return results.OpResult{}, err
	}

	updated, err := m.repo.Update(ctx, entity)
	if err != nil {
		return results.OpResult{}, err
	}

	builder := m.builders.OpResultBuilder()
	if !updated {
		m.logger.WarnContext(ctx, "update refused by repository")
		builder = builder.WithError(UpdateFailedMessage)
	}
	m.logger.DebugContext(ctx, "update completed", slog.Bool("succeeded", updated))
	return builder.Build(), nil
}

// Delete removes the stored entity identified by entity. No validator runs.
func (m *Manager[T, Q, S]) Delete(ctx context.Context, entity *T) (res results.OpResult, err error) {
	ctx, span := m.tracer.Start(ctx, "entitymanager.Delete")
	defer func() { endSpan(span, err) }()

	if err := precondition(ctx, "delete", entity, "entity"); err != nil {
		return results.OpResult{}, err
	}

	deleted, err := m.repo.Delete(ctx, m.specs.DeleteSpec(entity))
	if err != nil {
		return results.OpResult{}, err
	}

	builder := m.builders.OpResultBuilder()
	if !deleted {
		m.logger.WarnContext(ctx, "delete refused by repository")
		builder = builder.WithError(DeleteFailedMessage)
	}
	m.logger.DebugContext(ctx, "delete completed", slog.Bool("succeeded", deleted))
	return builder.Build(), nil
}

// GetPage returns one page of entities matching filter together with the
// total and matched counts. The two counts and the page fetch run
// concurrently; the first failure cancels the others and is returned.
func (m *Manager[T, Q, S]) GetPage(ctx context.Context, filter *paging.Filter) (res results.PageResult[T], err error) {
	ctx, span := m.tracer.Start(ctx, "entitymanager.GetPage")
	defer func() { endSpan(span, err) }()

	if err := precondition(ctx, "get page", filter, "filter"); err != nil {
		return results.PageResult[T]{}, err
	}
	span.SetAttributes(
		attribute.Int("paging.offset", filter.Offset),
		attribute.Int("paging.limit", filter.Limit),
	)

	if err := m.validators.PageValidator().Validate(ctx, *filter); err != nil {
		return results.PageResult[T]{}, err
	}

	defaultSpec := m.specs.DefaultSpec()
	pageSpec := m.specs.PageSpec(*filter)
	sortSpec := m.specs.SortSpec(*filter)

	var (
		total   int64
		matched int64
		items   []*T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := m.repo.Count(gctx, defaultSpec)
		total = n
		return err
	})
	g.Go(func() error {
		n, err := m.repo.Count(gctx, pageSpec)
		matched = n
		return err
	})
	g.Go(func() error {
		page, err := m.repo.Page(gctx, filter.Offset, filter.Limit, pageSpec, sortSpec)
		items = page
		return err
	})
	if err := g.Wait(); err != nil {
		return results.PageResult[T]{}, err
	}

	m.logger.DebugContext(ctx, "page completed",
		slog.Int("offset", filter.Offset),
		slog.Int("limit", filter.Limit),
		slog.Int64("total", total),
		slog.Int64("matched", matched),
		slog.Int("items", len(items)),
	)
	return m.builders.PageResultBuilder().
		WithCount(total).
		WithMatched(matched).
		WithItems(items).
		WithOffset(filter.Offset).
		WithLimit(filter.Limit).
		Build(), nil
}

// precondition fails fast on a cancelled context, then on a nil argument.
func precondition[A any](ctx context.Context, op string, arg *A, name string) error {
	if err := ctx.Err(); err != nil {
		return entityerrors.NewCancelledError(op, err)
	}
	if arg == nil {
		return entityerrors.NewArgumentError(name)
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
