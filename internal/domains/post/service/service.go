package service

import (
	"context"
	"fmt"
	"path/filepath"
	"praxis/config"
	"praxis/infras/otel"
	"praxis/infras/s3"
	"praxis/internal/domains/post/model"
	"praxis/internal/domains/post/model/dto"
	"praxis/internal/domains/post/repository"
	"praxis/shared"
	"praxis/shared/cache"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/failure"
	"praxis/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPost    = "post:get"
	cacheGetAllPost = "post:gets"
	cacheCountPost  = "post:count"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.PostResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
	UploadCover(ctx context.Context, req dto.UploadCoverRequest) (dto.UploadCoverResponse, error)
}

type serviceImpl struct {
	repo  repository.Post
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Post, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Post {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	post := req.ToModel(user)

	taken, err := s.repo.Exist(ctx, shared.FilterByID(post.Slug, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slug")

		return fmt.Errorf("failed to check slug: %w", err)
	}

	if taken {
		return failure.Conflict("a post with this slug already exists") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, post); err != nil {
		log.Error().Err(err).Msg("failed to create post")

		return fmt.Errorf("failed to create post: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPost, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") //nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

// GetBySlug serves the public site; only published posts are visible there.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPost, "slug", slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterByID(slug, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty || !post.Published {
		return res, failure.NotFound("post not found") //nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePostRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if post exists")

		return fmt.Errorf("failed to check if post exists: %w", err)
	}

	if !exist {
		return failure.NotFound("post not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update post")

		return fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidatePost(ctx, id)

	return nil
}

// SetPublished flips a post's visibility, stamping published_at on publish
// and clearing it again on unpublish.
func (s *serviceImpl) SetPublished(ctx context.Context, id string, published bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPublished")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if post exists")

		return fmt.Errorf("failed to check if post exists: %w", err)
	}

	if !exist {
		return failure.NotFound("post not found") //nolint:wrapcheck
	}

	update := map[string]any{
		model.FieldPublished:     published,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if published {
		update[model.FieldPublishedAt] = timezone.Now()
	} else {
		update[model.FieldPublishedAt] = nil
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to change post visibility")

		return fmt.Errorf("failed to change post visibility: %w", err)
	}

	s.invalidatePost(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	post, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return failure.NotFound("post not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	if post.CoverImage != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName
		objectName := s.s3.GetObjectNameFromURL(bucketName, post.CoverImage)

		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	s.invalidatePost(ctx, id)

	return nil
}

func (s *serviceImpl) UploadCover(ctx context.Context, req dto.UploadCoverRequest) (res dto.UploadCoverResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadCover")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName := uuid.NewString() + filepath.Ext(req.Cover.Filename)

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, req.CoverFile, req.Cover, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload cover image")

		return res, fmt.Errorf("failed to upload cover image: %w", err)
	}

	res.FromModel(url, fileName)

	return res, nil
}

func (s *serviceImpl) invalidatePost(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetPost)
		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()
}
