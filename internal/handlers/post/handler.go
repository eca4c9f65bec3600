package post

import (
	"net/http"
	"praxis/infras/otel"
	"praxis/internal/domains/post/model"
	"praxis/internal/domains/post/model/dto"
	"praxis/internal/domains/post/service"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/validator"
	"praxis/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Post
	otel    otel.Otel
}

func New(service service.Post, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPublishedPosts)
		routerGroup.Get("/all", handler.GetPosts)
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Post("/upload", handler.UploadCover)
		routerGroup.Get("/id/{id}", handler.GetPostByID)
		routerGroup.Get("/{slug}", handler.GetPostBySlug)
		routerGroup.Patch("/{id}", handler.UpdatePost)
		routerGroup.Patch("/{id}/publish", handler.PublishPost)
		routerGroup.Patch("/{id}/unpublish", handler.UnpublishPost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// GetPublishedPosts lists the published posts for the public site.
// @Summary Get published posts
// @Description Retrieve published posts with optional search and pagination.
// @Tags Post
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Search by title"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of published posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [get]
func (handler *Handler) GetPublishedPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishedPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := handler.buildFilter(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldPublished,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get published posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Published posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPosts lists every post, drafts included.
// @Summary Get all posts
// @Description Retrieve all posts including drafts, with optional search and pagination.
// @Tags Post
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Search by title"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/all [get]
// @Security BearerAuth
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	posts, err := handler.service.GetAll(ctx, queryParams, handler.buildFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

func (handler *Handler) buildFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if title := r.URL.Query().Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// GetPostBySlug retrieves a published post by its slug.
// @Summary Get a published post by slug
// @Description Retrieve a published post by its slug for the public site.
// @Tags Post
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{slug} [get]
func (handler *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	post, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// GetPostByID retrieves a post by its ID.
// @Summary Get a post by ID
// @Description Retrieve a post by its unique identifier, drafts included.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/id/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// CreatePost handles the creation of a new post.
// @Summary Create a new post
// @Description Create a new post as a draft. The slug is derived from the title when omitted.
// @Tags Post
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Message "Post created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	req := dto.CreatePostRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Post created successfully")
}

// UpdatePost updates an existing post by its ID.
// @Summary Update a post by ID
// @Description Update the details of an existing post.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Update Post Request"
// @Success 200 {object} response.Message "Post updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post updated successfully")
}

// PublishPost makes a post visible on the public site.
// @Summary Publish a post
// @Description Publish a post, stamping its publication time.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post published successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id}/publish [patch]
// @Security BearerAuth
func (handler *Handler) PublishPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishPost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetPublished(ctx, id, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post published successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post published successfully")
}

// UnpublishPost takes a post off the public site.
// @Summary Unpublish a post
// @Description Revert a post to a draft, clearing its publication time.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post unpublished successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id}/unpublish [patch]
// @Security BearerAuth
func (handler *Handler) UnpublishPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnpublishPost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetPublished(ctx, id, false); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unpublish post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post unpublished successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post unpublished successfully")
}

// DeletePost deletes a post by its ID.
// @Summary Delete a post by ID
// @Description Delete a post and its cover image using its unique identifier.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}

// UploadCover handles cover image upload to S3.
// @Summary Upload a cover image to S3
// @Description Upload a cover image file to S3 and return the URL.
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadCoverResponse] "Cover image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadCover(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadCover")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadCoverRequest{
		Cover:     fileHeader,
		CoverFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadCover(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload cover image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cover image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
