package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"praxis/config"
	"praxis/infras/otel/mocks"
	s3Mocks "praxis/infras/s3/mocks"
	postMocks "praxis/internal/domains/post/mocks"
	"praxis/internal/domains/post/model"
	"praxis/internal/domains/post/model/dto"
	"praxis/internal/domains/post/service"
	"praxis/shared/cache"
	cacheMocks "praxis/shared/cache/mocks"
	"praxis/shared/failure"
	gModel "praxis/shared/model"
)

func newService(t *testing.T) (service.Post, *postMocks.MockPost, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := postMocks.NewMockPost(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "praxis-assets"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func publishedPost() model.Post {
	publishedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	return model.Post{
		ID:          "0b54c9aa-24a2-4b64-8f5e-1f4a6bb20e11",
		Title:       "Understanding Anxiety",
		Slug:        "understanding-anxiety",
		Excerpt:     "A short primer.",
		Body:        "Anxiety is a normal response.",
		Published:   true,
		PublishedAt: &publishedAt,
		Metadata: gModel.Metadata{
			CreatedBy: "admin",
		},
	}
}

func TestPostService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *postMocks.MockPost)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *postMocks.MockPost) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, post model.Post) error {
						assert.Equal(t, "understanding-anxiety", post.Slug)
						assert.False(t, post.Published)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "slug already taken",
			setupMock: func(repo *postMocks.MockPost) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			setupMock: func(repo *postMocks.MockPost) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newService(t)
			tt.setupMock(mockRepo)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			req := dto.CreatePostRequest{
				Title: "Understanding Anxiety",
				Body:  "Anxiety is a normal response.",
			}

			err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostService_GetBySlug(t *testing.T) {
	t.Run("returns a published post", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(publishedPost(), nil)

		res, err := svc.GetBySlug(context.Background(), "understanding-anxiety")

		assert.NoError(t, err)
		assert.Equal(t, "Understanding Anxiety", res.Title)
		assert.True(t, res.Published)
		assert.NotEmpty(t, res.PublishedAt)
	})

	t.Run("hides an unpublished post", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		draft := publishedPost()
		draft.Published = false
		draft.PublishedAt = nil

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft, nil)

		_, err := svc.GetBySlug(context.Background(), "understanding-anxiety")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Post{}, nil)

		_, err := svc.GetBySlug(context.Background(), "no-such-post")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPostService_SetPublished(t *testing.T) {
	t.Run("publish stamps the publication time", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ interface{}) error {
				assert.Equal(t, true, update[model.FieldPublished])
				assert.NotNil(t, update[model.FieldPublishedAt])
				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.SetPublished(context.Background(), "0b54c9aa-24a2-4b64-8f5e-1f4a6bb20e11", true)

		assert.NoError(t, err)
	})

	t.Run("unpublish clears the publication time", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ interface{}) error {
				assert.Equal(t, false, update[model.FieldPublished])
				assert.Nil(t, update[model.FieldPublishedAt])
				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.SetPublished(context.Background(), "0b54c9aa-24a2-4b64-8f5e-1f4a6bb20e11", false)

		assert.NoError(t, err)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.SetPublished(context.Background(), "missing", true)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Run("removes the cover image alongside the row", func(t *testing.T) {
		svc, mockRepo, mockCache, mockS3 := newService(t)

		post := publishedPost()
		post.CoverImage = "https://cdn.example.com/praxis-assets/post/cover.webp"

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(post, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockS3.EXPECT().GetObjectNameFromURL("praxis-assets", post.CoverImage).Return("cover.webp")
		mockS3.EXPECT().DeleteFile(gomock.Any(), "praxis-assets", model.EntityName, "cover.webp").Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), post.ID)

		assert.NoError(t, err)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Post{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPostService_Update(t *testing.T) {
	t.Run("rejects an empty request", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdatePostRequest{}, "some-id")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdatePostRequest{Title: "New title"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Understanding Anxiety", "understanding-anxiety"},
		{"  Grief & Loss: A Guide  ", "grief-loss-a-guide"},
		{"CBT 101", "cbt-101"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Slugify(tt.title))
		})
	}
}
